package mail

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"
)

type Sender interface {
	// SendMail delivers one message and returns the Message-ID it was sent with.
	SendMail(to []string, subject, htmlBody, textBody string) (string, error)
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	email    string
	fromName string
	dialer   Dialer
}

func (s *sender) messageID() string {
	domain := "localhost"
	if at := strings.LastIndex(s.email, "@"); at >= 0 && at < len(s.email)-1 {
		domain = s.email[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

func (s *sender) SendMail(to []string, subject, htmlBody, textBody string) (string, error) {
	m := mail.NewMessage()
	id := s.messageID()

	if s.fromName != "" {
		m.SetAddressHeader("From", s.email, s.fromName)
	} else {
		m.SetHeader("From", s.email)
	}
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", id)

	if textBody != "" {
		m.SetBody("text/plain", textBody)
	}
	if htmlBody != "" {
		if textBody != "" {
			m.AddAlternative("text/html", htmlBody)
		} else {
			m.SetBody("text/html", htmlBody)
		}
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("Sender.SendMail: %w", err)
	}
	return id, nil
}

func NewMailSender(email, fromName, password, host string, port int) Sender {
	return &sender{
		email:    email,
		fromName: fromName,
		dialer:   mail.NewDialer(host, port, email, password),
	}
}
