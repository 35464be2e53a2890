package notifier

import (
	"VCS_API_Monitor/pkg/mail"
	"fmt"
	"html"

	"go.uber.org/zap"
)

type Result struct {
	Success   bool
	MessageID string
	Error     string
}

// Notifier sends monitor emails. Failures are reported in Result, never returned or panicked.
type Notifier interface {
	SendFailureEmail(to string, monitorName string, url string, failureCount int, lastError string) Result
	SendRecoveryEmail(to string, monitorName string, url string) Result
}

type emailNotifier struct {
	sender mail.Sender
	logger *zap.Logger
}

func (e *emailNotifier) SendFailureEmail(to string, monitorName string, url string, failureCount int, lastError string) Result {
	subject := fmt.Sprintf("[Monitor Alert] %s is failing", monitorName)
	textBody := fmt.Sprintf(
		"Your monitor \"%s\" has failed %d consecutive times.\n\nURL: %s\nLast error: %s\n\n"+
			"You will not receive another failure email for this monitor for 24 hours.\n",
		monitorName, failureCount, url, lastError)
	htmlBody := fmt.Sprintf(failureHTMLFormat,
		html.EscapeString(monitorName),
		failureCount,
		html.EscapeString(url),
		html.EscapeString(lastError))
	return e.send(to, subject, htmlBody, textBody)
}

func (e *emailNotifier) SendRecoveryEmail(to string, monitorName string, url string) Result {
	subject := fmt.Sprintf("[Monitor Recovered] %s is back up", monitorName)
	textBody := fmt.Sprintf("Your monitor \"%s\" has recovered and is responding normally again.\n\nURL: %s\n", monitorName, url)
	htmlBody := fmt.Sprintf(recoveryHTMLFormat, html.EscapeString(monitorName), html.EscapeString(url))
	return e.send(to, subject, htmlBody, textBody)
}

func (e *emailNotifier) send(to string, subject string, htmlBody string, textBody string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("mail transport panicked", zap.String("to", to), zap.Any("panic", r))
			res = Result{Error: fmt.Sprintf("mail transport panic: %v", r)}
		}
	}()
	if to == "" {
		return Result{Error: "no recipient address"}
	}
	messageID, err := e.sender.SendMail([]string{to}, subject, htmlBody, textBody)
	if err != nil {
		e.logger.Warn("failed to send email", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return Result{Error: err.Error()}
	}
	e.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject), zap.String("message_id", messageID))
	return Result{Success: true, MessageID: messageID}
}

func NewEmailNotifier(sender mail.Sender, logger *zap.Logger) Notifier {
	return &emailNotifier{
		sender: sender,
		logger: logger,
	}
}

const failureHTMLFormat = `
<html>
<body style="font-family: Arial, sans-serif;">
	<h2 style="color: #c0392b;">Monitor failing</h2>
	<p>Your monitor <strong>%s</strong> has failed <strong>%d</strong> consecutive times.</p>
	<table>
		<tr><td><strong>URL</strong></td><td>%s</td></tr>
		<tr><td><strong>Last error</strong></td><td>%s</td></tr>
	</table>
	<p style="color: #7f8c8d;">You will not receive another failure email for this monitor for 24 hours.</p>
</body>
</html>`

const recoveryHTMLFormat = `
<html>
<body style="font-family: Arial, sans-serif;">
	<h2 style="color: #27ae60;">Monitor recovered</h2>
	<p>Your monitor <strong>%s</strong> has recovered and is responding normally again.</p>
	<p><strong>URL</strong>: %s</p>
</body>
</html>`
