package notifier

import (
	"VCS_API_Monitor/pkg/mail"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestEmailNotifier_SendFailureEmail(t *testing.T) {
	testCases := []struct {
		name       string
		to         string
		setupMocks func(sender *mail.MockSender)
		expected   Result
	}{
		{
			name: "sent",
			to:   "owner@example.com",
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().
					SendMail([]string{"owner@example.com"}, "[Monitor Alert] checkout <api> is failing", gomock.Any(), gomock.Any()).
					DoAndReturn(func(to []string, subject, htmlBody, textBody string) (string, error) {
						assert.Contains(t, htmlBody, "checkout &lt;api&gt;")
						assert.Contains(t, htmlBody, "<strong>5</strong>")
						assert.Contains(t, textBody, "Last error: Connection refused: api.example.com")
						assert.Contains(t, textBody, "URL: https://api.example.com")
						return "<id-1@example.com>", nil
					})
			},
			expected: Result{Success: true, MessageID: "<id-1@example.com>"},
		},
		{
			name: "transport error",
			to:   "owner@example.com",
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("535 authentication failed"))
			},
			expected: Result{Error: "535 authentication failed"},
		},
		{
			name: "transport panic",
			to:   "owner@example.com",
			setupMocks: func(sender *mail.MockSender) {
				sender.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(to []string, subject, htmlBody, textBody string) (string, error) {
						panic("smtp client closed")
					})
			},
			expected: Result{Error: "mail transport panic: smtp client closed"},
		},
		{
			name:       "no recipient",
			setupMocks: func(sender *mail.MockSender) {},
			expected:   Result{Error: "no recipient address"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sender := mail.NewMockSender(ctrl)
			tc.setupMocks(sender)

			n := NewEmailNotifier(sender, zap.NewNop())
			res := n.SendFailureEmail(tc.to, "checkout <api>", "https://api.example.com", 5, "Connection refused: api.example.com")
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestEmailNotifier_SendRecoveryEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mail.NewMockSender(ctrl)
	sender.EXPECT().
		SendMail([]string{"owner@example.com"}, "[Monitor Recovered] checkout is back up", gomock.Any(), gomock.Any()).
		DoAndReturn(func(to []string, subject, htmlBody, textBody string) (string, error) {
			assert.Contains(t, htmlBody, "Monitor recovered")
			assert.Contains(t, textBody, "https://api.example.com")
			return "<id-2@example.com>", nil
		})

	res := NewEmailNotifier(sender, zap.NewNop()).SendRecoveryEmail("owner@example.com", "checkout", "https://api.example.com")
	assert.True(t, res.Success)
	assert.Equal(t, "<id-2@example.com>", res.MessageID)
}
