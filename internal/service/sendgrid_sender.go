package service

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridSender sends mail through the SendGrid API instead of a raw SMTP
// session. Selected with EMAIL_PROVIDER=sendgrid.
type SendGridSender struct {
	APIKey string
}

func NewSendGridSender(apiKey string) *SendGridSender {
	return &SendGridSender{APIKey: apiKey}
}

func (s *SendGridSender) Send(fromName, fromAddr, to, subject, htmlBody string) error {
	if s.APIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(fromName, fromAddr))
	message.Subject = subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", to))
	message.AddPersonalizations(p)
	message.AddContent(mail.NewContent("text/html", htmlBody))

	client := sendgrid.NewSendClient(s.APIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
