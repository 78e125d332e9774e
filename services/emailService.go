package services

import (
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/GraceParish/models"
)

// EmailService forwards contact-form messages to the parish office
// inbox through Resend.
type EmailService struct {
	client     *resend.Client
	notifyAddr string
	log        zerolog.Logger
}

// NewEmailService returns nil when no API key or destination address is
// configured; callers treat a nil service as "notifications disabled".
func NewEmailService(apiKey, notifyAddr string, log zerolog.Logger) *EmailService {
	if apiKey == "" || notifyAddr == "" {
		log.Warn().Msg("RESEND_API_KEY or CONTACT_NOTIFY_EMAIL not set, contact notifications disabled")
		return nil
	}

	log.Info().Msg("Email service initialized with Resend")
	return &EmailService{
		client:     resend.NewClient(apiKey),
		notifyAddr: notifyAddr,
		log:        log,
	}
}

// SendContactNotification emails the office about a new contact message.
func (s *EmailService) SendContactNotification(msg models.ContactMessage) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #90c590;">New contact message</h2>
    <p><strong>From:</strong> %s &lt;%s&gt;</p>
    <p><strong>Subject:</strong> %s</p>
    <hr>
    <p>%s</p>
    <hr>
    <p style="font-size: 12px; color: #666;">Sent from the parish website contact form.</p>
</body>
</html>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Message),
	)

	params := &resend.SendEmailRequest{
		From:    "Parish Website <noreply@graceparish.org>",
		To:      []string{s.notifyAddr},
		Subject: fmt.Sprintf("Contact form: %s", msg.Subject),
		Html:    htmlBody,
		ReplyTo: msg.Email,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to send contact notification")
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	s.log.Info().Str("email_id", sent.Id).Int("contact_message_id", msg.Contact_Message_ID).
		Msg("Contact notification sent")
	return nil
}
