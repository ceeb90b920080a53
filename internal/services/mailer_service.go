package services

import (
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/InternPulse/property-hive-backend/internal/config"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

// ---------------------------------------------------------------------
// MailerService interface
// ---------------------------------------------------------------------

// MailerService sends the two transactional emails the platform needs.
// It is an interface so service tests can swap in a recorder.
type MailerService interface {
	SendVerificationCode(toEmail, code string) error
	SendPasswordResetLink(toEmail, resetURL string) error
}

// ---------------------------------------------------------------------
// SendGrid implementation
// ---------------------------------------------------------------------

type sendgridMailer struct {
	client *sendgrid.Client
	cfg    *config.Config
}

func NewSendGridMailer(cfg *config.Config) MailerService {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		cfg:    cfg,
	}
}

func (m *sendgridMailer) SendVerificationCode(toEmail, code string) error {
	from := mail.NewEmail(m.cfg.OrganizationName, m.cfg.FromEmail)
	to := mail.NewEmail("", toEmail)
	subject := m.cfg.OrganizationName + " - Your Verification Code"
	plainTextContent := fmt.Sprintf("Your verification code is %s", code)
	htmlContent := fmt.Sprintf(verificationEmailHTML,
		"Verification Code",
		"Please use the following code to verify your email address. This code will expire in 10 minutes.",
		code,
		time.Now().Year(),
	)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	return m.send(message, toEmail)
}

func (m *sendgridMailer) SendPasswordResetLink(toEmail, resetURL string) error {
	from := mail.NewEmail(m.cfg.OrganizationName, m.cfg.FromEmail)
	to := mail.NewEmail("", toEmail)
	subject := "Reset your password on " + m.cfg.OrganizationName
	plainTextContent := fmt.Sprintf("Please click the link below to change your password: %s", resetURL)
	htmlContent := fmt.Sprintf(passwordResetEmailHTML, resetURL, time.Now().Year())
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	return m.send(message, toEmail)
}

func (m *sendgridMailer) send(message *mail.SGMailV3, toEmail string) error {
	if m.cfg.SandboxMode {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	_, sendErr := m.client.Send(message)
	if sendErr != nil {
		utils.Logger.WithError(sendErr).Errorf("Failed to send email to %s via SendGrid", toEmail)
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}
