package email

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// ErrEmailServiceNotConfigured is returned when delivery is requested but
// no SMTP host is configured.
var ErrEmailServiceNotConfigured = errors.New("email service not configured")

// Sender delivers license keys to recipients.
type Sender interface {
	SendLicenseKey(to, key string, durationHours int) error
	SendTestEmail(to string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendLicenseKey delivers a freshly generated license key to the recipient.
func (s *SMTPEmailService) SendLicenseKey(to, key string, durationHours int) error {
	subject := "Your License Key"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your License Key</h2>
			<p>A license key has been issued for you:</p>
			<p><code>%s</code></p>
			<p>Redeeming it grants %d hours of access. The key can be used exactly once.</p>
			<p>If you weren't expecting this email, you can safely ignore it.</p>
		</body>
		</html>
	`, key, durationHours)

	plainBody := fmt.Sprintf(`
Your License Key

A license key has been issued for you:

%s

Redeeming it grants %d hours of access. The key can be used exactly once.

If you weren't expecting this email, you can safely ignore it.
	`, key, durationHours)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendTestEmail sends a test email to verify the SMTP configuration.
func (s *SMTPEmailService) SendTestEmail(to string) error {
	subject := "SMTP Configuration Test"
	body := "This is a test email. If you received it, the SMTP configuration works."
	return s.sendEmail(to, subject, "<p>"+body+"</p>", body)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
