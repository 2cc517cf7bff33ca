package mailer

import (
	"fmt"
	"net"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/sreeharigs/organicproduct/pkg/config"
)

// Mailer sends plaintext notification emails through an SMTP relay with
// STARTTLS and plain auth.
type Mailer struct {
	cfg config.SMTPConfig
}

func New(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers a subject/body message to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Sender, m.cfg.Password, m.cfg.Host)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.cfg.Sender, to, subject, body)

	if err := smtp.SendMail(addr, auth, m.cfg.Sender, []string{to}, []byte(msg)); err != nil {
		zap.L().Error("Failed to send email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return fmt.Errorf("sending email to %s: %w", to, err)
	}

	zap.L().Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// SendOTP mails a registration OTP.
func (m *Mailer) SendOTP(to, otp string) error {
	body := fmt.Sprintf("Your OTP for registration is: %s\nDo not share it with anyone.", otp)
	return m.Send(to, "Organic Shop - OTP Verification", body)
}

// SendResetToken mails a password reset token.
func (m *Mailer) SendResetToken(to, token string) error {
	body := fmt.Sprintf("Your password reset token is: %s\nThis token will expire in 1 hour.", token)
	return m.Send(to, "Organic Shop - Password Reset", body)
}
