package notifications

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/AbidMulla/off-compus-backend/domain"
)

// SMTPMailer implements domain.Mailer over an SMTP transport.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.SugaredLogger
}

// NewSMTPMailer creates a new SMTP mailer. When host is empty the mailer
// runs in mock mode: sends are logged and reported as successful so the
// service stays usable without SMTP credentials.
func NewSMTPMailer(host string, port int, username, password, from string, log *zap.SugaredLogger) domain.Mailer {
	var dialer *gomail.Dialer
	if host != "" {
		dialer = gomail.NewDialer(host, port, username, password)
	} else {
		log.Infow("smtp not configured, email sending disabled")
	}

	return &SMTPMailer{
		dialer: dialer,
		from:   from,
		log:    log,
	}
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	if m.dialer == nil {
		m.log.Infow("mock email", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) SendRegisterOTP(to, code string) error {
	subject, body := registerOTPEmail(code)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendRegisterResendOTP(to, code string) error {
	subject, body := registerResendOTPEmail(code)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendActivateAccountOTP(to, code string) error {
	subject, body := activateAccountOTPEmail(code)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendActivateAccountResendOTP(to, code string) error {
	subject, body := activateAccountResendOTPEmail(code)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendForgotPasswordOTP(to, code string) error {
	subject, body := forgotPasswordOTPEmail(code)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendForgotPasswordResendOTP(to, code string) error {
	subject, body := forgotPasswordResendOTPEmail(code)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendWelcome(to, name string) error {
	subject, body := welcomeEmail(name)
	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendPasswordResetSuccess(to, name string) error {
	subject, body := passwordResetSuccessEmail(name)
	return m.send(to, subject, body)
}
