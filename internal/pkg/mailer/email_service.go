package mailer

import (
	"fmt"

	"flowa-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendVerificationCode(toEmail, code string) error
	SendWelcome(toEmail, name string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName string, logger logger.ILogger) IEmailService {
	if host == "" {
		return &logOnlyEmailService{logger: logger}
	}
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		logger:      logger,
	}
}

func (s *emailService) SendVerificationCode(toEmail, code string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to Flowa!</h2>
			<p>Your verification code is:</p>
			<h1 style="color: #4CAF50; letter-spacing: 5px;">%s</h1>
			<p>This code will expire in 10 minutes.</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, code)

	return s.send(toEmail, "Your Verification Code", body)
}

func (s *emailService) SendWelcome(toEmail, name string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your Flowa account is ready. Create a brand to start generating content.</p>
		</div>
	`, name)

	return s.send(toEmail, "Welcome to Flowa", body)
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("MAILER", "Failed to send email", map[string]interface{}{
			"to":      toEmail,
			"subject": subject,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("MAILER", "Email sent", map[string]interface{}{"to": toEmail, "subject": subject})
	return nil
}

// logOnlyEmailService is used when SMTP is not configured.
type logOnlyEmailService struct {
	logger logger.ILogger
}

func (s *logOnlyEmailService) SendVerificationCode(toEmail, code string) error {
	s.logger.Warn("MAILER", "SMTP not configured, verification code logged instead", map[string]interface{}{
		"to":   toEmail,
		"code": code,
	})
	return nil
}

func (s *logOnlyEmailService) SendWelcome(toEmail, name string) error {
	s.logger.Info("MAILER", "SMTP not configured, welcome email skipped", map[string]interface{}{"to": toEmail})
	return nil
}
