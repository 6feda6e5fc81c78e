package notifications

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"strconv"
	"time"

	"tripbook/internal/shared/config"
	"tripbook/pkg/logger"
)

// EmailService renders and delivers notification emails.
type EmailService interface {
	SendNotification(ctx context.Context, notification *EmailNotification) error
	SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// SMTPConfig holds SMTP configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	Timeout   time.Duration
}

// NewSMTPConfig derives SMTP settings from the application config.
func NewSMTPConfig(cfg config.EmailConfig) *SMTPConfig {
	return &SMTPConfig{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.FromEmail,
		FromName:  "Tripbook",
		UseTLS:    true,
		Timeout:   30 * time.Second,
	}
}

// SMTPEmailService delivers mail over SMTP with STARTTLS.
type SMTPEmailService struct {
	config    *SMTPConfig
	templates map[string]*template.Template
	log       *logger.Logger
}

func NewSMTPEmailService(config *SMTPConfig) (*SMTPEmailService, error) {
	if err := validateSMTPConfig(config); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}

	return &SMTPEmailService{
		config:    config,
		templates: make(map[string]*template.Template),
		log:       logger.GetDefault(),
	}, nil
}

func validateSMTPConfig(config *SMTPConfig) error {
	if config == nil {
		return fmt.Errorf("SMTP config is nil")
	}
	if config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("SMTP port must be between 1 and 65535")
	}
	if config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

func (s *SMTPEmailService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	htmlBody, textBody, err := s.generateContent(notification)
	if err != nil {
		return fmt.Errorf("failed to generate email content: %w", err)
	}

	return s.SendHTML(ctx, notification.RecipientEmail, notification.Subject, htmlBody, textBody)
}

func (s *SMTPEmailService) SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error {
	message := s.buildMessage(to, subject, htmlBody, textBody)

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	var err error
	if s.config.UseTLS {
		err = s.sendWithSTARTTLS(addr, auth, to, message)
	} else {
		err = smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	}
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.log.InfoContext(ctx, "email sent", "to", to, "subject", subject)
	return nil
}

// sendWithSTARTTLS upgrades a plain connection to TLS before sending.
func (s *SMTPEmailService) sendWithSTARTTLS(addr string, auth smtp.Auth, to string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Quit()

	tlsconfig := &tls.Config{
		ServerName: s.config.Host,
	}

	if err = client.StartTLS(tlsconfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return w.Close()
}

// buildMessage creates the multipart email with proper headers.
func (s *SMTPEmailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Date"] = time.Now().Format(time.RFC1123Z)

	boundary := "boundary_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	headers["Content-Type"] = fmt.Sprintf("multipart/alternative; boundary=%s", boundary)

	var message bytes.Buffer
	for k, v := range headers {
		fmt.Fprintf(&message, "%s: %s\r\n", k, v)
	}
	message.WriteString("\r\n")

	if textBody != "" {
		fmt.Fprintf(&message, "--%s\r\n", boundary)
		message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		message.WriteString(textBody + "\r\n")
	}

	if htmlBody != "" {
		fmt.Fprintf(&message, "--%s\r\n", boundary)
		message.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
		message.WriteString(htmlBody + "\r\n")
	}

	fmt.Fprintf(&message, "--%s--\r\n", boundary)

	return message.Bytes()
}

func (s *SMTPEmailService) generateContent(notification *EmailNotification) (string, string, error) {
	data := notification.TemplateData

	switch notification.Type {
	case NotificationTypeBookingConfirmed:
		htmlBody := fmt.Sprintf(`
			<h2>Booking Confirmed</h2>
			<p>Hi %s,</p>
			<p>Your %v booking is confirmed!</p>
			<p>Confirmation Number: <strong>%v</strong></p>
			<p>Total Amount: %.2f %v</p>
			<p>Safe travels,<br>The Tripbook Team</p>
		`,
			notification.RecipientName,
			data["booking_type"],
			data["confirmation_number"],
			data["total_amount"],
			data["currency"],
		)

		textBody := fmt.Sprintf(
			"Hi %s,\n\nYour %v booking is confirmed!\nConfirmation Number: %v\nTotal Amount: %.2f %v\n\nSafe travels,\nThe Tripbook Team",
			notification.RecipientName,
			data["booking_type"],
			data["confirmation_number"],
			data["total_amount"],
			data["currency"],
		)

		return htmlBody, textBody, nil

	case NotificationTypeBookingCancelled:
		htmlBody := fmt.Sprintf(`
			<h2>Booking Cancelled</h2>
			<p>Hi %s,</p>
			<p>Your booking <strong>%v</strong> has been cancelled.</p>
			<p>%v</p>
			<p>The Tripbook Team</p>
		`,
			notification.RecipientName,
			data["confirmation_number"],
			data["refund_note"],
		)

		textBody := fmt.Sprintf(
			"Hi %s,\n\nYour booking %v has been cancelled.\n%v\n\nThe Tripbook Team",
			notification.RecipientName,
			data["confirmation_number"],
			data["refund_note"],
		)

		return htmlBody, textBody, nil

	default:
		htmlBody := fmt.Sprintf(`
			<h2>%s</h2>
			<p>Hi %s,</p>
			<p>This is a notification from Tripbook.</p>
			<p>The Tripbook Team</p>
		`,
			notification.Subject,
			notification.RecipientName,
		)

		textBody := fmt.Sprintf(
			"Hi %s,\n\nThis is a notification from Tripbook.\n\nThe Tripbook Team",
			notification.RecipientName,
		)

		return htmlBody, textBody, nil
	}
}

// MockEmailService logs instead of delivering, for development.
type MockEmailService struct {
	log *logger.Logger
}

func NewMockEmailService() *MockEmailService {
	return &MockEmailService{log: logger.GetDefault()}
}

func (s *MockEmailService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	s.log.InfoContext(ctx, "mock email",
		"type", string(notification.Type),
		"to", notification.RecipientEmail,
		"subject", notification.Subject,
	)
	return nil
}

func (s *MockEmailService) SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error {
	s.log.InfoContext(ctx, "mock email", "to", to, "subject", subject)
	return nil
}
