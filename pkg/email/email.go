package email

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"portfolio-backend/config"
	"strings"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
	send      func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// ContactEmailData holds the data for the "new contact message" notification
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Phone       string
	Service     string
	Message     string
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	from := cfg.SMTPFromEmail
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: from,
		toEmail:   cfg.ContactEmailTo,
		send:      smtp.SendMail,
	}
}

var contactEmailTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Nova mensagem de contato</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1f1f1f; color: #d4a373; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #d4a373; margin-top: 10px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>Nova mensagem de contato</h1></div>
        <div class="content">
            <p><span class="label">De:</span> {{.SenderName}} ({{.SenderEmail}})</p>
            <p><span class="label">Telefone:</span> {{.Phone}}</p>
            <p><span class="label">Serviço:</span> {{.Service}}</p>
            <div class="label">Mensagem:</div>
            <div class="message-box">{{.Message}}</div>
        </div>
    </div>
</body>
</html>`))

// BuildContactMessage renders the MIME message for a contact notification
func (s *EmailService) BuildContactMessage(data ContactEmailData) ([]byte, error) {
	var body bytes.Buffer
	if err := contactEmailTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := mime.QEncoding.Encode("utf-8",
		fmt.Sprintf("Contato pelo site: %s (%s)", headerValue(data.SenderName), headerValue(data.Service)))

	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		headerValue(s.fromEmail),
		headerValue(s.toEmail),
		headerValue(data.SenderEmail),
		subject,
		body.String(),
	)), nil
}

var headerBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// headerValue flattens line breaks so user input cannot start a new header line
func headerValue(v string) string {
	return headerBreaks.Replace(v)
}

// SendContactEmail notifies the site owner about a stored contact message
func (s *EmailService) SendContactEmail(data ContactEmailData) error {
	msg, err := s.BuildContactMessage(data)
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.send(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.toEmail != ""
}
