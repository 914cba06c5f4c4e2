package alert

import (
	"fmt"
	"net/smtp"

	"github.com/rfalcao/stockwatch/internal/config"
)

// SMTPNotifier sends notifications as plain-text email over SMTP.
type SMTPNotifier struct {
	server       string
	port         string
	user         string
	password     string
	from         string
	authDisabled bool
}

func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		server:       cfg.Server,
		port:         cfg.Port,
		user:         cfg.User,
		password:     cfg.Password,
		from:         cfg.From,
		authDisabled: cfg.AuthDisabled,
	}
}

func (n *SMTPNotifier) Send(recipient, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", n.from, recipient, subject, body)

	addr := fmt.Sprintf("%s:%s", n.server, n.port)
	auth := smtp.PlainAuth("", n.user, n.password, n.server)
	if n.authDisabled {
		auth = nil
	}

	if err := smtp.SendMail(addr, auth, n.from, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}
	return nil
}
