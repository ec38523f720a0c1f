package service

import (
	"fmt"

	"github.com/rafasilverio93/designar/internal/config"
	"github.com/rafasilverio93/designar/internal/database/models"

	"gopkg.in/gomail.v2"
)

// Notifier is the outing-update notification side-channel. Implementations
// must treat sends as best-effort; callers log failures and move on.
type Notifier interface {
	OutingUpdated(nome string, diaSemana models.Weekday) error
}

// Mailer sends outing-update notifications over SMTP
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewNotifier builds a Notifier from configuration. An empty SMTP host
// disables sending and yields a no-op implementation.
func NewNotifier(cfg *config.Config) Notifier {
	if cfg.SMTPHost == "" {
		return &noopNotifier{}
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
		to:     cfg.SMTPTo,
	}
}

// OutingUpdated sends the notification mail for an updated outing
func (m *Mailer) OutingUpdated(nome string, diaSemana models.Weekday) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", "Alteração na Saída de Campo")
	msg.SetBody("text/plain", fmt.Sprintf("A saída de campo %q foi atualizada para %s.", nome, diaSemana))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send outing update mail: %w", err)
	}
	return nil
}

type noopNotifier struct{}

func (*noopNotifier) OutingUpdated(string, models.Weekday) error { return nil }
