package mail

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"fotostudio/internal/domain"
)

// Mailer отправляет уведомления о новых заявках на почту администратора.
type Mailer struct {
	config *Config
}

func NewMailer(config *Config) *Mailer {
	if !config.Complete() {
		log.Printf("[Mail] SMTP is not configured, lead notifications are disabled")
	}
	return &Mailer{config: config}
}

// SendLeadNotification отправляет письмо о новой заявке. Ошибка отправки —
// забота вызывающего: заявка к этому моменту уже сохранена.
func (m *Mailer) SendLeadNotification(lead *domain.Lead) error {
	if !m.config.Complete() {
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Имя: %s\r\n", lead.Name)
	fmt.Fprintf(&body, "Телефон: %s\r\n", lead.Phone)
	if lead.Email != "" {
		fmt.Fprintf(&body, "Email: %s\r\n", lead.Email)
	}
	if lead.EventDate != nil {
		fmt.Fprintf(&body, "Дата съемки: %s\r\n", lead.EventDate.Format("02.01.2006"))
	}
	if lead.Message != "" {
		fmt.Fprintf(&body, "\r\n%s\r\n", lead.Message)
	}

	to := []string{m.config.AdminTo}
	message := fmt.Appendf(nil, "To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", strings.Join(to, ","), "Новая заявка с сайта", body.String())

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	addr := m.config.Host + ":" + m.config.Port
	if err := smtp.SendMail(addr, auth, m.config.From, to, message); err != nil {
		return fmt.Errorf("failed to send lead notification: %w", err)
	}

	return nil
}
