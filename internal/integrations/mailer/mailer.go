// Package mailer отправка почтовых уведомлений клиентам и сотрудникам
package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/m04kA/SMC-PhotoStudioService/internal/config"
	"github.com/m04kA/SMC-PhotoStudioService/internal/domain"
	"github.com/m04kA/SMC-PhotoStudioService/pkg/ics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Mailer отправляет письма через SMTP
// При выключенном SMTP письма только логируются, операции не падают
type Mailer struct {
	cfg        config.SMTPConfig
	studioName string
	location   *time.Location
	logger     Logger
}

// New создает почтовый клиент
func New(cfg config.SMTPConfig, studioName string, location *time.Location, logger Logger) *Mailer {
	return &Mailer{
		cfg:        cfg,
		studioName: studioName,
		location:   location,
		logger:     logger,
	}
}

// SendAssignment уведомляет сотрудника о назначении на съемку
func (m *Mailer) SendAssignment(ctx context.Context, booking *domain.Booking, teamMember *domain.User) error {
	subject := fmt.Sprintf("Вы назначены на съемку %s", m.formatStart(booking))
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\nВы назначены на съемку:\n\nПакет: %s\nКлиент: %s\nНачало: %s\nДлительность: %d мин.\n\n%s",
		teamMember.Name, booking.PackageName, booking.CustomerName, m.formatStart(booking), booking.DurationMinutes, m.studioName,
	)
	return m.send(ctx, teamMember.Email, subject, body, nil)
}

// SendConfirmation уведомляет клиента о подтверждении с приглашением в календарь
func (m *Mailer) SendConfirmation(ctx context.Context, booking *domain.Booking) error {
	subject := fmt.Sprintf("Съемка подтверждена: %s", m.formatStart(booking))
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\nВаша съемка подтверждена:\n\nПакет: %s\nНачало: %s\nДлительность: %d мин.\n\nЖдем вас!\n%s",
		booking.CustomerName, booking.PackageName, m.formatStart(booking), booking.DurationMinutes, m.studioName,
	)

	event := ics.Event{
		Title:           fmt.Sprintf("%s — %s", m.studioName, booking.PackageName),
		StartAt:         booking.StartAt,
		DurationMinutes: booking.DurationMinutes,
	}
	if booking.Location != nil {
		event.Location = *booking.Location
	}
	invite := ics.Build(event)

	return m.send(ctx, booking.CustomerEmail, subject, body, &invite)
}

// SendRejection уведомляет клиента об отклонении заявки
func (m *Mailer) SendRejection(ctx context.Context, booking *domain.Booking) error {
	subject := "Заявка на съемку отклонена"
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\nК сожалению, ваша заявка на %s не может быть принята.\nПожалуйста, выберите другое время.\n\n%s",
		booking.CustomerName, m.formatStart(booking), m.studioName,
	)
	return m.send(ctx, booking.CustomerEmail, subject, body, nil)
}

// SendResultsReady уведомляет клиента о готовности результатов
func (m *Mailer) SendResultsReady(ctx context.Context, booking *domain.Booking) error {
	subject := "Результаты съемки готовы"
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\nРезультаты вашей съемки готовы. Войдите в личный кабинет и введите пароль, который вам сообщили, чтобы скачать файлы.\n\n%s",
		booking.CustomerName, m.studioName,
	)
	return m.send(ctx, booking.CustomerEmail, subject, body, nil)
}

// send собирает MIME сообщение и отправляет его
// invite, если передан, прикладывается как календарное вложение
func (m *Mailer) send(_ context.Context, to, subject, body string, invite *string) error {
	if !m.cfg.Enabled {
		m.logger.Info("mailer: smtp disabled, skipping email to=%s subject=%q", to, subject)
		return nil
	}
	if to == "" {
		m.logger.Warn("mailer: empty recipient for subject=%q", subject)
		return nil
	}

	msg := m.buildMessage(to, subject, body, invite)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}

	m.logger.Info("mailer: sent email to=%s subject=%q", to, subject)
	return nil
}

func (m *Mailer) buildMessage(to, subject, body string, invite *string) string {
	var sb strings.Builder

	encodedSubject := fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(subject)))
	sb.WriteString(fmt.Sprintf("From: %s\r\n", m.cfg.From))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", encodedSubject))
	sb.WriteString("MIME-Version: 1.0\r\n")

	if invite == nil {
		sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		sb.WriteString("\r\n")
		sb.WriteString(body)
		return sb.String()
	}

	const boundary = "studio-mail-boundary"
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%s\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	sb.WriteString(body)
	sb.WriteString("\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/calendar; method=REQUEST; charset=UTF-8\r\n")
	sb.WriteString("Content-Disposition: attachment; filename=invite.ics\r\n\r\n")
	sb.WriteString(*invite)
	sb.WriteString("\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return sb.String()
}

func (m *Mailer) formatStart(booking *domain.Booking) string {
	return booking.StartAt.In(m.location).Format("02.01.2006 15:04")
}
