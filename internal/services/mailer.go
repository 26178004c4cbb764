package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rental-ops/internal/config"

	"github.com/wneessen/go-mail"
)

const (
	MailModeLog  = "log"
	MailModeSMTP = "smtp"
)

// NewMailer picks the delivery mode from configuration. Any mode other than smtp logs codes.
func NewMailer(cfg config.OTPConfig, companyName string, logger *slog.Logger) MailerInterface {
	if strings.EqualFold(cfg.MailMode, MailModeSMTP) {
		return &SMTPMailer{
			cfg:         cfg,
			companyName: companyName,
			breaker:     NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		}
	}
	return &LogMailer{logger: logger}
}

// LogMailer writes login codes to the application log. Development only.
type LogMailer struct {
	logger *slog.Logger
}

func (m *LogMailer) SendLoginCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	m.logger.InfoContext(ctx, "login code issued",
		"email", email,
		"code", code,
		"expires_at", expiresAt.UTC().Format(time.RFC3339))
	return nil
}

// SMTPMailer sends login codes through an SMTP relay. STARTTLS is used when the relay offers it.
type SMTPMailer struct {
	cfg         config.OTPConfig
	companyName string
	send        func(ctx context.Context, msg *mail.Msg) error
	breaker     *CircuitBreaker
}

func (m *SMTPMailer) SendLoginCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.cfg.SMTPHost == "" {
		return fmt.Errorf("smtp host is not configured")
	}

	msg, err := buildLoginCodeMessage(m.cfg.FromAddress, email, m.companyName, code, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to build login code email: %w", err)
	}

	send := m.send
	if send == nil {
		send = m.dialAndSend
	}

	deliver := func() error { return send(ctx, msg) }
	if m.breaker != nil {
		err = m.breaker.Call(deliver)
	} else {
		err = deliver()
	}
	if err != nil {
		return fmt.Errorf("failed to send login code: %w", err)
	}
	return nil
}

func (m *SMTPMailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(15 * time.Second),
	}
	if m.cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.SMTPUsername),
			mail.WithPassword(m.cfg.SMTPPassword))
	}

	client, err := mail.NewClient(m.cfg.SMTPHost, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func buildLoginCodeMessage(from, to, companyName, code string, expiresAt time.Time) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(fmt.Sprintf("Your %s login code", companyName))

	var b strings.Builder
	fmt.Fprintf(&b, "Your login code is %s.\r\n", code)
	fmt.Fprintf(&b, "It expires at %s UTC.\r\n", expiresAt.UTC().Format("15:04"))
	b.WriteString("If you did not request this code you can ignore this email.\r\n")
	msg.SetBodyString(mail.TypeTextPlain, b.String())
	return msg, nil
}
