package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"rental-ops/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestNewMailer_Mode(t *testing.T) {
	assert.IsType(t, &LogMailer{}, NewMailer(config.OTPConfig{MailMode: "log"}, "Acme", discardLogger()))
	assert.IsType(t, &LogMailer{}, NewMailer(config.OTPConfig{}, "Acme", discardLogger()))
	assert.IsType(t, &SMTPMailer{}, NewMailer(config.OTPConfig{MailMode: "SMTP"}, "Acme", discardLogger()))
}

func TestLogMailer_SendLoginCode(t *testing.T) {
	var buf bytes.Buffer
	mailer := &LogMailer{logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	err := mailer.SendLoginCode(context.Background(), "dana@example.com", "123456", time.Date(2025, 7, 1, 9, 10, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"code":"123456"`)
	assert.Contains(t, buf.String(), `"expires_at":"2025-07-01T09:10:00Z"`)
}

func smtpTestConfig() config.OTPConfig {
	return config.OTPConfig{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUsername: "mailer",
		SMTPPassword: "secret",
		FromAddress:  "no-reply@example.com",
	}
}

func renderMessage(t *testing.T, msg *mail.Msg) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSMTPMailer_SendLoginCode(t *testing.T) {
	var sent *mail.Msg
	mailer := &SMTPMailer{
		cfg:         smtpTestConfig(),
		companyName: "Acme Stays",
		send: func(_ context.Context, msg *mail.Msg) error {
			sent = msg
			return nil
		},
	}

	err := mailer.SendLoginCode(context.Background(), "dana@example.com", "004211", time.Date(2025, 7, 1, 9, 10, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotNil(t, sent)

	recipients, err := sent.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"dana@example.com"}, recipients)

	raw := renderMessage(t, sent)
	assert.Contains(t, raw, "no-reply@example.com")
	assert.Contains(t, raw, "Subject: Your Acme Stays login code")
	assert.Contains(t, raw, "Your login code is 004211.")
	assert.Contains(t, raw, "09:10 UTC")
}

func TestSMTPMailer_EncodesNonASCIISubject(t *testing.T) {
	var sent *mail.Msg
	mailer := &SMTPMailer{
		cfg:         smtpTestConfig(),
		companyName: "Ålesund Ferienwohnungen",
		send: func(_ context.Context, msg *mail.Msg) error {
			sent = msg
			return nil
		},
	}

	require.NoError(t, mailer.SendLoginCode(context.Background(), "dana@example.com", "123456", time.Now()))
	require.NotNil(t, sent)

	raw := renderMessage(t, sent)
	assert.Contains(t, raw, "Subject: =?UTF-8?q?")
	assert.NotContains(t, raw, "Ålesund")
}

func TestSMTPMailer_Failures(t *testing.T) {
	unconfigured := &SMTPMailer{}
	assert.Error(t, unconfigured.SendLoginCode(context.Background(), "a@example.com", "1", time.Now()))

	badRecipient := &SMTPMailer{cfg: smtpTestConfig(), send: func(context.Context, *mail.Msg) error { return nil }}
	assert.ErrorContains(t, badRecipient.SendLoginCode(context.Background(), "not an address", "1", time.Now()), "invalid recipient")

	failing := &SMTPMailer{
		cfg: smtpTestConfig(),
		send: func(context.Context, *mail.Msg) error {
			return errors.New("relay denied")
		},
	}
	err := failing.SendLoginCode(context.Background(), "a@example.com", "1", time.Now())
	assert.ErrorContains(t, err, "relay denied")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, failing.SendLoginCode(ctx, "a@example.com", "1", time.Now()), context.Canceled)
}

func TestSMTPMailer_StopsCallingRelayWhileBreakerOpen(t *testing.T) {
	attempts := 0
	mailer := &SMTPMailer{
		cfg: smtpTestConfig(),
		send: func(context.Context, *mail.Msg) error {
			attempts++
			return errors.New("relay down")
		},
		breaker: NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 2, ResetTimeout: time.Hour, HalfOpenMaxSucc: 1}),
	}

	for i := 0; i < 2; i++ {
		assert.ErrorContains(t, mailer.SendLoginCode(context.Background(), "a@example.com", "1", time.Now()), "relay down")
	}

	err := mailer.SendLoginCode(context.Background(), "a@example.com", "1", time.Now())
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.Equal(t, 2, attempts)
}
