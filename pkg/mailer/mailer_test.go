package mailer

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	msg := Message{
		To:      "guest@example.com",
		ReplyTo: "staff@example.com",
		Subject: "Booking received\r\nBcc: evil@example.com",
		Body:    "Hello\nSee you soon",
	}

	raw := string(build("Horizon Trails", "noreply@example.com", msg, now))

	assert.Contains(t, raw, "From: Horizon Trails <noreply@example.com>\r\n")
	assert.Contains(t, raw, "To: guest@example.com\r\n")
	assert.Contains(t, raw, "Reply-To: staff@example.com\r\n")
	assert.Contains(t, raw, "Subject: Booking received  Bcc: evil@example.com\r\n")
	assert.NotContains(t, raw, "\r\nBcc:")
	assert.Contains(t, raw, "Date: Mon, 19 Oct 2026 09:00:00 +0000\r\n")
	assert.Contains(t, raw, "\r\n\r\nHello\r\nSee you soon\r\n")
}

func TestBuild_NoFromName(t *testing.T) {
	raw := string(build("", "noreply@example.com", Message{To: "a@example.com"}, time.Now()))
	assert.Contains(t, raw, "From: noreply@example.com\r\n")
	assert.NotContains(t, raw, "Reply-To")
}

func TestNewSMTPMailer_DefaultsFromToUsername(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "bot@example.com"})
	assert.Equal(t, "bot@example.com", m.cfg.FromEmail)
	assert.Equal(t, "smtp", m.Name())
}

func TestSMTPMailer_RequiresRecipient(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: "587"})
	err := m.Send(context.Background(), Message{Subject: "hi"})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestSMTPMailer_CancelledContext(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "127.0.0.1", Port: "1"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, Message{To: "guest@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect")
}

func TestLogMailer(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	m := NewLogMailer(logger)
	require.NoError(t, m.Send(context.Background(), Message{To: "guest@example.com", Subject: "Hello"}))
	assert.Contains(t, buf.String(), `"to":"guest@example.com"`)
	assert.Contains(t, buf.String(), `"subject":"Hello"`)
	assert.Equal(t, "log", m.Name())

	assert.ErrorIs(t, m.Send(context.Background(), Message{}), ErrNoRecipient)
}
