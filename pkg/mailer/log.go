package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogMailer writes messages to the log instead of sending them (development mode)
type LogMailer struct {
	logger *logrus.Logger
}

// NewLogMailer creates a new log-only mailer
func NewLogMailer(logger *logrus.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Name returns the name of the mailer implementation
func (m *LogMailer) Name() string {
	return "log"
}

// Send logs the message
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	m.logger.WithFields(logrus.Fields{
		"to":       msg.To,
		"reply_to": msg.ReplyTo,
		"subject":  msg.Subject,
	}).Info("Email not sent (development mode)")

	return nil
}
