package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoRecipient indicates a message without a destination address
var ErrNoRecipient = errors.New("message has no recipient")

// Message is a plain-text email
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer defines the interface for sending notification emails
type Mailer interface {
	// Send delivers a single message. It does not retry.
	Send(ctx context.Context, msg Message) error

	// Name returns the name of the mailer implementation
	Name() string
}

// build renders msg as an RFC 5322 message from the given sender
func build(fromName, fromEmail string, msg Message, now time.Time) []byte {
	var b strings.Builder

	if fromName != "" {
		fmt.Fprintf(&b, "From: %s <%s>\r\n", fromName, fromEmail)
	} else {
		fmt.Fprintf(&b, "From: %s\r\n", fromEmail)
	}
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", now.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	b.WriteString("\r\n")

	return []byte(b.String())
}

// sanitizeHeader strips line breaks so user input cannot inject headers
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
