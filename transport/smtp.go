package transport

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTP submits messages to a mail submission agent using net/smtp. The
// net/smtp dialer does not honor contexts, so cancellation is only
// observed between deliveries.
type SMTP struct {
	// Addr is the host:port of the submission agent.
	Addr string

	// Sender is the envelope sender address.
	Sender string

	// Auth is optional client authentication.
	Auth smtp.Auth
}

// NewSMTP returns an SMTP transport without authentication.
func NewSMTP(addr, sender string) *SMTP {
	return &SMTP{Addr: addr, Sender: sender}
}

// Send assembles the wire message from the header block, recipient line,
// and subject, and submits it for every address on the recipient line.
func (t *SMTP) Send(ctx context.Context, recipientLine, subject, body, headerBlock string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rcpts := SplitRecipientLine(recipientLine)
	if len(rcpts) == 0 {
		return fmt.Errorf("no recipients on line %q", recipientLine)
	}

	var b strings.Builder
	if headerBlock != "" {
		b.WriteString(headerBlock)
		b.WriteString("\r\n")
	}
	b.WriteString("To: ")
	b.WriteString(recipientLine)
	b.WriteString("\r\n")
	b.WriteString("Subject: ")
	b.WriteString(subject)
	b.WriteString("\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	if err := smtp.SendMail(t.Addr, t.Auth, t.Sender, rcpts, []byte(b.String())); err != nil {
		return fmt.Errorf("smtp submission to %s: %w", t.Addr, err)
	}
	return nil
}
