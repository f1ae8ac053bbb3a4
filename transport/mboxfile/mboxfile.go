// Package mboxfile implements a Transport that appends deliveries to a
// local mbox file, which is handy for capturing outgoing mail during
// development.
package mboxfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/emersion/go-mbox"
)

// Transport appends each delivery to an mbox file as one message record.
type Transport struct {
	path string
	from string

	// now is the message timestamp source, replaceable in tests.
	now func() time.Time
}

// New returns a Transport appending to the file at path. The file is
// created on first use. The from address labels the mbox "From " separator
// lines.
func New(path, from string) *Transport {
	return &Transport{path: path, from: from, now: time.Now}
}

// Send appends the message to the mbox file.
func (t *Transport) Send(ctx context.Context, recipientLine, subject, body, headerBlock string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open mbox %s: %w", t.path, err)
	}
	defer func() { _ = f.Close() }()

	w := mbox.NewWriter(f)
	mw, err := w.CreateMessage(t.from, t.now())
	if err != nil {
		return fmt.Errorf("cannot start mbox record: %w", err)
	}

	msg := headerBlock
	if msg != "" {
		msg += "\r\n"
	}
	msg += "To: " + recipientLine + "\r\n"
	msg += "Subject: " + subject + "\r\n\r\n"
	msg += body + "\r\n"

	if _, err := io.WriteString(mw, msg); err != nil {
		return fmt.Errorf("cannot write mbox record: %w", err)
	}
	return w.Close()
}
