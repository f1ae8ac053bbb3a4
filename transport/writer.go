package transport

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer prints messages to an io.Writer in a human-readable format. It
// always succeeds as long as the underlying writer accepts the bytes,
// which makes it the transport of choice for local inspection and dry
// runs.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer transport that writes to os.Stdout.
func NewWriter() *Writer {
	return &Writer{w: os.Stdout}
}

// NewWriterTo returns a Writer transport that writes to the given writer.
// This is useful for testing.
func NewWriterTo(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Send prints the delivery in a readable block.
func (t *Writer) Send(_ context.Context, recipientLine, subject, body, headerBlock string) error {
	var b strings.Builder

	b.WriteString("========================================\n")
	for _, line := range strings.Split(headerBlock, "\r\n") {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("To: %s\n", recipientLine))
	b.WriteString(fmt.Sprintf("Subject: %s\n", subject))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")

	_, err := io.WriteString(t.w, b.String())
	return err
}
