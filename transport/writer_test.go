package transport_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandren/mailout/transport"
)

func TestWriter_Send(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	w := transport.NewWriterTo(&buf)

	err := w.Send(context.Background(),
		"a@x.com, Bob <b@x.com>",
		"Hi",
		"Hello",
		"X-Mailer: mailout 0.3.0\r\nFrom: sender@x.com")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "X-Mailer: mailout 0.3.0\n")
	assert.Contains(t, out, "From: sender@x.com\n")
	assert.Contains(t, out, "To: a@x.com, Bob <b@x.com>\n")
	assert.Contains(t, out, "Subject: Hi\n")
	assert.Contains(t, out, "\nHello\n")
}

// failingWriter refuses all writes.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestWriter_SendPropagatesWriteErrors(t *testing.T) {
	t.Parallel()

	w := transport.NewWriterTo(failingWriter{})
	err := w.Send(context.Background(), "a@x.com", "Hi", "Hello", "")
	assert.Error(t, err)
}
