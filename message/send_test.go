package message_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandren/mailout/message"
)

// call records the arguments of one transport Send invocation.
type call struct {
	recipientLine string
	subject       string
	body          string
	headerBlock   string
}

// fakeTransport records calls and fails delivery for recipient lines
// containing any of the configured fragments.
type fakeTransport struct {
	failFor []string
	calls   []call
}

func (f *fakeTransport) Send(_ context.Context, recipientLine, subject, body, headerBlock string) error {
	f.calls = append(f.calls, call{recipientLine, subject, body, headerBlock})
	for _, frag := range f.failFor {
		if strings.Contains(recipientLine, frag) {
			return errors.New("delivery refused")
		}
	}
	return nil
}

func threeRecipientMessage(t *testing.T) *message.Message {
	t.Helper()

	m := message.New()
	require.NoError(t, m.SetFrom("sender@x.com"))
	for _, a := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		ok, err := m.AddRecipient("", a)
		require.NoError(t, err)
		require.True(t, ok)
	}
	m.SetSubject("Hi")
	m.SetBody("Hello")
	return m
}

func TestSend_SerialSuccess(t *testing.T) {
	t.Parallel()

	m := threeRecipientMessage(t)
	ft := &fakeTransport{}

	assert.Equal(t, 0, m.Send(context.Background(), ft, false))
	assert.Empty(t, m.Errors())

	require.Len(t, ft.calls, 3)
	assert.Equal(t, "a@x.com", ft.calls[0].recipientLine)
	assert.Equal(t, "b@x.com", ft.calls[1].recipientLine)
	assert.Equal(t, "c@x.com", ft.calls[2].recipientLine)
	assert.Equal(t, "Hi", ft.calls[0].subject)
	assert.Equal(t, "Hello", ft.calls[0].body)
	assert.Contains(t, ft.calls[0].headerBlock, "From: sender@x.com")
	assert.Contains(t, ft.calls[0].headerBlock, "X-Mailer: mailout")
}

func TestSend_SerialContinuesPastFailure(t *testing.T) {
	t.Parallel()

	m := threeRecipientMessage(t)
	ft := &fakeTransport{failFor: []string{"b@x.com"}}

	assert.Equal(t, 1, m.Send(context.Background(), ft, false))

	// all three deliveries are attempted despite the middle one failing
	assert.Len(t, ft.calls, 3)

	errs := m.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "Unable to send to b@x.com", errs[0])
}

func TestSend_SerialCountsEveryFailure(t *testing.T) {
	t.Parallel()

	m := threeRecipientMessage(t)
	ft := &fakeTransport{failFor: []string{"a@x.com", "c@x.com"}}

	assert.Equal(t, 2, m.Send(context.Background(), ft, false))
	assert.Equal(t, []string{
		"Unable to send to a@x.com",
		"Unable to send to c@x.com",
	}, m.Errors())
}

func TestSend_Batch(t *testing.T) {
	t.Parallel()

	m := threeRecipientMessage(t)
	ft := &fakeTransport{}

	assert.Equal(t, 0, m.Send(context.Background(), ft, true))
	require.Len(t, ft.calls, 1)
	assert.Equal(t, "a@x.com, b@x.com, c@x.com", ft.calls[0].recipientLine)
}

func TestSend_BatchFailureIsOne(t *testing.T) {
	t.Parallel()

	m := threeRecipientMessage(t)
	ft := &fakeTransport{failFor: []string{"b@x.com"}}

	assert.Equal(t, 1, m.Send(context.Background(), ft, true))
	assert.Len(t, ft.calls, 1)
	require.Len(t, m.Errors(), 1)
	assert.Contains(t, m.Errors()[0], "a@x.com, b@x.com, c@x.com")
}

func TestSend_ClearsErrorsEachCall(t *testing.T) {
	t.Parallel()

	m := threeRecipientMessage(t)
	failing := &fakeTransport{failFor: []string{"@x.com"}}

	assert.Equal(t, 3, m.Send(context.Background(), failing, false))
	assert.Len(t, m.Errors(), 3)

	working := &fakeTransport{}
	assert.Equal(t, 0, m.Send(context.Background(), working, false))
	assert.Empty(t, m.Errors())
}

func TestSend_NamedRecipientAppearsInError(t *testing.T) {
	t.Parallel()

	m := message.New()
	ok, err := m.AddRecipient("Bob", "b@x.com")
	require.NoError(t, err)
	require.True(t, ok)

	ft := &fakeTransport{failFor: []string{"b@x.com"}}
	assert.Equal(t, 1, m.Send(context.Background(), ft, false))
	assert.Equal(t, []string{"Unable to send to Bob <b@x.com>"}, m.Errors())
}

func TestErrors_ReturnsACopy(t *testing.T) {
	t.Parallel()

	m := threeRecipientMessage(t)
	ft := &fakeTransport{failFor: []string{"a@x.com"}}
	require.Equal(t, 1, m.Send(context.Background(), ft, false))

	errs := m.Errors()
	errs[0] = "clobbered"
	assert.Equal(t, "Unable to send to a@x.com", m.Errors()[0])
}
