// Package message aggregates a subject, a body, a recipient list, and a
// header list into a Message that renders itself as text and drives
// dispatch through a transport.
package message

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandren/mailout/address"
	"github.com/sandren/mailout/header"
)

// ErrDuplicateHeader is returned by the Set* methods when a field of the
// same type is already present on the message.
var ErrDuplicateHeader = errors.New("header field of that type is already set")

// Message is a structured email message being composed. It exclusively
// owns its recipient list and header list; a Message must not be shared
// between goroutines.
type Message struct {
	subject string
	body    string
	to      *address.List
	headers *header.List
	errs    []string
}

// New returns an empty message whose header list carries the default
// X-Mailer field.
func New() *Message {
	return &Message{
		to:      address.NewList(),
		headers: header.NewList(),
	}
}

// Subject returns the message subject.
func (m *Message) Subject() string {
	return m.subject
}

// SetSubject replaces the message subject.
func (m *Message) SetSubject(s string) {
	m.subject = s
}

// Body returns the message body.
func (m *Message) Body() string {
	return m.body
}

// SetBody replaces the message body.
func (m *Message) SetBody(b string) {
	m.body = b
}

// To returns the message's recipient list. The list is owned by the
// message; mutating it through this accessor is how recipients are
// normally added in bulk.
func (m *Message) To() *address.List {
	return m.to
}

// Headers returns the message's header list.
func (m *Message) Headers() *header.List {
	return m.headers
}

// Errors returns a copy of the delivery failures recorded by the last call
// to Send.
func (m *Message) Errors() []string {
	errs := make([]string, len(m.errs))
	copy(errs, m.errs)
	return errs
}

// AddRecipient validates the address, constructs a recipient, and appends
// it to the To list. It returns an error wrapping
// address.ErrInvalidAddress if the address does not validate, and false
// without error if a recipient with the same address is already present.
func (m *Message) AddRecipient(name, addr string) (bool, error) {
	r, err := address.NewNamed(name, addr)
	if err != nil {
		return false, err
	}
	return m.to.Add(r), nil
}

// SetFrom validates the sender address and stores a From field. It fails
// with address.ErrInvalidAddress if the address does not validate and with
// ErrDuplicateHeader if a From field is already set.
func (m *Message) SetFrom(addr string) error {
	f, err := header.NewFrom(addr)
	if err != nil {
		return err
	}
	if !m.headers.Add(f) {
		return fmt.Errorf("%w: %s", ErrDuplicateHeader, header.From)
	}
	return nil
}

// SetReplyTo validates the address and stores a Reply-To field. It fails
// with address.ErrInvalidAddress if the address does not validate and with
// ErrDuplicateHeader if a Reply-To field is already set.
func (m *Message) SetReplyTo(addr string) error {
	f, err := header.NewReplyTo(addr)
	if err != nil {
		return err
	}
	if !m.headers.Add(f) {
		return fmt.Errorf("%w: %s", ErrDuplicateHeader, header.ReplyTo)
	}
	return nil
}

// SetCc stores a Cc field around the given recipient list, which the
// message takes exclusive ownership of; the caller must not retain it. A
// nil list means empty. It fails with ErrDuplicateHeader if a Cc field is
// already set.
func (m *Message) SetCc(l *address.List) error {
	if !m.headers.Add(header.NewCcList(l)) {
		return fmt.Errorf("%w: %s", ErrDuplicateHeader, header.Cc)
	}
	return nil
}

// SetBcc stores a Bcc field around the given recipient list, which the
// message takes exclusive ownership of; the caller must not retain it. A
// nil list means empty. It fails with ErrDuplicateHeader if a Bcc field is
// already set.
func (m *Message) SetBcc(l *address.List) error {
	if !m.headers.Add(header.NewBccList(l)) {
		return fmt.Errorf("%w: %s", ErrDuplicateHeader, header.Bcc)
	}
	return nil
}

// StampDate replaces any Date field with one holding the given time.
func (m *Message) StampDate(t time.Time) {
	m.headers.Delete(header.Date)
	m.headers.Add(header.NewDate(t))
}

// String renders the message: the From line if set, the To line, Cc and
// Bcc lines if set, then the body followed by two newlines. The full
// header block, X-Mailer included, is not part of this rendering; it is
// handed to transports separately.
func (m *Message) String() string {
	var b strings.Builder

	if f := m.headers.Lookup(header.From); f != nil {
		b.WriteString(f.String())
		b.WriteString("\n")
	}

	b.WriteString(header.To)
	b.WriteString(": ")
	b.WriteString(m.to.String())
	b.WriteString("\n")

	if f := m.headers.Lookup(header.Cc); f != nil {
		b.WriteString(f.String())
		b.WriteString("\n")
	}
	if f := m.headers.Lookup(header.Bcc); f != nil {
		b.WriteString(f.String())
		b.WriteString("\n")
	}

	b.WriteString(m.body)
	b.WriteString("\n\n")

	return b.String()
}
