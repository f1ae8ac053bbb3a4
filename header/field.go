// Package header provides the tagged header Field and the ordered,
// unique-by-name header List used to build a message's metadata block.
package header

import (
	"fmt"

	"github.com/sandren/mailout/address"
)

// Names of the standard fields this package constructs. Lookup matches
// names case-insensitively, so these spellings are canonical for output
// only.
const (
	From    = "From"
	ReplyTo = "Reply-To"
	Cc      = "Cc"
	Bcc     = "Bcc"
	To      = "To"
	Subject = "Subject"
	Date    = "Date"
	XMailer = "X-Mailer"
)

// Kind discriminates the field variants. Recipient kinds (KindCc, KindBcc)
// carry an owned address.List instead of a string body.
type Kind int

const (
	KindGeneric Kind = iota
	KindFrom
	KindReplyTo
	KindCc
	KindBcc
)

// String returns the fixed field name for the kind, or "" for KindGeneric,
// whose name is chosen per field.
func (k Kind) String() string {
	switch k {
	case KindFrom:
		return From
	case KindReplyTo:
		return ReplyTo
	case KindCc:
		return Cc
	case KindBcc:
		return Bcc
	}
	return ""
}

// Field is a single named field of a message's metadata block. It is a
// tagged variant: generic, From, and Reply-To fields hold a string body,
// while Cc and Bcc fields hold their own private recipient list.
type Field struct {
	kind       Kind
	name       string
	body       string
	recipients *address.List
}

// New constructs a generic field with the given name and body.
func New(name, body string) *Field {
	return &Field{kind: KindGeneric, name: name, body: body}
}

// NewFrom constructs a From field. It fails with address.ErrInvalidAddress
// if the sender address does not validate; no field is produced in that
// case.
func NewFrom(sender string) (*Field, error) {
	return newAddressField(KindFrom, sender)
}

// NewReplyTo constructs a Reply-To field. It fails with
// address.ErrInvalidAddress if the address does not validate.
func NewReplyTo(addr string) (*Field, error) {
	return newAddressField(KindReplyTo, addr)
}

func newAddressField(k Kind, addr string) (*Field, error) {
	if !address.Validate(addr) {
		return nil, fmt.Errorf("%w: %q", address.ErrInvalidAddress, addr)
	}
	return &Field{kind: k, name: k.String(), body: addr}, nil
}

// NewCc constructs a Cc field with an empty recipient list.
func NewCc() *Field {
	return NewCcList(nil)
}

// NewBcc constructs a Bcc field with an empty recipient list.
func NewBcc() *Field {
	return NewBccList(nil)
}

// NewCcList constructs a Cc field around the given recipient list, which
// the field takes exclusive ownership of. A nil list means empty.
func NewCcList(l *address.List) *Field {
	return newRecipientField(KindCc, l)
}

// NewBccList constructs a Bcc field around the given recipient list, which
// the field takes exclusive ownership of. A nil list means empty.
func NewBccList(l *address.List) *Field {
	return newRecipientField(KindBcc, l)
}

func newRecipientField(k Kind, l *address.List) *Field {
	if l == nil {
		l = address.NewList()
	}
	return &Field{kind: k, name: k.String(), recipients: l}
}

// Kind returns the variant of the field.
func (f *Field) Kind() Kind {
	return f.kind
}

// Name returns the name of the field.
func (f *Field) Name() string {
	return f.name
}

// Body returns the value of the field as a string. For recipient fields
// this is the rendered recipient list.
func (f *Field) Body() string {
	if f.isRecipientKind() {
		return f.recipients.String()
	}
	return f.body
}

// SetBody updates the body of the field. Calling SetBody on a Cc or Bcc
// field is a programmer error and panics; mutate those through
// AddRecipient instead.
func (f *Field) SetBody(body string) {
	if f.isRecipientKind() {
		panic(fmt.Sprintf("header: SetBody called on %s field", f.name))
	}
	f.body = body
}

// Recipients returns the recipient list owned by a Cc or Bcc field and nil
// for every other kind.
func (f *Field) Recipients() *address.List {
	return f.recipients
}

// AddRecipient appends a recipient to a Cc or Bcc field's list. It returns
// false if a recipient with the same address is already present. Calling
// AddRecipient on any other field kind is a programmer error and panics.
func (f *Field) AddRecipient(r address.Recipient) bool {
	if !f.isRecipientKind() {
		panic(fmt.Sprintf("header: AddRecipient called on %s field", f.name))
	}
	return f.recipients.Add(r)
}

func (f *Field) isRecipientKind() bool {
	return f.kind == KindCc || f.kind == KindBcc
}

// String returns the complete field as a "name: body" line.
func (f *Field) String() string {
	return fmt.Sprintf("%s: %s", f.name, f.Body())
}
