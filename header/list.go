package header

import (
	"strings"

	"github.com/sandren/mailout/internal/version"
)

// crlf separates field lines in the rendered header block.
const crlf = "\r\n"

// List is an ordered collection of fields that is semantically a set keyed
// by field name: insertion order is preserved, Add refuses a name that is
// already present, and Lookup returns the first match. Names are compared
// case-insensitively.
//
// A new List carries a default X-Mailer field. The uniqueness rule applies
// to it like any other field, so callers that want their own X-Mailer must
// Delete the default first.
type List struct {
	fields []*Field
}

// NewList returns a list pre-populated with the default X-Mailer field.
func NewList() *List {
	l := &List{fields: make([]*Field, 0, 4)}
	l.Add(New(XMailer, version.Mailer()))
	return l
}

// Add appends the field and returns true, unless a field with the same
// name is already present, in which case the list is left untouched and
// Add returns false.
func (l *List) Add(f *Field) bool {
	if l.Lookup(f.Name()) != nil {
		return false
	}
	l.fields = append(l.fields, f)
	return true
}

// Lookup returns the first field with the given name, or nil if no such
// field is set.
func (l *List) Lookup(name string) *Field {
	for _, f := range l.fields {
		if strings.EqualFold(f.Name(), name) {
			return f
		}
	}
	return nil
}

// Delete removes the first field with the given name and reports whether
// a field was removed.
func (l *List) Delete(name string) bool {
	for i, f := range l.fields {
		if strings.EqualFold(f.Name(), name) {
			copy(l.fields[i:], l.fields[i+1:])
			l.fields = l.fields[:len(l.fields)-1]
			return true
		}
	}
	return false
}

// Len returns the number of fields in the list.
func (l *List) Len() int {
	return len(l.fields)
}

// Get returns the nth field or nil if n is out of range.
func (l *List) Get(n int) *Field {
	if n < 0 || n >= len(l.fields) {
		return nil
	}
	return l.fields[n]
}

// Fields returns a copy of the field slice in insertion order. The fields
// themselves are shared, not copied.
func (l *List) Fields() []*Field {
	fs := make([]*Field, len(l.fields))
	copy(fs, l.fields)
	return fs
}

// String renders the header block: field lines joined by CRLF with no
// trailing break.
func (l *List) String() string {
	var b strings.Builder
	for i, f := range l.fields {
		if i > 0 {
			b.WriteString(crlf)
		}
		b.WriteString(f.String())
	}
	return b.String()
}
