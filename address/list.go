package address

import (
	"errors"
	"strings"
)

// ErrIndexOutOfRange is returned when an attempt is made to access a
// recipient index that is too large or too small.
var ErrIndexOutOfRange = errors.New("recipient index is out of range")

// List is an ordered collection of recipients that is semantically a set
// over the address: insertion order is preserved and Add refuses an address
// that is already present. Addresses are compared exactly, case included.
//
// A List must not be shared between goroutines without external
// synchronization; in practice each list is exclusively owned by one
// message or one Cc/Bcc header field.
type List struct {
	recipients []Recipient
}

// NewList builds a list from the given recipients via Add, so duplicate
// addresses among the arguments are silently dropped.
func NewList(rs ...Recipient) *List {
	l := &List{}
	for _, r := range rs {
		l.Add(r)
	}
	return l
}

// Add appends the recipient and returns true, unless a recipient with the
// same address is already present, in which case the list is left untouched
// and Add returns false. This is the sanctioned mutator: it is the only
// operation that upholds the uniqueness rule.
func (l *List) Add(r Recipient) bool {
	if l.Contains(r.Address()) {
		return false
	}
	l.recipients = append(l.recipients, r)
	return true
}

// Contains reports whether a recipient with exactly this address is in the
// list.
func (l *List) Contains(address string) bool {
	for _, r := range l.recipients {
		if r.Address() == address {
			return true
		}
	}
	return false
}

// Len returns the number of recipients in the list.
func (l *List) Len() int {
	return len(l.recipients)
}

// Get returns the nth recipient. It fails with ErrIndexOutOfRange if n is
// out of range.
func (l *List) Get(n int) (Recipient, error) {
	if n < 0 || n >= len(l.recipients) {
		return Recipient{}, ErrIndexOutOfRange
	}
	return l.recipients[n], nil
}

// Set replaces the nth recipient. It fails with ErrIndexOutOfRange if n is
// out of range.
//
// Set is a low-level escape hatch: it does not check the replacement
// address against the rest of the list, so it can introduce a duplicate.
// Callers that want the uniqueness guarantee should use Add.
func (l *List) Set(n int, r Recipient) error {
	if n < 0 || n >= len(l.recipients) {
		return ErrIndexOutOfRange
	}
	l.recipients[n] = r
	return nil
}

// Recipients returns a copy of the recipients in insertion order.
func (l *List) Recipients() []Recipient {
	rs := make([]Recipient, len(l.recipients))
	copy(rs, l.recipients)
	return rs
}

// String joins the rendered recipients with ", " in insertion order. An
// empty list renders as the empty string.
func (l *List) String() string {
	var b strings.Builder
	for i, r := range l.recipients {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	return b.String()
}

// Iterate returns a restartable forward iterator over the list. The
// iterator reads the list live: recipients added before the cursor reaches
// them will be visited.
func (l *List) Iterate() *Iterator {
	return &Iterator{list: l}
}

// Iterator walks a List in insertion order.
type Iterator struct {
	list *List
	next int
}

// Next returns the next recipient, or false when the iterator is spent.
func (it *Iterator) Next() (Recipient, bool) {
	if it.next >= it.list.Len() {
		return Recipient{}, false
	}
	r := it.list.recipients[it.next]
	it.next++
	return r, true
}

// Reset rewinds the iterator to the start of the list.
func (it *Iterator) Reset() {
	it.next = 0
}
