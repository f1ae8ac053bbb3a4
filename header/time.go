package header

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/araddon/dateparse"
)

// ErrNoSuchField is returned by List.Time when the named field is not set.
var ErrNoSuchField = errors.New("no such header field")

// ParseTime parses a date field body. It attempts the format specified by
// RFC 5322 first and falls back to parsing many other formats seen in the
// wild.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// NewDate constructs a generic Date field with the time formatted per
// time.RFC1123Z.
func NewDate(t time.Time) *Field {
	return New(Date, t.Format(time.RFC1123Z))
}

// Time parses the named field's body as a date. It returns the zero value
// and ErrNoSuchField if the field is not set, or a parse error if the body
// is not a recognizable date.
func (l *List) Time(name string) (time.Time, error) {
	f := l.Lookup(name)
	if f == nil {
		return time.Time{}, ErrNoSuchField
	}
	return ParseTime(f.Body())
}
