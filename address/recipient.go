package address

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress is returned by constructors when an address fails the
// syntax checks performed by Validate.
var ErrInvalidAddress = errors.New("invalid email address")

// Recipient is a validated, optionally-named email address. It is immutable
// once constructed: validation happens here, not on every read.
type Recipient struct {
	name    string
	address string
}

// New constructs an anonymous Recipient. It fails with ErrInvalidAddress
// if the address does not validate.
func New(address string) (Recipient, error) {
	return NewNamed("", address)
}

// NewNamed constructs a Recipient with a display name. An empty name is
// the same as calling New. It fails with ErrInvalidAddress if the address
// does not validate.
func NewNamed(name, address string) (Recipient, error) {
	if !Validate(address) {
		return Recipient{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return Recipient{name: name, address: address}, nil
}

// Name returns the display name, which may be empty.
func (r Recipient) Name() string {
	return r.name
}

// Address returns the validated email address.
func (r Recipient) Address() string {
	return r.address
}

// String renders the recipient as "name <address>" when a display name is
// present and as the bare address otherwise.
func (r Recipient) String() string {
	if r.name != "" {
		return fmt.Sprintf("%s <%s>", r.name, r.address)
	}
	return r.address
}
