// Package address provides email address syntax validation and the
// Recipient value type with its ordered, unique-by-address List.
package address

import (
	"regexp"
	"strings"
)

// Length limits for the two halves of an address, per RFC 5321.
const (
	MaxLocalLength  = 64
	MaxDomainLength = 255
)

var (
	// atomLocal matches an unquoted local part: a run of atom characters,
	// each optionally preceded by a backslash escape.
	atomLocal = regexp.MustCompile(`^(\\.|[A-Za-z0-9!#%&` + "`" + `_=/$'*+?^{}|~.-])+$`)

	// quotedLocal matches a fully double-quoted local part whose interior
	// is any run of escaped-quote or non-quote characters.
	quotedLocal = regexp.MustCompile(`^"(\\"|[^"])+"$`)

	// domainChars matches the characters permitted in a domain.
	domainChars = regexp.MustCompile(`^[A-Za-z0-9.-]+$`)
)

// Split divides an address into its local part and domain at the last "@".
// The second return value is false when the address contains no "@".
func Split(address string) (local, domain string, ok bool) {
	at := strings.LastIndexByte(address, '@')
	if at < 0 {
		return "", "", false
	}
	return address[:at], address[at+1:], true
}

// Validate reports whether the given address is syntactically acceptable.
// It is a pure function: no DNS lookup is performed. Use Validator to
// combine this check with an optional DomainResolver.
//
// The checks are applied in order and the first failure wins:
// the address must contain an "@"; the local part (before the last "@")
// must be 1 to 64 characters, must not begin or end with a dot, and must
// not contain consecutive dots; the domain must be 1 to 255 characters
// drawn from letters, digits, dots, and hyphens, without consecutive dots;
// finally the local part must be either an atom or a quoted string.
func Validate(address string) bool {
	local, domain, ok := Split(address)
	if !ok {
		return false
	}

	if len(local) < 1 || len(local) > MaxLocalLength {
		return false
	}
	if len(domain) < 1 || len(domain) > MaxDomainLength {
		return false
	}

	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.Contains(local, "..") {
		return false
	}

	if !domainChars.MatchString(domain) {
		return false
	}
	if strings.Contains(domain, "..") {
		return false
	}

	// Literal backslash pairs are collapsed before matching so that an
	// escaped backslash never masquerades as an escape for the character
	// that follows it.
	bare := strings.ReplaceAll(local, `\\`, "")
	if !atomLocal.MatchString(bare) && !quotedLocal.MatchString(bare) {
		return false
	}

	return true
}
