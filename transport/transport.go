// Package transport defines the delivery capability consumed by
// message.Send and provides local implementations of it. Network-backed
// implementations live in the ses and mboxfile subpackages.
package transport

import (
	"context"
	"strings"
)

// Transport delivers one composed message to one recipient line. The
// recipient line is either a single rendered recipient or, in batch mode,
// all recipients joined with ", ". The header block is the CRLF-joined
// rendering of the message's header list.
type Transport interface {
	Send(ctx context.Context, recipientLine, subject, body, headerBlock string) error
}

// SplitRecipientLine breaks a recipient line back into bare addresses.
// Rendered recipients look like either "addr" or "name <addr>"; only the
// addr-spec of each is returned. A ", " inside a display name is not a
// recipient boundary, so fragments are merged until they form a whole
// recipient.
func SplitRecipientLine(line string) []string {
	parts := strings.Split(line, ", ")
	addrs := make([]string, 0, len(parts))
	pending := ""
	for _, p := range parts {
		if pending != "" {
			p = pending + ", " + p
		}
		if !wholeRecipient(p) {
			pending = p
			continue
		}
		pending = ""
		if p = strings.TrimSpace(p); p != "" {
			addrs = append(addrs, AddrSpec(p))
		}
	}
	if p := strings.TrimSpace(pending); p != "" {
		addrs = append(addrs, AddrSpec(p))
	}
	return addrs
}

// wholeRecipient reports whether a fragment produced by splitting on ", "
// is a complete rendered recipient rather than the left half of a display
// name containing a comma.
func wholeRecipient(p string) bool {
	if strings.ContainsRune(p, '<') {
		return strings.ContainsRune(p, '>')
	}
	return strings.ContainsRune(p, '@')
}

// AddrSpec extracts the bare address from a rendered recipient, stripping
// a "name <...>" wrapper when present.
func AddrSpec(recipient string) string {
	open := strings.LastIndexByte(recipient, '<')
	if open < 0 {
		return recipient
	}
	end := strings.IndexByte(recipient[open:], '>')
	if end < 0 {
		return recipient
	}
	return recipient[open+1 : open+end]
}
