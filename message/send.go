package message

import (
	"context"
	"fmt"

	"github.com/sandren/mailout/transport"
)

// Send dispatches the message through the given transport and returns the
// number of failed deliveries. The failure log exposed by Errors is
// cleared at the start of every call.
//
// In batch mode one transport call carries all recipients as a single
// joined recipient line; the transport cannot report per-address results
// in that mode, so the return value is normalized to 0 or 1. In serial
// mode one transport call is made per recipient in insertion order. A
// failed call records "Unable to send to <recipient>" and the loop
// continues with the next recipient; there is no early abort. Each
// transport call is attempted exactly once either way.
func (m *Message) Send(ctx context.Context, t transport.Transport, batch bool) int {
	m.errs = nil
	block := m.headers.String()

	if batch {
		line := m.to.String()
		if err := t.Send(ctx, line, m.subject, m.body, block); err != nil {
			m.errs = append(m.errs, fmt.Sprintf("Unable to send to %s", line))
			return 1
		}
		return 0
	}

	it := m.to.Iterate()
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		if err := t.Send(ctx, r.String(), m.subject, m.body, block); err != nil {
			m.errs = append(m.errs, fmt.Sprintf("Unable to send to %s", r))
		}
	}
	return len(m.errs)
}
