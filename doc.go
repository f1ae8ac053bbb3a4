// Package mailout builds structured email messages and dispatches them
// through pluggable delivery transports.
//
// The library is split according to part of message. The address package
// validates address syntax and provides the Recipient value and the ordered,
// unique-by-address recipient List. The header package provides the tagged
// header Field (generic, From, Reply-To, Cc, and Bcc variants) and the
// ordered, unique-by-name header List. The message package ties these
// together into a Message that renders itself as text and drives dispatch.
//
// Delivery is performed by implementations of transport.Transport. The
// transport package ships a writer-backed transport for local inspection and
// an SMTP submission transport; the transport/ses and transport/mboxfile
// packages deliver via AWS SESv2 and append to a local mbox file,
// respectively. The core never touches the network on its own: even the
// optional DNS existence check during address validation is an injectable
// capability (address.DomainResolver) that is off by default, so validation
// stays a pure function unless a caller opts in.
//
// A minimal composition looks like this:
//
//	m := message.New()
//	if err := m.SetFrom("no-reply@example.com"); err != nil { ... }
//	if ok, err := m.AddRecipient("Jane", "jane@example.com"); !ok { ... }
//	m.SetSubject("Hi")
//	m.SetBody("Hello")
//	failures := m.Send(ctx, transport.NewWriter(), false)
package mailout
