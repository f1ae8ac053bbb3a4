package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandren/mailout/transport"
)

func TestAddrSpec(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a@x.com", transport.AddrSpec("a@x.com"))
	assert.Equal(t, "a@x.com", transport.AddrSpec("Alice <a@x.com>"))
	assert.Equal(t, "a@x.com", transport.AddrSpec("Alice Q. <a@x.com>"))
	assert.Equal(t, "broken <a@x.com", transport.AddrSpec("broken <a@x.com"))
}

func TestSplitRecipientLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"a@x.com", "b@x.com", "c@x.com"},
		transport.SplitRecipientLine("a@x.com, Bob <b@x.com>, c@x.com"))

	assert.Equal(t, []string{"a@x.com"}, transport.SplitRecipientLine("a@x.com"))
	assert.Empty(t, transport.SplitRecipientLine(""))
}

func TestSplitRecipientLine_CommaInDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"j@x.com"},
		transport.SplitRecipientLine("Doe, John <j@x.com>"))

	assert.Equal(t,
		[]string{"a@x.com", "j@x.com", "c@x.com"},
		transport.SplitRecipientLine("a@x.com, Doe, John <j@x.com>, c@x.com"))

	assert.Equal(t,
		[]string{"j@x.com", "r@x.com"},
		transport.SplitRecipientLine(`"Doe, John" <j@x.com>, Roe, Jane <r@x.com>`))
}
