package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandren/mailout/address"
)

func TestNew(t *testing.T) {
	t.Parallel()

	r, err := address.New("john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "", r.Name())
	assert.Equal(t, "john@example.com", r.Address())
	assert.Equal(t, "john@example.com", r.String())
}

func TestNewNamed(t *testing.T) {
	t.Parallel()

	r, err := address.NewNamed("John Doe", "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", r.Name())
	assert.Equal(t, "John Doe <john@example.com>", r.String())
}

func TestNew_InvalidAddress(t *testing.T) {
	t.Parallel()

	_, err := address.New("bad@")
	assert.ErrorIs(t, err, address.ErrInvalidAddress)

	_, err = address.NewNamed("Nobody", "@nodomain")
	assert.ErrorIs(t, err, address.ErrInvalidAddress)
}
