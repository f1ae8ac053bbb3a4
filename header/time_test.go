package header_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandren/mailout/header"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	// RFC 5322 form
	got, err := header.ParseTime("Mon, 02 Jan 2006 15:04:05 -0700")
	require.NoError(t, err)
	assert.Equal(t, 2006, got.Year())

	// lenient fallback
	got, err = header.ParseTime("2026-08-30 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.August, got.Month())

	_, err = header.ParseTime("the day after tomorrow")
	assert.Error(t, err)
}

func TestNewDate(t *testing.T) {
	t.Parallel()

	when := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	f := header.NewDate(when)
	assert.Equal(t, header.Date, f.Name())
	assert.Equal(t, "Sun, 30 Aug 2026 10:00:00 +0000", f.Body())
}

func TestList_Time(t *testing.T) {
	t.Parallel()

	l := header.NewList()

	_, err := l.Time(header.Date)
	assert.ErrorIs(t, err, header.ErrNoSuchField)

	when := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	require.True(t, l.Add(header.NewDate(when)))

	got, err := l.Time(header.Date)
	require.NoError(t, err)
	assert.True(t, when.Equal(got))

	l.Add(header.New("X-Queued", "not a date"))
	_, err = l.Time("X-Queued")
	assert.Error(t, err)
}
