package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDateValue_Validation tests component range checks
func TestNewDateValue_Validation(t *testing.T) {
	_, err := NewDateValue(1980, 13, 1)
	assert.Error(t, err)

	_, err = NewDateValue(1980, 1, 32)
	assert.Error(t, err)

	_, err = NewDateValue(-1, 1, 1)
	assert.Error(t, err)

	d, err := NewDateValue(0, 6, 15)
	require.NoError(t, err)
	_, ok := d.Year()
	assert.False(t, ok)
	month, ok := d.Month()
	assert.True(t, ok)
	assert.Equal(t, 6, month)
}

// TestDateValue_WireRoundTrip tests that absent components survive the
// zero-filled wire form
func TestDateValue_WireRoundTrip(t *testing.T) {
	d, err := NewDateValue(0, 6, 15)
	require.NoError(t, err)

	got := dateFromWire(d.wire())
	assert.True(t, got.Equal(d))

	wire := d.wire()
	assert.Equal(t, float64(0), wire[keyDateYear])
	assert.Equal(t, float64(6), wire[keyDateMonth])
	assert.Equal(t, float64(15), wire[keyDateDay])
}

// TestDateFromWire_MissingKeys tests reading a sparse wire part
func TestDateFromWire_MissingKeys(t *testing.T) {
	got := dateFromWire(map[string]any{keyDateMonth: float64(3)})
	_, ok := got.Year()
	assert.False(t, ok)
	month, ok := got.Month()
	assert.True(t, ok)
	assert.Equal(t, 3, month)
	_, ok = got.Day()
	assert.False(t, ok)
}

// TestDateValue_Equal tests that absence is distinct from any value
func TestDateValue_Equal(t *testing.T) {
	full, err := NewDateValue(1980, 6, 15)
	require.NoError(t, err)
	noYear, err := NewDateValue(0, 6, 15)
	require.NoError(t, err)

	assert.False(t, full.Equal(noYear))
	assert.True(t, noYear.Equal(noYear))
}

// TestDateValue_Zero tests the fully absent date
func TestDateValue_Zero(t *testing.T) {
	var zero DateValue
	assert.True(t, zero.IsZero())

	d := DateFromTime(time.Date(1980, time.June, 15, 12, 0, 0, 0, time.UTC))
	assert.False(t, d.IsZero())
	year, _ := d.Year()
	assert.Equal(t, 1980, year)
}
