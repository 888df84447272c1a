package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateTimePadsShortClock(t *testing.T) {
	padded, err := ParseDateTime("2024-03-01", "9:00")
	assert.NoError(t, err)

	explicit, err := ParseDateTime("2024-03-01", "09:00")
	assert.NoError(t, err)

	assert.Equal(t, explicit, padded)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), padded)
}

func TestParseDateTimeTrimsWhitespace(t *testing.T) {
	got, err := ParseDateTime(" 2024-03-01 ", " 10:30 ")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), got)
}

func TestParseDateTimeRejectsBadInput(t *testing.T) {
	for _, tc := range [][2]string{
		{"01/03/2024", "10:00"},
		{"2024-03-01", "25:00"},
		{"2024-03-01", "later"},
		{"", ""},
	} {
		_, err := ParseDateTime(tc[0], tc[1])
		assert.Error(t, err, "date %q time %q", tc[0], tc[1])
	}
}

func TestParseCombined(t *testing.T) {
	got, err := ParseCombined("2024-05-02T10:15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 2, 10, 15, 0, 0, time.UTC), got)

	_, err = ParseCombined("2024-05-02 10:15")
	assert.Error(t, err)
}

func TestCoerceUint(t *testing.T) {
	got, err := coerceUint("clientId", float64(7))
	assert.NoError(t, err)
	assert.Equal(t, uint(7), got)

	got, err = coerceUint("clientId", "12")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), got)

	for _, v := range []any{float64(-1), "-1", "abc", true, nil} {
		_, err := coerceUint("clientId", v)
		assert.Error(t, err, "value %v", v)
	}
}
