package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"unpadded", time.Date(2025, time.June, 3, 15, 0, 0, 0, time.UTC), "3_6_2025"},
		{"january is one", time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC), "12_1_2026"},
		{"december", time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC), "31_12_2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateKey(tt.in))
		})
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "08:00 AM", FormatTime(time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12:30 PM", FormatTime(time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)))
	assert.Equal(t, "05:30 PM", FormatTime(time.Date(2025, 1, 1, 17, 30, 0, 0, time.UTC)))
}

func TestParseDateKey(t *testing.T) {
	got, err := ParseDateKey("3_6_2025", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "3_6", "a_6_2025", "3_13_2025", "0_6_2025", "31_2_2025", "3-6-2025"} {
		_, err := ParseDateKey(bad, time.UTC)
		assert.Error(t, err, bad)
	}
}

func TestParseSlot(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	got, err := ParseSlot("3_6_2025", "02:30 PM", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 3, 14, 30, 0, 0, loc), got)

	_, err = ParseSlot("3_6_2025", "14:30", loc)
	assert.Error(t, err)
}

func TestDateKeyRoundTripsThroughGenerate(t *testing.T) {
	for _, d := range Generate(june3, nil) {
		for _, s := range d.Slots {
			back, err := ParseSlot(DateKey(s.Time), s.Display, s.Time.Location())
			require.NoError(t, err)
			assert.True(t, back.Equal(s.Time))
		}
	}
}
