package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday.
var june3 = time.Date(2025, time.June, 3, 7, 0, 0, 0, time.UTC)

func displays(d Day) []string {
	out := make([]string, 0, len(d.Slots))
	for _, s := range d.Slots {
		out = append(out, s.Display)
	}
	return out
}

func TestGenerate_SkipsWeekends(t *testing.T) {
	days := Generate(june3, map[string][]string{})

	// Tue..Fri, then Mon 9 June; Sat 7 and Sun 8 produce no bucket.
	require.Len(t, days, 5)
	wantDates := []int{3, 4, 5, 6, 9}
	for i, d := range days {
		assert.Equal(t, wantDates[i], d.Date.Day())
		assert.NotEqual(t, time.Saturday, d.Date.Weekday())
		assert.NotEqual(t, time.Sunday, d.Date.Weekday())
		assert.NotEmpty(t, d.Slots, "weekday %s has no slots", d.Date.Format("Mon 2"))
	}
}

func TestGenerate_FullDayBeforeOpening(t *testing.T) {
	days := Generate(june3, nil)
	require.NotEmpty(t, days)

	today := days[0]
	require.Len(t, today.Slots, 20)
	assert.Equal(t, "08:00 AM", today.Slots[0].Display)
	assert.Equal(t, "05:30 PM", today.Slots[len(today.Slots)-1].Display)
	for i := 1; i < len(today.Slots); i++ {
		assert.Equal(t, Step, today.Slots[i].Time.Sub(today.Slots[i-1].Time))
	}
}

func TestGenerate_ExcludesBookedSlot(t *testing.T) {
	booked := map[string][]string{"3_6_2025": {"09:00 AM"}}
	days := Generate(june3, booked)
	require.NotEmpty(t, days)

	got := displays(days[0])
	assert.Contains(t, got, "08:00 AM")
	assert.Contains(t, got, "08:30 AM")
	assert.NotContains(t, got, "09:00 AM")
	assert.Contains(t, got, "09:30 AM")
	assert.Equal(t, "05:30 PM", got[len(got)-1])
	assert.Len(t, got, 19)

	// the same time on another day stays available
	assert.Contains(t, displays(days[1]), "09:00 AM")
}

func TestGenerate_NeverOffersBookedPairs(t *testing.T) {
	booked := map[string][]string{
		"4_6_2025": {"08:00 AM", "12:30 PM", "05:30 PM"},
		"9_6_2025": {"10:00 AM"},
	}
	for _, d := range Generate(june3, booked) {
		for _, s := range d.Slots {
			assert.False(t, IsBooked(booked, s.Time), "booked slot %s %s offered", DateKey(s.Time), s.Display)
		}
	}
}

func TestGenerate_StartsAtCurrentMinute(t *testing.T) {
	now := time.Date(2025, time.June, 3, 9, 17, 42, 500, time.UTC)
	days := Generate(now, nil)
	require.NotEmpty(t, days)

	first := days[0].Slots[0]
	assert.Equal(t, "09:17 AM", first.Display)
	assert.Equal(t, 0, first.Time.Second())
	assert.Equal(t, 0, first.Time.Nanosecond())
	assert.False(t, first.Time.Before(now.Truncate(time.Minute)))

	// following days are unaffected by the current time
	assert.Equal(t, "08:00 AM", days[1].Slots[0].Display)
}

func TestGenerate_TodayAfterClosing(t *testing.T) {
	now := time.Date(2025, time.June, 3, 18, 5, 0, 0, time.UTC)
	days := Generate(now, nil)
	require.Len(t, days, 5)
	assert.Equal(t, 3, days[0].Date.Day())
	assert.Empty(t, days[0].Slots)
	assert.NotEmpty(t, days[1].Slots)
}

func TestGenerate_StartingOnWeekend(t *testing.T) {
	saturday := time.Date(2025, time.June, 7, 10, 0, 0, 0, time.UTC)
	days := Generate(saturday, nil)

	// Sat, Sun skipped; Mon..Fri remain, all starting at 08:00.
	require.Len(t, days, 5)
	assert.Equal(t, time.Monday, days[0].Date.Weekday())
	for _, d := range days {
		assert.Equal(t, "08:00 AM", d.Slots[0].Display)
	}
}

func TestGenerate_CrossesMonthBoundary(t *testing.T) {
	now := time.Date(2025, time.January, 30, 7, 0, 0, 0, time.UTC)
	days := Generate(now, map[string][]string{"3_2_2025": {"08:00 AM"}})

	keys := make([]string, 0, len(days))
	for _, d := range days {
		keys = append(keys, d.DateKey())
	}
	assert.Equal(t, []string{"30_1_2025", "31_1_2025", "3_2_2025", "4_2_2025", "5_2_2025"}, keys)
	assert.Equal(t, "08:30 AM", days[2].Slots[0].Display)
}

func TestGenerate_Idempotent(t *testing.T) {
	booked := map[string][]string{"5_6_2025": {"11:00 AM", "11:30 AM"}}
	now := time.Date(2025, time.June, 3, 13, 44, 0, 0, time.UTC)
	assert.Equal(t, Generate(now, booked), Generate(now, booked))
}

func TestInWindow(t *testing.T) {
	// Tuesday 09:17.
	now := time.Date(2025, time.June, 3, 9, 17, 30, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"current minute", time.Date(2025, time.June, 3, 9, 17, 0, 0, time.UTC), true},
		{"earlier today", time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC), false},
		{"last slot of the day", time.Date(2025, time.June, 4, 17, 30, 0, 0, time.UTC), true},
		{"closing time", time.Date(2025, time.June, 4, 18, 0, 0, 0, time.UTC), false},
		{"late evening", time.Date(2025, time.June, 4, 23, 30, 0, 0, time.UTC), false},
		{"before opening", time.Date(2025, time.June, 4, 3, 0, 0, 0, time.UTC), false},
		{"saturday", time.Date(2025, time.June, 7, 10, 0, 0, 0, time.UTC), false},
		{"last window day", time.Date(2025, time.June, 9, 10, 0, 0, 0, time.UTC), true},
		{"past the window", time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC), false},
		{"a year out", time.Date(2026, time.June, 3, 10, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InWindow(now, tt.at))
		})
	}
}

func TestInWindow_AgreesWithGenerate(t *testing.T) {
	now := time.Date(2025, time.June, 3, 9, 17, 0, 0, time.UTC)
	for _, day := range Generate(now, nil) {
		for _, s := range day.Slots {
			assert.True(t, InWindow(now, s.Time), s.Time.String())
		}
	}
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), WindowEnd(now))
}
