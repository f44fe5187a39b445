package slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the display form of a slot time, e.g. "09:30 AM".
const TimeLayout = "03:04 PM"

// DateKey formats the calendar day of t as "day_month_year" with a 1-indexed,
// unpadded day and month (3 June 2025 -> "3_6_2025"). Every place that reads or
// writes a booked-slots map key goes through this function.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d_%d_%d", t.Day(), int(t.Month()), t.Year())
}

// FormatTime returns the display time string of t.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseDateKey parses a key produced by DateKey into midnight of that day in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(key, "_")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return time.Time{}, fmt.Errorf("invalid date key %q: out of range", key)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes 31_2_2025 into March; reject instead.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, fmt.Errorf("invalid date key %q: no such day", key)
	}
	return t, nil
}

// ParseSlot combines a date key and a display time into the instant they name.
func ParseSlot(dateKey, slotTime string, loc *time.Location) (time.Time, error) {
	day, err := ParseDateKey(dateKey, loc)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := time.Parse(TimeLayout, slotTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot time %q: %w", slotTime, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}
