// Package slots computes the bookable 30-minute appointment slots of a
// professor and owns the date-key format of the booked-slots map.
package slots

import (
	"time"
)

const (
	// WindowDays is the number of calendar days covered by Generate, weekends included.
	WindowDays = 7
	// Step is the length of one appointment slot.
	Step = 30 * time.Minute

	dayStartHour = 8
	dayEndHour   = 18
)

// Slot is one bookable appointment start.
type Slot struct {
	Time    time.Time `json:"datetime"`
	Display string    `json:"time"`
}

// Day groups the available slots of one weekday in chronological order.
type Day struct {
	Date  time.Time `json:"date"`
	Slots []Slot    `json:"slots"`
}

// DateKey returns the booked-slots map key of the day.
func (d Day) DateKey() string {
	return DateKey(d.Date)
}

// Generate returns the available slots for the WindowDays days starting at now.
// Saturdays and Sundays produce no bucket, so fewer than WindowDays buckets are
// returned whenever the window crosses a weekend. booked maps a date key to the
// display times that are already taken. A weekday whose window has already
// closed (today after 18:00) still yields a bucket, with no slots.
func Generate(now time.Time, booked map[string][]string) []Day {
	loc := now.Location()
	days := make([]Day, 0, WindowDays)

	for i := 0; i < WindowDays; i++ {
		date := time.Date(now.Year(), now.Month(), now.Day()+i, 0, 0, 0, 0, loc)
		if !IsWeekday(date) {
			continue
		}

		start, end := openingHours(date)
		if i == 0 && now.Hour() >= dayStartHour {
			start = time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, loc)
		}

		key := DateKey(date)
		taken := toSet(booked[key])

		day := Day{Date: date, Slots: []Slot{}}
		for t := start; t.Before(end); t = t.Add(Step) {
			display := FormatTime(t)
			if _, ok := taken[display]; ok {
				continue
			}
			day.Slots = append(day.Slots, Slot{Time: t, Display: display})
		}
		days = append(days, day)
	}

	return days
}

// IsWeekday reports whether t falls on Monday to Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WithinOpeningHours reports whether t falls in [08:00, 18:00) of its own day.
func WithinOpeningHours(t time.Time) bool {
	start, end := openingHours(t)
	return !t.Before(start) && t.Before(end)
}

// WindowEnd returns the first instant after the window Generate covers at now.
func WindowEnd(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+WindowDays, 0, 0, 0, 0, now.Location())
}

// InWindow reports whether Generate at now could offer a slot starting at t,
// ignoring bookings: a weekday within opening hours, no earlier than the
// current minute and before WindowEnd. t is compared in now's location.
func InWindow(now, t time.Time) bool {
	t = t.In(now.Location())
	return IsWeekday(t) &&
		WithinOpeningHours(t) &&
		!t.Before(now.Truncate(time.Minute)) &&
		t.Before(WindowEnd(now))
}

func openingHours(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	loc := day.Location()
	return time.Date(y, m, d, dayStartHour, 0, 0, 0, loc), time.Date(y, m, d, dayEndHour, 0, 0, 0, loc)
}

// IsBooked reports whether the slot at t is present in booked.
func IsBooked(booked map[string][]string, t time.Time) bool {
	display := FormatTime(t)
	for _, s := range booked[DateKey(t)] {
		if s == display {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
