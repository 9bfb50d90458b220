// Package booking implements the day arithmetic and conflict rules for desk
// reservations. Everything here is pure computation over the model types;
// persistence and locking live elsewhere.
//
// Dates are epoch milliseconds (UTC). A "day" is the number of whole UTC days
// since the epoch. Weekday indices run 0=Sunday through 6=Saturday. Recurring
// coverage is evaluated lazily as a predicate per day; occurrences are never
// materialized.
package booking

import (
	"errors"

	"deskbook-backend/internal/model"
)

const dayMillis = int64(24 * 60 * 60 * 1000)

// ErrNoWeekdays indicates a recurring reservation with an empty weekday set.
var ErrNoWeekdays = errors.New("booking: recurring reservation needs at least one weekday")

// ErrWeekdayRange indicates a weekday index outside 0..6.
var ErrWeekdayRange = errors.New("booking: weekday index must be between 0 and 6")

// DayOf converts an epoch-millisecond timestamp to its UTC day number,
// flooring for instants before the epoch.
func DayOf(ms int64) int64 {
	if ms >= 0 {
		return ms / dayMillis
	}
	return -((-ms + dayMillis - 1) / dayMillis)
}

// DayStart returns the epoch-millisecond timestamp of a day's UTC midnight.
func DayStart(day int64) int64 {
	return day * dayMillis
}

// TruncateToDay rounds an epoch-millisecond timestamp down to UTC midnight.
func TruncateToDay(ms int64) int64 {
	return DayStart(DayOf(ms))
}

// WeekdayOf returns the weekday index of a day number. Day 0 (1970-01-01)
// was a Thursday.
func WeekdayOf(day int64) int {
	w := (day + 4) % 7
	if w < 0 {
		w += 7
	}
	return int(w)
}

// NormalizeWeekdays validates a recurring weekday set and returns it sorted
// with duplicates removed.
func NormalizeWeekdays(days []int) ([]int, error) {
	seen := [7]bool{}
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, ErrWeekdayRange
		}
		seen[d] = true
	}
	out := make([]int, 0, 7)
	for d := 0; d < 7; d++ {
		if seen[d] {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoWeekdays
	}
	return out, nil
}

// Covers reports whether the reservation claims the given UTC day.
func Covers(r model.Reservation, day int64) bool {
	anchor := DayOf(r.Date)
	if !r.IsRecurring {
		return anchor == day
	}
	if day < anchor {
		return false
	}
	return hasWeekday(r.RecurringDays, WeekdayOf(day))
}

// Conflicts reports whether two reservations on the same desk claim at least
// one common day. Two open-ended recurring reservations conflict whenever
// their weekday sets intersect: past the later anchor, every shared weekday
// recurs forever.
func Conflicts(a, b model.Reservation) bool {
	switch {
	case !a.IsRecurring && !b.IsRecurring:
		return DayOf(a.Date) == DayOf(b.Date)
	case a.IsRecurring && b.IsRecurring:
		return weekdaysIntersect(a.RecurringDays, b.RecurringDays)
	case a.IsRecurring:
		return Covers(a, DayOf(b.Date))
	default:
		return Covers(b, DayOf(a.Date))
	}
}

// ConflictsAny reports whether the candidate overlaps any existing
// reservation in the slice.
func ConflictsAny(existing []model.Reservation, candidate model.Reservation) bool {
	for _, r := range existing {
		if Conflicts(r, candidate) {
			return true
		}
	}
	return false
}

func hasWeekday(days []int, w int) bool {
	for _, d := range days {
		if d == w {
			return true
		}
	}
	return false
}

func weekdaysIntersect(a, b []int) bool {
	for _, d := range a {
		if hasWeekday(b, d) {
			return true
		}
	}
	return false
}
