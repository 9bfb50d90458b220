package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskbook-backend/internal/model"
)

// ms is a helper building an epoch-millisecond timestamp for a UTC date.
func ms(year int, month time.Month, day, hour int) int64 {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC).UnixMilli()
}

func TestDayOf(t *testing.T) {
	testCases := []struct {
		name string
		in   int64
		want int64
	}{
		{"epoch", 0, 0},
		{"same day noon", ms(1970, time.January, 1, 12), 0},
		{"next day midnight", ms(1970, time.January, 2, 0), 1},
		{"one ms before epoch", -1, -1},
		{"a modern date", ms(2024, time.July, 1, 9), 19905},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DayOf(tc.in))
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	noon := ms(2024, time.July, 1, 12)
	midnight := ms(2024, time.July, 1, 0)
	assert.Equal(t, midnight, TruncateToDay(noon))
	assert.Equal(t, midnight, TruncateToDay(midnight))
}

func TestWeekdayOf(t *testing.T) {
	// 1970-01-01 was a Thursday.
	assert.Equal(t, 4, WeekdayOf(0))
	// 1970-01-04 was a Sunday.
	assert.Equal(t, 0, WeekdayOf(3))
	// Cross-check a handful of days against the standard library.
	for day := int64(-10); day <= 10; day++ {
		want := int(time.UnixMilli(DayStart(day)).UTC().Weekday())
		assert.Equal(t, want, WeekdayOf(day), "day %d", day)
	}
}

func TestNormalizeWeekdays(t *testing.T) {
	got, err := NormalizeWeekdays([]int{5, 1, 5, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, got)

	_, err = NormalizeWeekdays(nil)
	assert.ErrorIs(t, err, ErrNoWeekdays)

	_, err = NormalizeWeekdays([]int{7})
	assert.ErrorIs(t, err, ErrWeekdayRange)

	_, err = NormalizeWeekdays([]int{-1})
	assert.ErrorIs(t, err, ErrWeekdayRange)
}

func TestCovers(t *testing.T) {
	// 2024-07-01 is a Monday.
	monday := ms(2024, time.July, 1, 0)

	single := model.Reservation{Date: ms(2024, time.July, 1, 10)}
	assert.True(t, Covers(single, DayOf(monday)))
	assert.False(t, Covers(single, DayOf(monday)+1))

	weeklyMonday := model.Reservation{
		Date:          monday,
		IsRecurring:   true,
		RecurringDays: []int{1},
	}
	assert.True(t, Covers(weeklyMonday, DayOf(monday)), "anchor day itself")
	assert.True(t, Covers(weeklyMonday, DayOf(monday)+7), "a week later")
	assert.True(t, Covers(weeklyMonday, DayOf(monday)+70), "ten weeks later")
	assert.False(t, Covers(weeklyMonday, DayOf(monday)+1), "tuesday")
	assert.False(t, Covers(weeklyMonday, DayOf(monday)-7), "monday before the anchor")
}

func TestConflicts(t *testing.T) {
	monday := ms(2024, time.July, 1, 0)
	single := func(date int64) model.Reservation {
		return model.Reservation{Date: date}
	}
	weekly := func(date int64, days ...int) model.Reservation {
		return model.Reservation{Date: date, IsRecurring: true, RecurringDays: days}
	}

	testCases := []struct {
		name string
		a, b model.Reservation
		want bool
	}{
		{
			name: "same day singles",
			a:    single(monday),
			b:    single(monday + 3600_000), // same day, different hour
			want: true,
		},
		{
			name: "different day singles",
			a:    single(monday),
			b:    single(ms(2024, time.July, 2, 0)),
			want: false,
		},
		{
			name: "weekly monday vs later monday single",
			a:    weekly(monday, 1),
			b:    single(ms(2024, time.July, 15, 0)),
			want: true,
		},
		{
			name: "weekly monday vs tuesday single",
			a:    weekly(monday, 1),
			b:    single(ms(2024, time.July, 16, 0)),
			want: false,
		},
		{
			name: "weekly monday vs monday single before the anchor",
			a:    weekly(monday, 1),
			b:    single(ms(2024, time.June, 24, 0)),
			want: false,
		},
		{
			name: "later single vs weekly monday is symmetric",
			a:    single(ms(2024, time.July, 15, 0)),
			b:    weekly(monday, 1),
			want: true,
		},
		{
			name: "recurring sets sharing a weekday",
			a:    weekly(monday, 1, 3),
			b:    weekly(ms(2024, time.September, 2, 0), 3, 5),
			want: true,
		},
		{
			name: "disjoint recurring sets",
			a:    weekly(monday, 1, 3),
			b:    weekly(monday, 2, 4),
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Conflicts(tc.a, tc.b))
			assert.Equal(t, tc.want, Conflicts(tc.b, tc.a), "conflict test must be symmetric")
		})
	}
}

func TestConflictsAny(t *testing.T) {
	monday := ms(2024, time.July, 1, 0)
	existing := []model.Reservation{
		{Date: monday},
		{Date: monday, IsRecurring: true, RecurringDays: []int{5}},
	}

	assert.True(t, ConflictsAny(existing, model.Reservation{Date: monday}))
	assert.True(t, ConflictsAny(existing, model.Reservation{Date: ms(2024, time.July, 5, 0)}), "friday covered by the weekly reservation")
	assert.False(t, ConflictsAny(existing, model.Reservation{Date: ms(2024, time.July, 2, 0)}))
	assert.False(t, ConflictsAny(nil, model.Reservation{Date: monday}))
}
