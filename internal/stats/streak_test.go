package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var streakToday = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// daysEndingAt builds consecutive days with the given counts, the last one
// falling on the given date.
func daysEndingAt(end time.Time, counts ...int) []ContributionDay {
	days := make([]ContributionDay, len(counts))
	for i, count := range counts {
		date := end.AddDate(0, 0, i-len(counts)+1)
		days[i] = ContributionDay{
			Date:    date.Format("2006-01-02"),
			Count:   count,
			Weekday: int(date.Weekday()),
		}
	}
	return days
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   int
	}{
		{"empty", nil, 0},
		{"all zero", []int{0, 0, 0}, 0},
		{"single run", []int{0, 1, 2, 3, 0}, 3},
		{"picks longest run", []int{1, 0, 2, 2, 2, 0, 1, 1}, 3},
		{"run at end", []int{0, 1, 1, 1, 1}, 4},
		{"all positive", []int{1, 1, 1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := daysEndingAt(streakToday, tt.counts...)
			assert.Equal(t, tt.want, LongestStreak(days))
		})
	}
}

func TestCurrentStreakTrailingRun(t *testing.T) {
	// Trailing run of two positive days ending today
	days := daysEndingAt(streakToday, 3, 0, 5, 2)

	assert.Equal(t, 2, CurrentStreak(days, streakToday))
	assert.Equal(t, 2, LongestStreak(days))
}

func TestCurrentStreakToleratesMissingToday(t *testing.T) {
	// Calendar ends yesterday; the streak is still current
	days := daysEndingAt(streakToday.AddDate(0, 0, -1), 0, 4, 7)
	assert.Equal(t, 2, CurrentStreak(days, streakToday))
}

func TestCurrentStreakZeroTodayDoesNotBreakRun(t *testing.T) {
	// Today has no contributions yet; yesterday's run still counts
	days := daysEndingAt(streakToday, 2, 3, 0)
	assert.Equal(t, 2, CurrentStreak(days, streakToday))
}

func TestCurrentStreakStaleCalendar(t *testing.T) {
	// Last positive day is two days old: no current streak
	days := daysEndingAt(streakToday.AddDate(0, 0, -2), 1, 5)
	assert.Equal(t, 0, CurrentStreak(days, streakToday))
}

func TestCurrentStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, streakToday))
}

func TestCurrentStreakNeverExceedsLongest(t *testing.T) {
	sequences := [][]int{
		{},
		{0},
		{1},
		{1, 1, 1},
		{0, 1, 0, 1, 1},
		{5, 4, 3, 2, 1},
		{1, 0, 0, 1, 1, 0, 2, 2, 2},
	}

	for _, counts := range sequences {
		days := daysEndingAt(streakToday, counts...)
		current := CurrentStreak(days, streakToday)
		longest := LongestStreak(days)
		assert.LessOrEqual(t, current, longest, "counts %v", counts)
		assert.LessOrEqual(t, current, len(days), "counts %v", counts)
		assert.GreaterOrEqual(t, longest, 0, "counts %v", counts)
	}
}

func TestStreaksAreIdempotent(t *testing.T) {
	days := daysEndingAt(streakToday, 1, 0, 2, 2, 0, 3, 3, 3)

	first := CurrentStreak(days, streakToday)
	second := CurrentStreak(days, streakToday)
	assert.Equal(t, first, second)

	assert.Equal(t, LongestStreak(days), LongestStreak(days))
}
