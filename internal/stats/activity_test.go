package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayPatternSingleBucket(t *testing.T) {
	days := []ContributionDay{
		{Date: "2024-06-02", Count: 2, Weekday: 0},
		{Date: "2024-06-09", Count: 4, Weekday: 0},
	}

	pattern := WeekdayPattern(days)

	assert.Equal(t, 6, pattern.TotalByDay[0])
	assert.Equal(t, 3, pattern.AverageByDay[0])
	for i := 1; i < 7; i++ {
		assert.Equal(t, 0, pattern.TotalByDay[i])
		assert.Equal(t, 0, pattern.AverageByDay[i])
	}
}

func TestWeekdayPatternIgnoresZeroDays(t *testing.T) {
	days := []ContributionDay{
		{Date: "2024-06-03", Count: 0, Weekday: 1},
		{Date: "2024-06-10", Count: 6, Weekday: 1},
	}

	pattern := WeekdayPattern(days)

	// The zero day does not drag the average down
	assert.Equal(t, 6, pattern.TotalByDay[1])
	assert.Equal(t, 6, pattern.AverageByDay[1])
}

func TestWeekdayPatternRoundsAverage(t *testing.T) {
	days := []ContributionDay{
		{Date: "2024-06-04", Count: 1, Weekday: 2},
		{Date: "2024-06-11", Count: 2, Weekday: 2},
	}

	pattern := WeekdayPattern(days)

	assert.Equal(t, 3, pattern.TotalByDay[2])
	assert.Equal(t, 2, pattern.AverageByDay[2]) // 1.5 rounds up
}

func TestWeekdayPatternTotalsAtLeastAverages(t *testing.T) {
	days := []ContributionDay{
		{Count: 3, Weekday: 0}, {Count: 1, Weekday: 0},
		{Count: 7, Weekday: 3}, {Count: 2, Weekday: 3}, {Count: 2, Weekday: 3},
		{Count: 9, Weekday: 6},
	}

	pattern := WeekdayPattern(days)

	for i := 0; i < 7; i++ {
		if pattern.TotalByDay[i] > 0 {
			assert.GreaterOrEqual(t, pattern.TotalByDay[i], pattern.AverageByDay[i], "weekday %d", i)
		}
	}
}

func TestWeekdayPatternEmpty(t *testing.T) {
	pattern := WeekdayPattern(nil)

	assert.Len(t, pattern.TotalByDay, 7)
	assert.Len(t, pattern.AverageByDay, 7)
	for i := 0; i < 7; i++ {
		assert.Equal(t, 0, pattern.TotalByDay[i])
		assert.Equal(t, 0, pattern.AverageByDay[i])
	}
}
