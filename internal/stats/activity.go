package stats

import "math"

// WeekdayPattern buckets contributions by day of week. Only days with at
// least one contribution count toward a bucket; the average is the rounded
// mean over those active days, or 0 for a weekday with no activity.
func WeekdayPattern(days []ContributionDay) ActivityPattern {
	totals := make([]int, 7)
	activeDays := make([]int, 7)

	for _, day := range days {
		if day.Count > 0 && day.Weekday >= 0 && day.Weekday < 7 {
			totals[day.Weekday] += day.Count
			activeDays[day.Weekday]++
		}
	}

	averages := make([]int, 7)
	for i := range totals {
		if activeDays[i] > 0 {
			averages[i] = int(math.Round(float64(totals[i]) / float64(activeDays[i])))
		}
	}

	return ActivityPattern{AverageByDay: averages, TotalByDay: totals}
}
