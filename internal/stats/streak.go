package stats

import "time"

const dateLayout = "2006-01-02"

// LongestStreak returns the length of the longest run of consecutive days
// with at least one contribution. An empty or all-zero sequence yields 0.
func LongestStreak(days []ContributionDay) int {
	longest := 0
	run := 0
	for _, day := range days {
		if day.Count > 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// CurrentStreak returns the length of the streak reaching up to today,
// scanning backward from the most recent day. The calendar may not carry an
// entry for today yet, so a run is allowed to start on any day within one
// day of today. Once a run has started it continues through consecutive
// positive days and ends at the first zero-count day. If the most recent
// positive day is more than one day old there is no current streak.
func CurrentStreak(days []ContributionDay, today time.Time) int {
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		day := days[i]
		date, err := time.Parse(dateLayout, day.Date)
		if err != nil {
			break
		}

		gapDays := int(todayDate.Sub(date).Hours() / 24)

		switch {
		case gapDays <= 1 && day.Count > 0:
			streak++
		case streak > 0 && day.Count > 0:
			streak++
		case streak > 0 && day.Count == 0:
			return streak
		case gapDays > 1 && streak == 0:
			return 0
		}
	}
	return streak
}
