package stats

import "github-streak-viewer/internal/github"

// FlattenCalendar flattens the nested week/day calendar into a single
// chronological slice. The source delivers weeks and days already ordered,
// so this only flattens and never re-sorts.
func FlattenCalendar(calendar github.ContributionCalendar) []ContributionDay {
	var days []ContributionDay
	for _, week := range calendar.Weeks {
		for _, day := range week.ContributionDays {
			days = append(days, ContributionDay{
				Date:    day.Date,
				Count:   day.ContributionCount,
				Weekday: day.Weekday,
				Level:   contributionLevel(day.ContributionCount),
			})
		}
	}
	return days
}

// contributionLevel maps a day's count to a 0-4 heatmap intensity.
func contributionLevel(count int) int {
	switch {
	case count == 0:
		return 0
	case count <= 3:
		return 1
	case count <= 6:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}
