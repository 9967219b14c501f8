package stats

import "time"

// BadgeCounters are the aggregate counters the badge evaluation reads.
type BadgeCounters struct {
	CurrentStreak      int
	TotalContributions int
	Repositories       int
	PullRequests       int
	Followers          int
	Commits            int
	CreatedAt          time.Time
}

// BadgeThreshold awards a badge when a counter reaches Min.
type BadgeThreshold struct {
	Min   int
	Badge Achievement
}

// BadgeCategory is one independent badge category: a counter selector plus
// its thresholds ordered highest first. At most one badge is awarded per
// category, the first threshold met.
type BadgeCategory struct {
	Name       string
	Counter    func(c BadgeCounters, now time.Time) int
	Thresholds []BadgeThreshold
}

// DefaultBadgeRules are the product's badge categories, evaluated in order.
var DefaultBadgeRules = []BadgeCategory{
	{
		Name:    "streak",
		Counter: func(c BadgeCounters, _ time.Time) int { return c.CurrentStreak },
		Thresholds: []BadgeThreshold{
			{365, Achievement{"🔥", "Year Warrior", "365+ day streak"}},
			{100, Achievement{"💯", "Century Streak", "100+ day streak"}},
			{30, Achievement{"🌟", "Month Master", "30+ day streak"}},
			{7, Achievement{"⚡", "Week Warrior", "7+ day streak"}},
		},
	},
	{
		Name:    "contributions",
		Counter: func(c BadgeCounters, _ time.Time) int { return c.TotalContributions },
		Thresholds: []BadgeThreshold{
			{5000, Achievement{"👑", "Contribution King", "5000+ contributions"}},
			{2000, Achievement{"💎", "Diamond Contributor", "2000+ contributions"}},
			{1000, Achievement{"🏆", "Elite Coder", "1000+ contributions"}},
		},
	},
	{
		Name:    "repositories",
		Counter: func(c BadgeCounters, _ time.Time) int { return c.Repositories },
		Thresholds: []BadgeThreshold{
			{100, Achievement{"📚", "Repository Master", "100+ repositories"}},
			{50, Achievement{"📖", "Prolific Creator", "50+ repositories"}},
			{20, Achievement{"📝", "Active Builder", "20+ repositories"}},
		},
	},
	{
		Name:    "pull-requests",
		Counter: func(c BadgeCounters, _ time.Time) int { return c.PullRequests },
		Thresholds: []BadgeThreshold{
			{500, Achievement{"🚀", "PR Legend", "500+ pull requests"}},
			{100, Achievement{"🎯", "PR Expert", "100+ pull requests"}},
			{50, Achievement{"🎪", "PR Enthusiast", "50+ pull requests"}},
		},
	},
	{
		Name:    "followers",
		Counter: func(c BadgeCounters, _ time.Time) int { return c.Followers },
		Thresholds: []BadgeThreshold{
			{1000, Achievement{"🌟", "GitHub Celebrity", "1000+ followers"}},
			{500, Achievement{"⭐", "Rising Star", "500+ followers"}},
			{100, Achievement{"✨", "Popular Developer", "100+ followers"}},
		},
	},
	{
		Name:    "commits",
		Counter: func(c BadgeCounters, _ time.Time) int { return c.Commits },
		Thresholds: []BadgeThreshold{
			{2000, Achievement{"💻", "Commit Machine", "2000+ commits"}},
			{1000, Achievement{"⌨️", "Serial Committer", "1000+ commits"}},
		},
	},
	{
		Name:    "account-age",
		Counter: accountAgeDays,
		Thresholds: []BadgeThreshold{
			{3650, Achievement{"🎂", "10 Year Veteran", "Account 10+ years old"}},
			{1825, Achievement{"🎉", "5 Year Member", "Account 5+ years old"}},
			{365, Achievement{"🎊", "Annual Member", "Account 1+ year old"}},
		},
	},
}

func accountAgeDays(c BadgeCounters, now time.Time) int {
	if c.CreatedAt.IsZero() {
		return 0
	}
	return int(now.Sub(c.CreatedAt).Hours() / 24)
}

// EvaluateBadges walks the categories in order and awards at most one badge
// per category: the highest threshold met.
func EvaluateBadges(counters BadgeCounters, rules []BadgeCategory, now time.Time) []Achievement {
	var badges []Achievement
	for _, category := range rules {
		value := category.Counter(counters, now)
		for _, threshold := range category.Thresholds {
			if value >= threshold.Min {
				badges = append(badges, threshold.Badge)
				break
			}
		}
	}
	return badges
}
