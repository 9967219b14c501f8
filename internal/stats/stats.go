package stats

import "time"

// ContributionDay is a single day from the flattened contribution calendar.
// Days are ordered ascending by date; downstream calculations rely on that.
type ContributionDay struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Count   int    `json:"count"`
	Weekday int    `json:"weekday"` // 0 = Sunday
	Level   int    `json:"level"`   // 0-4 heatmap intensity
}

// LanguageStat is one language's share of the total bytes across all
// repositories.
type LanguageStat struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Size       int     `json:"size"`
	Percentage float64 `json:"percentage"` // 0-100, one decimal
}

// ActivityPattern buckets contribution activity by day of week.
type ActivityPattern struct {
	AverageByDay []int `json:"averageByDay"` // 7 entries, index 0 = Sunday
	TotalByDay   []int `json:"totalByDay"`
}

// Achievement is a badge earned by crossing a counter threshold.
type Achievement struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"desc"`
}

// Repository is a summary of one of the user's repositories.
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	URL         string `json:"url"`
	Language    string `json:"language"`
	Color       string `json:"languageColor"`
}

// StatsRecord is the complete derived statistics for one user. It is built
// wholesale on every refresh and never patched afterwards.
type StatsRecord struct {
	Name      string    `json:"name"`
	Login     string    `json:"login"`
	AvatarURL string    `json:"avatarUrl"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`

	Followers int `json:"followers"`
	Following int `json:"following"`
	Stars     int `json:"stars"`

	PublicRepos  int `json:"publicRepos"`
	PrivateRepos int `json:"privateRepos"`
	TotalRepos   int `json:"totalRepos"`

	TotalContributions int `json:"totalContributions"`
	Commits            int `json:"commits"`
	Issues             int `json:"issues"`
	PullRequests       int `json:"pullRequests"`
	Reviews            int `json:"reviews"`

	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`

	ContributionDays []ContributionDay `json:"contributionDays"`
	Languages        []LanguageStat    `json:"languages"`
	TopRepos         []Repository      `json:"topRepos"`
	Activity         ActivityPattern   `json:"activityPattern"`
	Achievements     []Achievement     `json:"achievements"`

	FetchedAt time.Time `json:"fetchedAt"`
}
