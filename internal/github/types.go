package github

import "time"

// User is the profile payload returned by the primary GraphQL query.
type User struct {
	Name      string    `json:"name"`
	Login     string    `json:"login"`
	AvatarURL string    `json:"avatarUrl"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`

	Followers           TotalCount     `json:"followers"`
	Following           TotalCount     `json:"following"`
	StarredRepositories TotalCount     `json:"starredRepositories"`
	Repositories        RepositoryList `json:"repositories"`

	Contributions ContributionsCollection `json:"contributionsCollection"`
}

// TotalCount unwraps GraphQL connection counts.
type TotalCount struct {
	TotalCount int `json:"totalCount"`
}

// RepositoryList holds the user's repositories ordered by stargazers.
type RepositoryList struct {
	TotalCount int              `json:"totalCount"`
	Nodes      []RepositoryNode `json:"nodes"`
}

// RepositoryNode is one repository with its per-language byte sizes.
type RepositoryNode struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StargazerCount  int       `json:"stargazerCount"`
	ForkCount       int       `json:"forkCount"`
	URL             string    `json:"url"`
	PrimaryLanguage *Language `json:"primaryLanguage"`
	Languages       struct {
		Edges []LanguageEdge `json:"edges"`
	} `json:"languages"`
}

// Language is a language name plus GitHub's display color.
type Language struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LanguageEdge carries the byte size of one language in one repository.
type LanguageEdge struct {
	Size int      `json:"size"`
	Node Language `json:"node"`
}

// ContributionsCollection holds the contribution calendar and the aggregate
// contribution counters.
type ContributionsCollection struct {
	Calendar ContributionCalendar `json:"contributionCalendar"`

	TotalCommitContributions            int `json:"totalCommitContributions"`
	TotalIssueContributions             int `json:"totalIssueContributions"`
	TotalPullRequestContributions       int `json:"totalPullRequestContributions"`
	TotalPullRequestReviewContributions int `json:"totalPullRequestReviewContributions"`
}

// ContributionCalendar is the nested week/day contribution structure. Weeks
// and the days inside them arrive in chronological order.
type ContributionCalendar struct {
	TotalContributions int            `json:"totalContributions"`
	Weeks              []CalendarWeek `json:"weeks"`
}

// CalendarWeek is one column of the contribution calendar.
type CalendarWeek struct {
	ContributionDays []CalendarDay `json:"contributionDays"`
}

// CalendarDay is a raw day entry from the calendar.
type CalendarDay struct {
	ContributionCount int    `json:"contributionCount"`
	Date              string `json:"date"`
	Weekday           int    `json:"weekday"`
}
