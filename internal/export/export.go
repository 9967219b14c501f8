package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github-streak-viewer/internal/stats"

	"github.com/samber/lo"
)

// FormatJSON and FormatCSV are the supported export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// document is the structured JSON export of one StatsRecord.
type document struct {
	User         userSection          `json:"user"`
	Statistics   statisticsSection    `json:"statistics"`
	Languages    []stats.LanguageStat `json:"languages"`
	TopRepos     []repoRow            `json:"topRepositories"`
	Achievements []stats.Achievement  `json:"achievements"`
	ExportedAt   time.Time            `json:"exportedAt"`
}

type userSection struct {
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	Followers int       `json:"followers"`
	Following int       `json:"following"`
	Stars     int       `json:"stars"`
}

type statisticsSection struct {
	TotalContributions int `json:"totalContributions"`
	CurrentStreak      int `json:"currentStreak"`
	LongestStreak      int `json:"longestStreak"`
	Commits            int `json:"commits"`
	PullRequests       int `json:"pullRequests"`
	Issues             int `json:"issues"`
	Reviews            int `json:"reviews"`
	Repositories       int `json:"repositories"`
}

type repoRow struct {
	Name  string `json:"name"`
	Stars int    `json:"stars"`
	Forks int    `json:"forks"`
	URL   string `json:"url"`
}

// ToJSON renders the record as an indented JSON document. Output is
// deterministic for a given record and timestamp.
func ToJSON(record *stats.StatsRecord, exportedAt time.Time) ([]byte, error) {
	doc := document{
		User: userSection{
			Name:      record.Name,
			Username:  record.Login,
			Bio:       record.Bio,
			CreatedAt: record.CreatedAt,
			Followers: record.Followers,
			Following: record.Following,
			Stars:     record.Stars,
		},
		Statistics: statisticsSection{
			TotalContributions: record.TotalContributions,
			CurrentStreak:      record.CurrentStreak,
			LongestStreak:      record.LongestStreak,
			Commits:            record.Commits,
			PullRequests:       record.PullRequests,
			Issues:             record.Issues,
			Reviews:            record.Reviews,
			Repositories:       record.TotalRepos,
		},
		Languages: record.Languages,
		TopRepos: lo.Map(record.TopRepos, func(repo stats.Repository, _ int) repoRow {
			return repoRow{Name: repo.Name, Stars: repo.Stars, Forks: repo.Forks, URL: repo.URL}
		}),
		Achievements: record.Achievements,
		ExportedAt:   exportedAt,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export document: %w", err)
	}
	return data, nil
}

// ToCSV renders the record as a flat two-column metric/value table.
func ToCSV(record *stats.StatsRecord) ([]byte, error) {
	rows := [][]string{
		{"Metric", "Value"},
		{"Username", record.Login},
		{"Name", record.Name},
		{"Total Contributions", strconv.Itoa(record.TotalContributions)},
		{"Current Streak", strconv.Itoa(record.CurrentStreak)},
		{"Longest Streak", strconv.Itoa(record.LongestStreak)},
		{"Commits", strconv.Itoa(record.Commits)},
		{"Pull Requests", strconv.Itoa(record.PullRequests)},
		{"Issues", strconv.Itoa(record.Issues)},
		{"Code Reviews", strconv.Itoa(record.Reviews)},
		{"Repositories", strconv.Itoa(record.TotalRepos)},
		{"Followers", strconv.Itoa(record.Followers)},
		{"Following", strconv.Itoa(record.Following)},
		{"Stars Earned", strconv.Itoa(record.Stars)},
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename builds the download name for an export.
func Filename(login, format string, exportedAt time.Time) string {
	return fmt.Sprintf("github-stats-%s-%s.%s", login, exportedAt.Format("2006-01-02"), format)
}
