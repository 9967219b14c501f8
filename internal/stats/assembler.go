package stats

import (
	"context"
	"fmt"
	"log"
	"time"

	"github-streak-viewer/internal/github"

	"github.com/samber/lo"
)

// topRepoCount is how many repositories the record keeps. The query orders
// repositories by stargazers, so the first nodes are the top ones.
const topRepoCount = 5

// Assembler builds a StatsRecord from one fetched payload. It is the only
// part of the derivation engine that touches the network.
type Assembler struct {
	client *github.GraphQLClient
	rules  []BadgeCategory
	now    func() time.Time
}

// NewAssembler creates an Assembler using the default badge rules.
func NewAssembler(client *github.GraphQLClient) *Assembler {
	return &Assembler{
		client: client,
		rules:  DefaultBadgeRules,
		now:    time.Now,
	}
}

// Build fetches the user's data and derives the full statistics record.
// When includePrivate is set, a secondary query counts private
// repositories; its failure is logged and degraded to a count of 0 rather
// than failing the refresh.
func (a *Assembler) Build(ctx context.Context, username string, includePrivate bool) (*StatsRecord, error) {
	user, err := a.client.FetchUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user stats: %w", err)
	}

	now := a.now()
	contributions := user.Contributions
	days := FlattenCalendar(contributions.Calendar)

	currentStreak := CurrentStreak(days, now)
	longestStreak := LongestStreak(days)

	privateRepos := 0
	if includePrivate {
		count, err := a.client.FetchPrivateRepoCount(ctx, user.Login)
		if err != nil {
			log.Printf("[Stats] %s - could not fetch private repos: %v", user.Login, err)
		} else {
			privateRepos = count
		}
	}

	badges := EvaluateBadges(BadgeCounters{
		CurrentStreak:      currentStreak,
		TotalContributions: contributions.Calendar.TotalContributions,
		Repositories:       user.Repositories.TotalCount,
		PullRequests:       contributions.TotalPullRequestContributions,
		Followers:          user.Followers.TotalCount,
		Commits:            contributions.TotalCommitContributions,
		CreatedAt:          user.CreatedAt,
	}, a.rules, now)

	name := user.Name
	if name == "" {
		name = user.Login
	}

	record := &StatsRecord{
		Name:      name,
		Login:     user.Login,
		AvatarURL: user.AvatarURL,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,

		Followers: user.Followers.TotalCount,
		Following: user.Following.TotalCount,
		Stars:     user.StarredRepositories.TotalCount,

		PublicRepos:  user.Repositories.TotalCount,
		PrivateRepos: privateRepos,
		TotalRepos:   user.Repositories.TotalCount + privateRepos,

		TotalContributions: contributions.Calendar.TotalContributions,
		Commits:            contributions.TotalCommitContributions,
		Issues:             contributions.TotalIssueContributions,
		PullRequests:       contributions.TotalPullRequestContributions,
		Reviews:            contributions.TotalPullRequestReviewContributions,

		CurrentStreak: currentStreak,
		LongestStreak: longestStreak,

		ContributionDays: days,
		Languages:        AggregateLanguages(user.Repositories.Nodes),
		TopRepos:         topRepos(user.Repositories.Nodes),
		Activity:         WeekdayPattern(days),
		Achievements:     badges,

		FetchedAt: now,
	}

	return record, nil
}

func topRepos(nodes []github.RepositoryNode) []Repository {
	if len(nodes) > topRepoCount {
		nodes = nodes[:topRepoCount]
	}
	return lo.Map(nodes, func(node github.RepositoryNode, _ int) Repository {
		repo := Repository{
			Name:        node.Name,
			Description: node.Description,
			Stars:       node.StargazerCount,
			Forks:       node.ForkCount,
			URL:         node.URL,
		}
		if node.PrimaryLanguage != nil {
			repo.Language = node.PrimaryLanguage.Name
			repo.Color = node.PrimaryLanguage.Color
		}
		return repo
	})
}
