package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// DefaultGraphQLURL is GitHub's GraphQL endpoint.
const DefaultGraphQLURL = "https://api.github.com/graphql"

var (
	// ErrInvalidToken means the personal access token was rejected.
	ErrInvalidToken = errors.New("invalid token, please check your credentials")
	// ErrUserNotFound means the requested login does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// userQuery is the primary query: profile, repositories with per-language
// byte sizes, and the contribution calendar.
const userQuery = `query($username: String!) {
    user(login: $username) {
        name
        login
        avatarUrl
        bio
        createdAt
        followers { totalCount }
        following { totalCount }
        starredRepositories { totalCount }
        repositories(first: 100, ownerAffiliations: OWNER, orderBy: {field: STARGAZERS, direction: DESC}) {
            totalCount
            nodes {
                name
                description
                stargazerCount
                forkCount
                url
                primaryLanguage { name color }
                languages(first: 10, orderBy: {field: SIZE, direction: DESC}) {
                    edges {
                        size
                        node { name color }
                    }
                }
            }
        }
        contributionsCollection {
            contributionCalendar {
                totalContributions
                weeks {
                    contributionDays {
                        contributionCount
                        date
                        weekday
                    }
                }
            }
            totalCommitContributions
            totalIssueContributions
            totalPullRequestContributions
            totalPullRequestReviewContributions
        }
    }
}`

// privateRepoQuery only counts the viewer's private repositories.
const privateRepoQuery = `query($username: String!) {
    user(login: $username) {
        repositories(first: 100, ownerAffiliations: OWNER, privacy: PRIVATE) {
            totalCount
        }
    }
}`

// GraphQLClient talks to the GitHub GraphQL API with a personal access
// token.
type GraphQLClient struct {
	endpoint string
	client   *http.Client
}

// NewGraphQLClient creates a GraphQL client for the given token. An empty
// endpoint means the public GitHub API.
func NewGraphQLClient(token, endpoint string) *GraphQLClient {
	if endpoint == "" {
		endpoint = DefaultGraphQLURL
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := oauth2.NewClient(context.Background(), ts)
	client.Timeout = 30 * time.Second

	return &GraphQLClient{
		endpoint: endpoint,
		client:   client,
	}
}

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchUser runs the primary query and returns the raw user payload.
func (c *GraphQLClient) FetchUser(ctx context.Context, username string) (*User, error) {
	var data struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, userQuery, map[string]string{"username": username}, &data); err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, ErrUserNotFound
	}
	return data.User, nil
}

// FetchPrivateRepoCount runs the narrower private-repository query.
func (c *GraphQLClient) FetchPrivateRepoCount(ctx context.Context, login string) (int, error) {
	var data struct {
		User *struct {
			Repositories TotalCount `json:"repositories"`
		} `json:"user"`
	}
	if err := c.do(ctx, privateRepoQuery, map[string]string{"username": login}, &data); err != nil {
		return 0, err
	}
	if data.User == nil {
		return 0, ErrUserNotFound
	}
	return data.User.Repositories.TotalCount, nil
}

// do posts one GraphQL query and unmarshals the data payload into out.
func (c *GraphQLClient) do(ctx context.Context, query string, variables map[string]string, out interface{}) error {
	jsonData, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch data from GitHub: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var gqlResp graphqlResponse
	if err := json.Unmarshal(body, &gqlResp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		msg := gqlResp.Errors[0].Message
		if msg == "" {
			msg = "GraphQL query failed"
		}
		return fmt.Errorf("GitHub API error: %s", msg)
	}

	if gqlResp.Data == nil {
		return fmt.Errorf("no data in response")
	}

	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}
	return nil
}
