package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub REST client. It is only used to validate tokens
// by resolving the authenticated login; everything else goes through the
// GraphQL client.
type Client struct {
	client *github.Client
	token  string
}

// NewClient creates a new GitHub REST client for the given token.
func NewClient(token string) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
		token:  token,
	}
}

// ValidateToken returns the login of the token's owner, or an error when
// the token is rejected.
func (c *Client) ValidateToken(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}

	if user.Login == nil {
		return "", fmt.Errorf("user login is nil")
	}

	return *user.Login, nil
}
