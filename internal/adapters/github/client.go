package github

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v58/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github-migrator/internal/domain/entity"
)

// Client bundles the REST and GraphQL clients that share one authenticated
// transport
type Client struct {
	rest    *github.Client
	graphql *githubv4.Client
	stats   *ClientStats
}

// NewClient creates a GitHub client authenticated with token
func NewClient(token string, settings entity.GitHubSettings) (*Client, error) {
	stats := &ClientStats{}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Timeout: settings.Timeout(),
		Transport: &apiTransport{
			base: &oauth2.Transport{
				Source: ts,
				Base:   http.DefaultTransport,
			},
			userAgent: settings.UserAgent,
			limiter:   NewRateLimiter(settings.RequestsPerHour),
			stats:     stats,
		},
	}

	rest := github.NewClient(httpClient)
	if settings.APIURL != "" {
		baseURL, err := url.Parse(settings.APIURL)
		if err != nil {
			return nil, fmt.Errorf("invalid api_url %q: %v", settings.APIURL, err)
		}
		rest.BaseURL = baseURL
	}

	graphqlURL := settings.GraphQLURL
	if graphqlURL == "" {
		graphqlURL = "https://api.github.com/graphql"
	}

	return &Client{
		rest:    rest,
		graphql: githubv4.NewEnterpriseClient(graphqlURL, httpClient),
		stats:   stats,
	}, nil
}

// GetStats returns a copy of the current client statistics
func (c *Client) GetStats() StatsSnapshot {
	return c.stats.Snapshot()
}
