// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/statcardhq/statcard/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchUser(ctx context.Context, user string) (*domain.Profile, error)
	FetchRepositories(ctx context.Context, user string) ([]domain.Repository, error)
	// FetchContributionCalendar returns the calendar total along with the
	// flattened day sequence, oldest day first.
	FetchContributionCalendar(ctx context.Context, user string) (int, []domain.DailyContribution, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// contributionCalendarQuery maps the contributionsCollection calendar.
// The weeks arrive oldest first, so flattening preserves date order.
type contributionCalendarQuery struct {
	User struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions githubv4.Int
				Weeks              []struct {
					ContributionDays []struct {
						ContributionCount githubv4.Int
						Date              githubv4.String
					}
				}
			}
		}
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token yields an unauthenticated client; the REST endpoints still
// work (rate limited), while the GraphQL calendar fetch will fail and is
// degraded by the caller.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{Transport: transport}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchUser retrieves the basic profile for a user via the REST API.
func (g *GitHubGateway) FetchUser(ctx context.Context, user string) (*domain.Profile, error) {
	g.logger.Println("[1/3] Fetching user profile using REST API...")
	u, _, err := g.restClient.Users.Get(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %q with REST API: %w", user, err)
	}
	g.logger.Println("Completed fetching user profile.")
	return &domain.Profile{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Followers:   u.GetFollowers(),
		PublicRepos: u.GetPublicRepos(),
		CreatedAt:   u.GetCreatedAt().Time,
	}, nil
}

// FetchRepositories lists all public repositories for a user, 100 per page,
// following pages until the API reports no next page.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, user string) ([]domain.Repository, error) {
	g.logger.Println("[2/3] Fetching repositories using REST API...")
	opts := &github.RepositoryListByUserOptions{ListOptions: github.ListOptions{PerPage: 100}}
	var repos []domain.Repository
	for {
		page, resp, err := g.restClient.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories with REST API: %w", err)
		}
		for _, r := range page {
			repos = append(repos, domain.Repository{
				Name:     r.GetName(),
				Stars:    r.GetStargazersCount(),
				Forks:    r.GetForksCount(),
				Language: r.GetLanguage(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of repositories...")
	}
	g.logger.Printf("Completed fetching %d repositories.\n", len(repos))
	return repos, nil
}

// FetchContributionCalendar retrieves the user's contribution calendar with a
// single GraphQL query and flattens the weeks into one day sequence.
func (g *GitHubGateway) FetchContributionCalendar(ctx context.Context, user string) (int, []domain.DailyContribution, error) {
	g.logger.Println("[3/3] Fetching contribution calendar using GraphQL API...")
	variables := map[string]interface{}{"login": githubv4.String(user)}

	var q contributionCalendarQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return 0, nil, fmt.Errorf("failed to execute GraphQL query for contribution calendar: %w", err)
	}

	calendar := q.User.ContributionsCollection.ContributionCalendar
	var days []domain.DailyContribution
	for _, week := range calendar.Weeks {
		for _, day := range week.ContributionDays {
			days = append(days, domain.DailyContribution{
				Date:  string(day.Date),
				Count: int(day.ContributionCount),
			})
		}
	}
	g.logger.Printf("Completed fetching contribution calendar (%d days).\n", len(days))
	return int(calendar.TotalContributions), days, nil
}
