package gateway

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"github.com/statcardhq/statcard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestGateway creates a GitHubGateway that communicates with a mock HTTP server.
func setupTestGateway(t *testing.T, handler http.Handler) (*GitHubGateway, *httptest.Server) {
	server := httptest.NewServer(handler)

	// Setup REST client to point to the mock server.
	restClient := github.NewClient(server.Client())
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	restClient.BaseURL = baseURL

	// Use NewEnterpriseClient to point the GraphQL client to our mock server's URL.
	graphqlClient := githubv4.NewEnterpriseClient(server.URL, server.Client())
	logger := log.New(io.Discard, "", 0)

	gateway := &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		logger:        logger,
	}

	return gateway, server
}

func TestGitHubGateway_FetchUser(t *testing.T) {
	testCases := []struct {
		name           string
		handlerFunc    func(w http.ResponseWriter, r *http.Request)
		expected       *domain.Profile
		expectError    bool
		expectedErrMsg string
	}{
		{
			name: "happy path - successfully fetches the profile",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Contains(t, r.URL.String(), "/users/octo")
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `{"login": "octo", "name": "Octo Cat", "followers": 42, "public_repos": 7, "created_at": "2019-03-01T10:00:00Z"}`)
			},
			expected: &domain.Profile{
				Login:       "octo",
				Name:        "Octo Cat",
				Followers:   42,
				PublicRepos: 7,
			},
			expectError: false,
		},
		{
			name: "error case - user not found",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"message": "Not Found"}`)
			},
			expectError:    true,
			expectedErrMsg: "failed to fetch user",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway, server := setupTestGateway(t, http.HandlerFunc(tc.handlerFunc))
			defer server.Close()

			profile, err := gateway.FetchUser(context.Background(), "octo")

			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected.Login, profile.Login)
			assert.Equal(t, tc.expected.Name, profile.Name)
			assert.Equal(t, tc.expected.Followers, profile.Followers)
			assert.Equal(t, tc.expected.PublicRepos, profile.PublicRepos)
			assert.Equal(t, 2019, profile.CreatedAt.Year())
		})
	}
}

func TestGitHubGateway_FetchRepositories(t *testing.T) {
	t.Run("happy path - follows pagination until the last page", func(t *testing.T) {
		handler := func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.Path, "/users/octo/repos")
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))

			switch r.URL.Query().Get("page") {
			case "", "1":
				// A Link header with rel="next" signals another page.
				w.Header().Set("Link", fmt.Sprintf(`<http://%s/users/octo/repos?per_page=100&page=2>; rel="next"`, r.Host))
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `[{"name": "alpha", "stargazers_count": 3, "forks_count": 1, "language": "Go"}]`)
			case "2":
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `[{"name": "beta", "stargazers_count": 2, "forks_count": 0, "language": "Python"}]`)
			default:
				t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
			}
		}
		gateway, server := setupTestGateway(t, http.HandlerFunc(handler))
		defer server.Close()

		repos, err := gateway.FetchRepositories(context.Background(), "octo")

		require.NoError(t, err)
		assert.Equal(t, []domain.Repository{
			{Name: "alpha", Stars: 3, Forks: 1, Language: "Go"},
			{Name: "beta", Stars: 2, Forks: 0, Language: "Python"},
		}, repos)
	})

	t.Run("error case - GitHub API returns an error", func(t *testing.T) {
		handler := func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"message": "Internal Server Error"}`)
		}
		gateway, server := setupTestGateway(t, http.HandlerFunc(handler))
		defer server.Close()

		repos, err := gateway.FetchRepositories(context.Background(), "octo")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list repositories")
		assert.Nil(t, repos)
	})
}

func TestGitHubGateway_FetchContributionCalendar(t *testing.T) {
	testCases := []struct {
		name           string
		responseBody   string
		expectedTotal  int
		expectedDays   []domain.DailyContribution
		expectError    bool
		expectedErrMsg string
	}{
		{
			name:          "happy path - flattens weeks into one day sequence",
			responseBody:  `{"data":{"user":{"contributionsCollection":{"contributionCalendar":{"totalContributions":6,"weeks":[{"contributionDays":[{"contributionCount":1,"date":"2026-08-17"},{"contributionCount":0,"date":"2026-08-18"}]},{"contributionDays":[{"contributionCount":5,"date":"2026-08-24"}]}]}}}}}`,
			expectedTotal: 6,
			expectedDays: []domain.DailyContribution{
				{Date: "2026-08-17", Count: 1},
				{Date: "2026-08-18", Count: 0},
				{Date: "2026-08-24", Count: 5},
			},
			expectError: false,
		},
		{
			name:           "error case - GraphQL reports an error",
			responseBody:   `{"errors":[{"message":"Could not resolve to a User"}]}`,
			expectError:    true,
			expectedErrMsg: "failed to execute GraphQL query",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Contains(t, string(body), "contributionCalendar")
				assert.Contains(t, string(body), "octo")

				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, tc.responseBody)
			}
			gateway, server := setupTestGateway(t, http.HandlerFunc(handler))
			defer server.Close()

			total, days, err := gateway.FetchContributionCalendar(context.Background(), "octo")

			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErrMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTotal, total)
			assert.Equal(t, tc.expectedDays, days)
		})
	}
}
