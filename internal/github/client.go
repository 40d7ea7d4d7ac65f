package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v80/github"

	"github.com/tracker-tv/github-compliance-bot/models"
)

// Client is the GitHub source collaborator: everything the bot reads from the
// GitHub API. Implementations must not write to GitHub.
type Client interface {
	ListAllRepos(ctx context.Context) ([]*gh.Repository, error)
	ListRuleSuites(ctx context.Context, repoFullName string) ([]models.RuleSuite, error)
	GetRuleSuite(ctx context.Context, repoFullName string, id int64) (*models.RuleSuite, error)
	GetCommit(ctx context.Context, repo, sha string) (*gh.RepositoryCommit, error)
	ListAssociatedPullRequests(ctx context.Context, repo, sha string) ([]*gh.PullRequest, error)
	ListCustomProperties(ctx context.Context, repo string) ([]models.CustomProperty, error)
}

type RepositoriesAdapter interface {
	ListByOrg(ctx context.Context, org string, opts *gh.RepositoryListByOrgOptions) ([]*gh.Repository, *gh.Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string, opts *gh.ListOptions) (*gh.RepositoryCommit, *gh.Response, error)
	GetAllCustomPropertyValues(ctx context.Context, org, repo string) ([]*gh.CustomPropertyValue, *gh.Response, error)
}

type PullRequestsAdapter interface {
	ListPullRequestsWithCommit(ctx context.Context, owner, repo, sha string, opts *gh.ListOptions) ([]*gh.PullRequest, *gh.Response, error)
}

type client struct {
	github       *gh.Client
	org          string
	repositories RepositoriesAdapter
	pullRequests PullRequestsAdapter
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

func New(token, org string) Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	c := gh.NewClient(httpClient)
	return &client{
		github:       c,
		org:          org,
		repositories: c.Repositories,
		pullRequests: c.PullRequests,
	}
}
