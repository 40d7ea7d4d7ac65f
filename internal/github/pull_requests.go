package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) ListAssociatedPullRequests(ctx context.Context, repo, sha string) ([]*gh.PullRequest, error) {
	prs, _, err := c.pullRequests.ListPullRequestsWithCommit(ctx, c.org, repo, sha, nil)
	return prs, err
}
