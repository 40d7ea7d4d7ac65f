package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetCommit(ctx context.Context, repo, sha string) (*gh.RepositoryCommit, error) {
	commit, _, err := c.repositories.GetCommit(ctx, c.org, repo, sha, nil)
	return commit, err
}
