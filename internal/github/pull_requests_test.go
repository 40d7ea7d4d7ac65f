package github

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	github "github.com/tracker-tv/github-compliance-bot/internal/github/mocks"
)

func TestListAssociatedPullRequests_Success(t *testing.T) {
	ctx := context.Background()
	prSvc := github.NewMockPullRequestsAdapter(t)

	prSvc.
		EXPECT().
		ListPullRequestsWithCommit(mock.Anything, "org-name", "repo-name", "deadbeef", (*gh.ListOptions)(nil)).
		Once().
		Return(
			[]*gh.PullRequest{
				{Number: gh.Ptr(1), Title: gh.Ptr("PR 1")},
				{Number: gh.Ptr(2), Title: gh.Ptr("PR 2")},
			},
			&gh.Response{},
			nil,
		)

	c := &client{pullRequests: prSvc, org: "org-name"}

	prs, err := c.ListAssociatedPullRequests(ctx, "repo-name", "deadbeef")

	assert.NoError(t, err)
	assert.Len(t, prs, 2)
	assert.Equal(t, 1, prs[0].GetNumber())
	assert.Equal(t, 2, prs[1].GetNumber())
}

func TestListAssociatedPullRequests_Error(t *testing.T) {
	ctx := context.Background()
	prSvc := github.NewMockPullRequestsAdapter(t)

	prSvc.
		EXPECT().
		ListPullRequestsWithCommit(mock.Anything, "org-name", "repo-name", "deadbeef", (*gh.ListOptions)(nil)).
		Once().
		Return(nil, nil, errors.New("API error"))

	c := &client{pullRequests: prSvc, org: "org-name"}

	prs, err := c.ListAssociatedPullRequests(ctx, "repo-name", "deadbeef")

	assert.Error(t, err)
	assert.Nil(t, prs)
	assert.Contains(t, err.Error(), "API error")
}
