package models

import "time"

// RuleSuiteEvent is a persisted rule suite, keyed by the GitHub-assigned suite
// id. The serialized payloads are opaque JSON from the GitHub API, stored
// unchanged.
type RuleSuiteEvent struct {
	ID                 int64
	GithubID           string
	RepositoryFullName string
	// JSON serialized RuleSuite.
	EventData string
	// JSON serialized github.RepositoryCommit, if the commit lookup succeeded.
	ResultingCommit *string
	// JSON serialized github.PullRequest. Only set when exactly one pull
	// request was associated with the push.
	PullRequest *string
	// Whether a notification has been sent for this record.
	Notified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRuleSuiteEvent is the insert form of RuleSuiteEvent.
type NewRuleSuiteEvent struct {
	GithubID           string
	RepositoryFullName string
	EventData          string
	ResultingCommit    *string
	PullRequest        *string
	Notified           bool
}
