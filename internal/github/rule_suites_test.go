package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/github-compliance-bot/models"
)

func newTestClient(t *testing.T, handler http.Handler) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ghClient := gh.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	ghClient.BaseURL = baseURL

	return &client{github: ghClient, org: "org-name"}
}

func TestListRuleSuites_Success(t *testing.T) {
	ctx := context.Background()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/repos/org-name/repo-name/rulesets/rule-suites", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"id": 1, "actor_name": "octocat", "result": "bypass"},
			{"id": 2, "actor_name": "hubot", "result": "pass"}
		]`)
	}))

	suites, err := c.ListRuleSuites(ctx, "org-name/repo-name")

	assert.NoError(t, err)
	require.Len(t, suites, 2)
	assert.Equal(t, int64(1), suites[0].ID)
	assert.Equal(t, models.RuleOutcomeBypass, suites[0].Result)
	assert.Equal(t, "octocat", suites[0].Actor())
	assert.Equal(t, models.RuleOutcomePass, suites[1].Result)
}

func TestListRuleSuites_Error(t *testing.T) {
	ctx := context.Background()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	suites, err := c.ListRuleSuites(ctx, "org-name/repo-name")

	assert.Error(t, err)
	assert.Nil(t, suites)
	assert.Contains(t, err.Error(), "org-name/repo-name")
}

func TestGetRuleSuite_Success(t *testing.T) {
	ctx := context.Background()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/org-name/repo-name/rulesets/rule-suites/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": 42,
			"actor_name": "octocat",
			"after_sha": "deadbeef",
			"result": "bypass",
			"rule_evaluations": [
				{
					"rule_source": {"type": "ruleset", "id": 101, "name": "Review Requirement"},
					"enforcement": "active",
					"result": "fail",
					"rule_type": "pull_request"
				}
			]
		}`)
	}))

	suite, err := c.GetRuleSuite(ctx, "org-name/repo-name", 42)

	assert.NoError(t, err)
	require.NotNil(t, suite)
	assert.Equal(t, int64(42), suite.ID)
	require.Len(t, suite.RuleEvaluations, 1)
	assert.Equal(t, models.EnforcementActive, suite.RuleEvaluations[0].Enforcement)
	assert.Equal(t, models.RuleEvalResultFail, suite.RuleEvaluations[0].Result)
}

func TestGetRuleSuite_Error(t *testing.T) {
	ctx := context.Background()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	suite, err := c.GetRuleSuite(ctx, "org-name/repo-name", 42)

	assert.Error(t, err)
	assert.Nil(t, suite)
}
