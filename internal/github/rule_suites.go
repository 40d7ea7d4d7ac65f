package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tracker-tv/github-compliance-bot/models"
)

// Rule suites have no typed service in go-github, so these go through the raw
// request path into our own wire model.
// https://docs.github.com/en/rest/repos/rule-suites?apiVersion=2022-11-28

func (c *client) ListRuleSuites(ctx context.Context, repoFullName string) ([]models.RuleSuite, error) {
	u := fmt.Sprintf("repos/%s/rulesets/rule-suites", repoFullName)
	req, err := c.github.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	var suites []models.RuleSuite
	if _, err := c.github.Do(ctx, req, &suites); err != nil {
		return nil, fmt.Errorf("listing rule suites for %s: %w", repoFullName, err)
	}
	return suites, nil
}

func (c *client) GetRuleSuite(ctx context.Context, repoFullName string, id int64) (*models.RuleSuite, error) {
	u := fmt.Sprintf("repos/%s/rulesets/rule-suites/%d", repoFullName, id)
	req, err := c.github.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	var suite models.RuleSuite
	if _, err := c.github.Do(ctx, req, &suite); err != nil {
		return nil, fmt.Errorf("getting rule suite %d for %s: %w", id, repoFullName, err)
	}
	return &suite, nil
}
