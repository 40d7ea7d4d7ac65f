// Package orchestrator runs the rule suite lifecycle per repository: ingest
// bypass events into storage, then evaluate and notify the unnotified ones.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v80/github"
	slackapi "github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tracker-tv/github-compliance-bot/internal/config"
	"github.com/tracker-tv/github-compliance-bot/internal/github"
	"github.com/tracker-tv/github-compliance-bot/internal/notify"
	"github.com/tracker-tv/github-compliance-bot/internal/policy"
	"github.com/tracker-tv/github-compliance-bot/internal/service"
	"github.com/tracker-tv/github-compliance-bot/internal/slack"
	"github.com/tracker-tv/github-compliance-bot/internal/store"
	"github.com/tracker-tv/github-compliance-bot/models"
)

type ComplianceBot struct {
	repos service.RepositoryService
	gh    github.Client
	store store.Store
	slack slack.Client
	cfg   *config.Config
	log   *zap.Logger
}

func NewComplianceBot(repos service.RepositoryService, ghClient github.Client, st store.Store, slackClient slack.Client, cfg *config.Config, log *zap.Logger) *ComplianceBot {
	return &ComplianceBot{
		repos: repos,
		gh:    ghClient,
		store: st,
		slack: slackClient,
		cfg:   cfg,
		log:   log,
	}
}

// RunAll processes every monitored repository. Repositories fail
// independently; only a malformed repository-level property aborts the whole
// invocation, since that is a configuration error rather than a transient one.
func (b *ComplianceBot) RunAll(ctx context.Context) error {
	repos, err := b.repos.ListMonitored(ctx)
	if err != nil {
		return fmt.Errorf("listing repositories: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.cfg.RepoConcurrency)

	for _, repo := range repos {
		g.Go(func() error {
			if err := b.Run(ctx, repo.FullName, repo.Name); err != nil {
				if errors.Is(err, models.ErrAssetLevelArray) {
					return fmt.Errorf("%s: %w", repo.FullName, err)
				}
				b.log.Error("processing repository failed",
					zap.String("repository", repo.FullName),
					zap.Error(err))
			}
			return nil
		})
	}

	return g.Wait()
}

// Run executes both lifecycle phases for one repository, sequentially.
func (b *ComplianceBot) Run(ctx context.Context, repoFullName, repoName string) error {
	if err := b.ingest(ctx, repoFullName, repoName); err != nil {
		return err
	}
	return b.evaluate(ctx, repoFullName, repoName)
}

// ingest records every bypassed, human-authored rule suite that storage has
// not seen yet. Individual suites fail independently; a suite whose insert
// fails is retried on the next pass because its external id was never
// recorded.
func (b *ComplianceBot) ingest(ctx context.Context, repoFullName, repoName string) error {
	suites, err := b.gh.ListRuleSuites(ctx, repoFullName)
	if err != nil {
		return fmt.Errorf("listing rule suites: %w", err)
	}

	for _, summary := range suites {
		if summary.Result != models.RuleOutcomeBypass {
			continue
		}

		// Some bots in the org are allowed to bypass and commit directly
		// to main. Never record those.
		if summary.ActorName != nil && strings.Contains(*summary.ActorName, "[bot]") {
			continue
		}

		suite, err := b.gh.GetRuleSuite(ctx, repoFullName, summary.ID)
		if err != nil {
			b.log.Warn("failed to fetch full rule suite",
				zap.Int64("suite_id", summary.ID),
				zap.Error(err))
			continue
		}

		// Best effort. A missing commit or PR association only degrades the
		// notification, it never blocks ingestion.
		commit, err := b.gh.GetCommit(ctx, repoName, suite.AfterSHA)
		if err != nil {
			commit = nil
		}
		prs, err := b.gh.ListAssociatedPullRequests(ctx, repoName, suite.AfterSHA)
		if err != nil {
			prs = nil
		}

		githubID := strconv.FormatInt(suite.ID, 10)
		if _, err := b.store.FindByGithubID(ctx, githubID); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			b.log.Warn("rule suite lookup failed",
				zap.String("github_id", githubID),
				zap.Error(err))
			continue
		}

		event, err := newEvent(repoFullName, suite, commit, prs)
		if err != nil {
			b.log.Warn("failed to serialize rule suite",
				zap.String("github_id", githubID),
				zap.Error(err))
			continue
		}

		if err := b.store.Create(ctx, *event); err != nil {
			b.log.Warn("failed to create rule suite event",
				zap.String("github_id", githubID),
				zap.Error(err))
			continue
		}
	}

	return nil
}

func newEvent(repoFullName string, suite *models.RuleSuite, commit *gh.RepositoryCommit, prs []*gh.PullRequest) (*models.NewRuleSuiteEvent, error) {
	data, err := json.Marshal(suite)
	if err != nil {
		return nil, err
	}

	var commitJSON *string
	if commit != nil {
		raw, err := json.Marshal(commit)
		if err == nil {
			s := string(raw)
			commitJSON = &s
		}
	}

	// More than one associated PR means the association is ambiguous; store
	// no PR context at all.
	var prJSON *string
	if len(prs) == 1 {
		raw, err := json.Marshal(prs[0])
		if err == nil {
			s := string(raw)
			prJSON = &s
		}
	}

	return &models.NewRuleSuiteEvent{
		GithubID:           strconv.FormatInt(suite.ID, 10),
		RepositoryFullName: repoFullName,
		EventData:          string(data),
		ResultingCommit:    commitJSON,
		PullRequest:        prJSON,
		Notified:           false,
	}, nil
}

// evaluate notifies every stored, unnotified suite of an in-scope repository.
// A delivery failure leaves the event unnotified so it is retried whole on
// the next pass.
func (b *ComplianceBot) evaluate(ctx context.Context, repoFullName, repoName string) error {
	props, err := b.gh.ListCustomProperties(ctx, repoName)
	if err != nil {
		return fmt.Errorf("listing custom properties: %w", err)
	}

	level, ok, err := models.ResolveAssetLevel(props)
	if err != nil {
		return err
	}
	if !ok || !b.cfg.InScopeLevels().Contains(level) {
		// Repositories without an asset level or out of scope are stored for
		// audit completeness but never evaluated.
		return nil
	}

	events, err := b.store.ListUnnotified(ctx, repoFullName)
	if err != nil {
		return fmt.Errorf("listing unnotified rule suites: %w", err)
	}

	for _, event := range events {
		var suite models.RuleSuite
		if err := json.Unmarshal([]byte(event.EventData), &suite); err != nil {
			return fmt.Errorf("decoding stored rule suite %s: %w", event.GithubID, err)
		}

		commit := decodeCommit(event.ResultingCommit)
		pr := decodePullRequest(event.PullRequest)

		if err := b.notifyEvent(ctx, &suite, commit, pr, level); err != nil {
			return fmt.Errorf("notifying for rule suite %s: %w", event.GithubID, err)
		}

		if err := b.store.MarkNotified(ctx, event.ID); err != nil {
			return fmt.Errorf("marking rule suite %s notified: %w", event.GithubID, err)
		}
	}

	return nil
}

func (b *ComplianceBot) notifyEvent(ctx context.Context, suite *models.RuleSuite, commit *gh.RepositoryCommit, pr *gh.PullRequest, level models.AssetLevel) error {
	owner, err := b.slack.GetUserByEmail(ctx, b.cfg.ComplianceOwnerEmail)
	if err != nil {
		return fmt.Errorf("resolving compliance owner: %w", err)
	}

	actor, err := b.resolveActor(ctx, suite)
	if err != nil {
		return err
	}

	content := notify.Build(suite, pr, level, actor, b.cfg)

	if policy.CallOut(suite, level, commit, pr, b.cfg) {
		if err := b.slack.PostMessage(ctx, b.cfg.SlackComplianceChannel, content); err != nil {
			return fmt.Errorf("posting to compliance channel: %w", err)
		}
	}

	if actor != nil {
		if err := b.slack.PostMessage(ctx, actor.ID, content); err != nil {
			return fmt.Errorf("posting to actor: %w", err)
		}
	}

	if err := b.slack.PostMessage(ctx, owner.ID, content); err != nil {
		return fmt.Errorf("posting to compliance owner: %w", err)
	}

	return nil
}

// resolveActor maps the GitHub actor to a Slack user. An unmapped username is
// not an error; the notification is simply addressed without a mention.
func (b *ComplianceBot) resolveActor(ctx context.Context, suite *models.RuleSuite) (*slackapi.User, error) {
	if suite.ActorName == nil {
		return nil, nil
	}

	email, err := b.store.GetEmailByGithubUsername(ctx, *suite.ActorName)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user, err := b.slack.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("resolving slack user for %s: %w", *suite.ActorName, err)
	}
	return user, nil
}

func decodeCommit(raw *string) *gh.RepositoryCommit {
	if raw == nil {
		return nil
	}
	var commit gh.RepositoryCommit
	if err := json.Unmarshal([]byte(*raw), &commit); err != nil {
		return nil
	}
	return &commit
}

func decodePullRequest(raw *string) *gh.PullRequest {
	if raw == nil {
		return nil
	}
	var pr gh.PullRequest
	if err := json.Unmarshal([]byte(*raw), &pr); err != nil {
		return nil
	}
	return &pr
}
