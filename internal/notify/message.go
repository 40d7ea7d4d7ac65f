// Package notify assembles the Slack notification content for a bypassed
// rule suite: header, summary, actor attribution, one colored attachment per
// failed evaluation, and a plain-text fallback.
package notify

import (
	"fmt"
	"strings"

	gh "github.com/google/go-github/v80/github"
	slackapi "github.com/slack-go/slack"

	"github.com/tracker-tv/github-compliance-bot/internal/config"
	"github.com/tracker-tv/github-compliance-bot/internal/policy"
	"github.com/tracker-tv/github-compliance-bot/internal/slack"
	"github.com/tracker-tv/github-compliance-bot/models"
)

// Severity colors for attachments.
const (
	colorCritical = "#E01E5A"
	colorWarning  = "#ECB22E"
)

// Build produces the notification for a suite. actor is the resolved Slack
// identity of the pushing user and may be nil, in which case the summary
// addresses the GitHub login without a mention.
func Build(suite *models.RuleSuite, pr *gh.PullRequest, level models.AssetLevel, actor *slackapi.User, cfg *config.Config) slack.Message {
	critical := policy.IsCritical(suite, level, cfg)

	header := "Potential GitHub Policy Violation"
	if critical {
		header = "Critical GitHub Policy Violation"
	}

	mention := suite.Actor()
	if actor != nil {
		mention = fmt.Sprintf("<@%s>", actor.ID)
	}

	var summary string
	if critical {
		summary = fmt.Sprintf("%s, please leave a comment in the thread why the below rules were violated.", mention)
	} else {
		summary = fmt.Sprintf("%s, please make sure no security policy has been violated. No need to comment.", mention)
	}

	blocks := []slackapi.Block{
		slackapi.NewHeaderBlock(slackapi.NewTextBlockObject(slackapi.PlainTextType, header, false, false)),
		slackapi.NewSectionBlock(slackapi.NewTextBlockObject(slackapi.MarkdownType, summary, false, false), nil, nil),
		slackapi.NewSectionBlock(slackapi.NewTextBlockObject(slackapi.MarkdownType, "*Actor*\n"+suite.Actor(), false, false), nil, nil),
	}

	var attachments []slackapi.Attachment
	for _, eval := range suite.RuleEvaluations {
		if !policy.IsFailed(eval) {
			continue
		}
		attachments = append(attachments, buildAttachment(suite, eval, pr, cfg))
	}

	return slack.Message{
		Text:        summary + "\n\n" + FallbackText(suite, cfg),
		Blocks:      blocks,
		Attachments: attachments,
	}
}

func buildAttachment(suite *models.RuleSuite, eval models.RuleEvaluation, pr *gh.PullRequest, cfg *config.Config) slackapi.Attachment {
	fields := []slackapi.AttachmentField{
		{
			Title: "Commit",
			Value: fmt.Sprintf("<%s|`%s`> in `%s`.", commitURL(suite, cfg), shortSHA(suite.AfterSHA), suite.RepositoryName),
			Short: true,
		},
		{
			Title: "Sub-type",
			Value: fmt.Sprintf("*%s*", eval.RuleType),
			Short: true,
		},
	}

	if pr != nil && pr.GetHTMLURL() != "" {
		fields = append(fields, slackapi.AttachmentField{
			Title: "Pull Request",
			Value: fmt.Sprintf("<%s|#%d>", pr.GetHTMLURL(), pr.GetNumber()),
		})
	}

	if eval.Details != nil {
		fields = append(fields, slackapi.AttachmentField{
			Title: "Details",
			Value: *eval.Details,
		})
	}

	source := eval.RuleSource.Evaluated()
	switch source.Kind {
	case models.RuleSourceRuleset:
		fields = append(fields, slackapi.AttachmentField{
			Title: "Ruleset",
			Value: fmt.Sprintf("<%s/organizations/%s/settings/rules/%d|%s>", cfg.GithubWebBaseURL, cfg.GithubOrg, *source.ID, *source.Name),
		})
	case models.RuleSourceProtectedBranch:
		fields = append(fields, slackapi.AttachmentField{
			Title: "Source",
			Value: "branch protection",
		})
	case models.RuleSourceUnknown:
		fields = append(fields, slackapi.AttachmentField{
			Title: "Source",
			Value: source.Type,
		})
	}

	color := colorWarning
	if policy.IsCriticalViolation(eval, cfg) {
		color = colorCritical
	}

	return slackapi.Attachment{
		Color:      color,
		Fallback:   "no fallback",
		Fields:     fields,
		MarkdownIn: []string{"fields"},
	}
}

// FallbackText renders the suite as prose, one line per failed evaluation,
// for transports without structured block support.
func FallbackText(suite *models.RuleSuite, cfg *config.Config) string {
	if suite.Result != models.RuleOutcomeBypass {
		return "Non-bypass rule must not be evaluated.\n"
	}
	if suite.RuleEvaluations == nil {
		return "Bypass without rule evaluations.\n"
	}

	var b strings.Builder
	noFailures := true
	for _, eval := range suite.RuleEvaluations {
		if !policy.IsFailed(eval) {
			continue
		}
		noFailures = false

		fmt.Fprintf(&b, "%s violated rule (`%s`)", suite.Actor(), eval.RuleType)
		if eval.RuleSource.Name != nil {
			if eval.RuleSource.Type == "ruleset" {
				fmt.Fprintf(&b, " from ruleset `%s`", *eval.RuleSource.Name)
			} else {
				fmt.Fprintf(&b, " from `%s`", *eval.RuleSource.Name)
			}
		}
		fmt.Fprintf(&b, " with <%s|`%s`> in `%s`.\n", commitURL(suite, cfg), shortSHA(suite.AfterSHA), suite.RepositoryName)

		if eval.Details != nil {
			fmt.Fprintf(&b, "\n%s\n", *eval.Details)
		}
	}

	if noFailures {
		b.WriteString("Bypass with no failures.\n")
	}
	return b.String()
}

func commitURL(suite *models.RuleSuite, cfg *config.Config) string {
	return fmt.Sprintf("%s/%s/%s/commit/%s", cfg.GithubWebBaseURL, cfg.GithubOrg, suite.RepositoryName, suite.AfterSHA)
}

func shortSHA(sha string) string {
	if len(sha) < 7 {
		return "commit"
	}
	return sha[:7]
}
