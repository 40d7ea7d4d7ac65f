// Package policy decides whether a bypassed rule suite is worth calling out
// to the compliance channel and whether it counts as critical. Everything in
// here is pure; the inputs come from the orchestrator.
package policy

import (
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/tracker-tv/github-compliance-bot/internal/config"
	"github.com/tracker-tv/github-compliance-bot/models"
)

// Dependabot's well-known automation identity. Commits it authors are allowed
// to bypass review requirements without escalation.
const (
	dependabotID    int64 = 49699333
	dependabotLogin       = "dependabot[bot]"
)

// PR labels containing this substring suppress review-bypass escalation.
const policyExceptionLabel = "policy-exception"

// IsFailed reports whether an evaluation actually failed an enforced rule.
// Evaluate-mode and deleted-ruleset entries are informational only.
func IsFailed(eval models.RuleEvaluation) bool {
	return eval.Enforcement == models.EnforcementActive && eval.Result == models.RuleEvalResultFail
}

func matchesRuleset(eval models.RuleEvaluation, rulesetID *int64) bool {
	return rulesetID != nil && eval.RuleSource.ID != nil && *eval.RuleSource.ID == *rulesetID
}

func IsReviewRequirementBypass(eval models.RuleEvaluation, cfg *config.Config) bool {
	return IsFailed(eval) && matchesRuleset(eval, cfg.ReviewRequirementRulesetID)
}

func IsBlockForcePushBypass(eval models.RuleEvaluation, cfg *config.Config) bool {
	return IsFailed(eval) && matchesRuleset(eval, cfg.BlockForcePushRulesetID)
}

func IsCodeownersBypass(eval models.RuleEvaluation, cfg *config.Config) bool {
	return IsFailed(eval) && matchesRuleset(eval, cfg.CodeownersRulesetID)
}

// IsCriticalViolation marks the evaluations that demand a justification from
// the actor: bypassed review requirements and bypassed force push blocks.
func IsCriticalViolation(eval models.RuleEvaluation, cfg *config.Config) bool {
	return IsReviewRequirementBypass(eval, cfg) || IsBlockForcePushBypass(eval, cfg)
}

// anyFailedEvaluation reports whether some failed evaluation satisfies pred.
// This is the single guard enforcing that non-Bypass suites never trigger a
// violation predicate.
func anyFailedEvaluation(suite *models.RuleSuite, pred func(models.RuleEvaluation) bool) bool {
	if suite.Result != models.RuleOutcomeBypass {
		return false
	}
	for _, eval := range suite.RuleEvaluations {
		if eval.Result == models.RuleEvalResultFail && pred(eval) {
			return true
		}
	}
	return false
}

// CallOut decides whether the suite escalates to the compliance channel.
// Only suites of repositories within the callout asset level range qualify.
func CallOut(suite *models.RuleSuite, level models.AssetLevel, commit *gh.RepositoryCommit, pr *gh.PullRequest, cfg *config.Config) bool {
	if !cfg.CalloutLevels().Contains(level) {
		return false
	}

	if anyFailedEvaluation(suite, func(eval models.RuleEvaluation) bool {
		return IsBlockForcePushBypass(eval, cfg)
	}) {
		return true
	}

	// A source this bot cannot attribute could be a branch protection rule,
	// so treat it like one.
	if anyFailedEvaluation(suite, func(eval models.RuleEvaluation) bool {
		return IsFailed(eval) && eval.RuleSource.Evaluated().Kind != models.RuleSourceRuleset
	}) {
		return true
	}

	isReviewViolation := anyFailedEvaluation(suite, func(eval models.RuleEvaluation) bool {
		return IsReviewRequirementBypass(eval, cfg)
	})
	if isReviewViolation && !isDependabotCommit(commit) && !hasPolicyExceptionLabel(pr) {
		return true
	}

	// Code owner bypasses stay off by default; the violation is still
	// recorded and sent as a DM.
	if cfg.CalloutCodeOwners && anyFailedEvaluation(suite, func(eval models.RuleEvaluation) bool {
		return IsCodeownersBypass(eval, cfg)
	}) {
		return true
	}

	return false
}

// IsCritical reports whether the suite demands a comment from the actor.
// Independent of CallOut: a suite can be critical without being called out.
func IsCritical(suite *models.RuleSuite, level models.AssetLevel, cfg *config.Config) bool {
	if !cfg.CriticalLevels().Contains(level) {
		return false
	}
	return anyFailedEvaluation(suite, func(eval models.RuleEvaluation) bool {
		return IsCriticalViolation(eval, cfg)
	})
}

func isDependabotCommit(commit *gh.RepositoryCommit) bool {
	if commit == nil || commit.Author == nil {
		return false
	}
	return commit.Author.GetID() == dependabotID && commit.Author.GetLogin() == dependabotLogin
}

func hasPolicyExceptionLabel(pr *gh.PullRequest) bool {
	if pr == nil {
		return false
	}
	for _, label := range pr.Labels {
		if strings.Contains(label.GetName(), policyExceptionLabel) {
			return true
		}
	}
	return false
}
