package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/tracker-tv/github-compliance-bot/models"
)

// Config holds the organization compliance policy and process wiring, loaded
// from the environment. It is read-only after Load and passed down the call
// chain explicitly.
type Config struct {
	GithubPAT  string `env:"TTV_GITHUB_PAT,required"`
	SlackToken string `env:"TTV_SLACK_TOKEN,required"`

	GithubOrg        string `env:"TTV_GITHUB_ORG" envDefault:"tracker-tv"`
	GithubWebBaseURL string `env:"TTV_GITHUB_WEB_BASE_URL" envDefault:"https://github.com"`

	// Channel that called-out violations escalate to.
	SlackComplianceChannel string `env:"TTV_SLACK_COMPLIANCE_CHANNEL,required"`
	// Every notification is also copied to this recipient.
	ComplianceOwnerEmail string `env:"TTV_COMPLIANCE_OWNER_EMAIL,required"`

	// Ruleset ids identifying the specific org rulesets for review
	// requirements, force push blocking and code owners. Unset ids disable
	// the matching predicate.
	ReviewRequirementRulesetID *int64 `env:"TTV_REVIEW_REQUIREMENT_RULESET_ID"`
	BlockForcePushRulesetID    *int64 `env:"TTV_BLOCK_FORCE_PUSH_RULESET_ID"`
	CodeownersRulesetID        *int64 `env:"TTV_CODEOWNERS_RULESET_ID"`

	// Code owner bypasses are detected but not escalated unless this is set.
	CalloutCodeOwners bool `env:"TTV_CALLOUT_CODEOWNERS"`

	InScopeMin  models.AssetLevel `env:"TTV_IN_SCOPE_MIN" envDefault:"Playground"`
	InScopeMax  models.AssetLevel `env:"TTV_IN_SCOPE_MAX" envDefault:"Production"`
	CalloutMin  models.AssetLevel `env:"TTV_CALLOUT_MIN" envDefault:"Corporate"`
	CalloutMax  models.AssetLevel `env:"TTV_CALLOUT_MAX" envDefault:"Production"`
	CriticalMin models.AssetLevel `env:"TTV_CRITICAL_MIN" envDefault:"Non-essential Production"`
	CriticalMax models.AssetLevel `env:"TTV_CRITICAL_MAX" envDefault:"Production"`

	DatabasePath string `env:"TTV_DB_PATH" envDefault:"compliance-bot.db"`

	// Glob patterns of repository names to skip entirely.
	ExcludeRepos []string `env:"TTV_EXCLUDE_REPOS" envSeparator:","`

	// Number of repositories processed in parallel by a full run.
	RepoConcurrency int `env:"TTV_REPO_CONCURRENCY" envDefault:"4"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InScopeLevels is the asset level range of monitored repositories.
func (c *Config) InScopeLevels() models.AssetLevelRange {
	return models.AssetLevelRange{Min: c.InScopeMin, Max: c.InScopeMax}
}

// CalloutLevels is the asset level range whose violations escalate to the
// compliance channel.
func (c *Config) CalloutLevels() models.AssetLevelRange {
	return models.AssetLevelRange{Min: c.CalloutMin, Max: c.CalloutMax}
}

// CriticalLevels is the asset level range whose violations require a comment
// from the actor.
func (c *Config) CriticalLevels() models.AssetLevelRange {
	return models.AssetLevelRange{Min: c.CriticalMin, Max: c.CriticalMax}
}
