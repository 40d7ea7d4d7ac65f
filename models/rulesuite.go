package models

import "time"

// RuleOutcome is the overall result of a rule suite evaluation.
type RuleOutcome string

const (
	RuleOutcomePass   RuleOutcome = "pass"
	RuleOutcomeFail   RuleOutcome = "fail"
	RuleOutcomeBypass RuleOutcome = "bypass"
)

// RuleEvalResult is the result of a single rule evaluation inside a suite.
type RuleEvalResult string

const (
	RuleEvalResultPass RuleEvalResult = "pass"
	RuleEvalResultFail RuleEvalResult = "fail"
)

// Enforcement is the enforcement mode a rule was evaluated under. Only active
// rules can produce actionable failures.
type Enforcement string

const (
	EnforcementActive         Enforcement = "active"
	EnforcementEvaluate       Enforcement = "evaluate"
	EnforcementDeletedRuleset Enforcement = "deleted ruleset"
)

// RuleSuite is one recorded evaluation of a push against a repository's rules.
// See https://docs.github.com/en/rest/repos/rule-suites
type RuleSuite struct {
	ID int64 `json:"id"`

	ActorID   *int64  `json:"actor_id"`
	ActorName *string `json:"actor_name"`

	BeforeSHA string `json:"before_sha"`
	AfterSHA  string `json:"after_sha"`

	Ref string `json:"ref"`

	RepositoryID   int64  `json:"repository_id"`
	RepositoryName string `json:"repository_name"`

	PushedAt time.Time `json:"pushed_at"`

	Result RuleOutcome `json:"result"`

	EvaluationResult *RuleOutcome `json:"evaluation_result"`

	RuleEvaluations []RuleEvaluation `json:"rule_evaluations,omitempty"`
}

// Actor returns the actor name or "Unknown".
func (s *RuleSuite) Actor() string {
	if s.ActorName != nil {
		return *s.ActorName
	}
	return "Unknown"
}

// RuleEvaluation is one rule checked within a suite.
type RuleEvaluation struct {
	RuleSource RuleSource `json:"rule_source"`

	Enforcement Enforcement `json:"enforcement"`

	Result RuleEvalResult `json:"result"`

	RuleType string `json:"rule_type"`

	// Only populated for some rule types, e.g. protected_branch.
	Details *string `json:"details"`
}

// RuleSource is the raw origin attribution of an evaluated rule.
type RuleSource struct {
	Type string `json:"type"`

	ID *int64 `json:"id"`

	Name *string `json:"name"`
}

// RuleSourceKind tags the derived classification of a rule's origin.
type RuleSourceKind int

const (
	// RuleSourceRuleset is a named org or repo ruleset with a known id.
	RuleSourceRuleset RuleSourceKind = iota
	// RuleSourceProtectedBranch is a classic branch protection rule.
	RuleSourceProtectedBranch
	// RuleSourceUnknown is anything this bot cannot attribute.
	RuleSourceUnknown
)

// EvaluatedRuleSource is the three-way classification of a rule's origin,
// derived once from the raw (type, id, name) tuple.
type EvaluatedRuleSource struct {
	Kind RuleSourceKind
	// Set for Ruleset; may be set for Unknown.
	ID   *int64
	Name *string
	// Raw type string, kept for Unknown display.
	Type string
}

// Evaluated derives the EvaluatedRuleSource for this source. A "ruleset" type
// without both id and name falls through to Unknown.
func (s RuleSource) Evaluated() EvaluatedRuleSource {
	switch {
	case s.Type == "ruleset" && s.ID != nil && s.Name != nil:
		return EvaluatedRuleSource{Kind: RuleSourceRuleset, ID: s.ID, Name: s.Name, Type: s.Type}
	case s.Type == "protected_branch":
		return EvaluatedRuleSource{Kind: RuleSourceProtectedBranch, Type: s.Type}
	default:
		return EvaluatedRuleSource{Kind: RuleSourceUnknown, ID: s.ID, Name: s.Name, Type: s.Type}
	}
}
