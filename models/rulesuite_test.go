package models

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSuiteActor(t *testing.T) {
	name := "octocat"
	suite := &RuleSuite{ActorName: &name}
	assert.Equal(t, "octocat", suite.Actor())

	suite = &RuleSuite{}
	assert.Equal(t, "Unknown", suite.Actor())
}

func TestRuleSourceEvaluated(t *testing.T) {
	id := int64(42)
	name := "Review Requirement"

	tests := []struct {
		name     string
		source   RuleSource
		wantKind RuleSourceKind
	}{
		{
			name:     "ruleset with id and name",
			source:   RuleSource{Type: "ruleset", ID: &id, Name: &name},
			wantKind: RuleSourceRuleset,
		},
		{
			name:     "ruleset missing id",
			source:   RuleSource{Type: "ruleset", Name: &name},
			wantKind: RuleSourceUnknown,
		},
		{
			name:     "ruleset missing name",
			source:   RuleSource{Type: "ruleset", ID: &id},
			wantKind: RuleSourceUnknown,
		},
		{
			name:     "protected branch",
			source:   RuleSource{Type: "protected_branch"},
			wantKind: RuleSourceProtectedBranch,
		},
		{
			name:     "unrecognized type",
			source:   RuleSource{Type: "mystery"},
			wantKind: RuleSourceUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluated := tt.source.Evaluated()
			assert.Equal(t, tt.wantKind, evaluated.Kind)
			assert.Equal(t, tt.source.Type, evaluated.Type)
			if tt.wantKind == RuleSourceRuleset {
				require.NotNil(t, evaluated.ID)
				require.NotNil(t, evaluated.Name)
				assert.Equal(t, id, *evaluated.ID)
				assert.Equal(t, name, *evaluated.Name)
			}
		})
	}
}

func TestRuleSuiteUnmarshal(t *testing.T) {
	data, err := os.ReadFile("testdata/rulesuite1.json")
	require.NoError(t, err)

	var suite RuleSuite
	require.NoError(t, json.Unmarshal(data, &suite))

	assert.Equal(t, int64(1511337), suite.ID)
	assert.Equal(t, "octocat", suite.Actor())
	assert.Equal(t, "refs/heads/main", suite.Ref)
	assert.Equal(t, "backend-api", suite.RepositoryName)
	assert.Equal(t, RuleOutcomeBypass, suite.Result)
	require.NotNil(t, suite.EvaluationResult)
	assert.Equal(t, RuleOutcomeFail, *suite.EvaluationResult)

	require.Len(t, suite.RuleEvaluations, 2)

	first := suite.RuleEvaluations[0]
	assert.Equal(t, EnforcementActive, first.Enforcement)
	assert.Equal(t, RuleEvalResultFail, first.Result)
	assert.Equal(t, "pull_request", first.RuleType)
	assert.Equal(t, RuleSourceRuleset, first.RuleSource.Evaluated().Kind)

	second := suite.RuleEvaluations[1]
	assert.Equal(t, EnforcementEvaluate, second.Enforcement)
	assert.Equal(t, RuleSourceProtectedBranch, second.RuleSource.Evaluated().Kind)
	require.NotNil(t, second.Details)
	assert.Equal(t, "Cannot force-push to this branch", *second.Details)
}

func TestRuleSuiteUnmarshal_NoEvaluations(t *testing.T) {
	data, err := os.ReadFile("testdata/rulesuite2.json")
	require.NoError(t, err)

	var suite RuleSuite
	require.NoError(t, json.Unmarshal(data, &suite))

	assert.Equal(t, int64(7), suite.ID)
	assert.Equal(t, "Unknown", suite.Actor())
	assert.Equal(t, RuleOutcomeBypass, suite.Result)
	assert.Nil(t, suite.EvaluationResult)
	assert.Nil(t, suite.RuleEvaluations)
}
