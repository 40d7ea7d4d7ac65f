package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetLevelRank_Ordering(t *testing.T) {
	ordered := []AssetLevel{
		AssetLevelPlayground,
		AssetLevelResearchAndDevelopment,
		AssetLevelCorporate,
		AssetLevelNonEssentialProduction,
		AssetLevelProduction,
	}

	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1].Rank(), ordered[i].Rank(),
			"%s must rank below %s", ordered[i-1], ordered[i])
	}
}

func TestAssetLevelRank_Unknown(t *testing.T) {
	assert.Equal(t, 0, AssetLevel("Staging").Rank())
	assert.Equal(t, 0, AssetLevel("").Rank())
}

func TestParseAssetLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   AssetLevel
		wantOK bool
	}{
		{"Playground", AssetLevelPlayground, true},
		{"Research & Development", AssetLevelResearchAndDevelopment, true},
		{"Corporate", AssetLevelCorporate, true},
		{"Non-essential Production", AssetLevelNonEssentialProduction, true},
		{"Production", AssetLevelProduction, true},
		{"production", "", false},
		{"Staging", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, ok := ParseAssetLevel(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestAssetLevelUnmarshalText(t *testing.T) {
	var level AssetLevel

	assert.NoError(t, level.UnmarshalText([]byte("Corporate")))
	assert.Equal(t, AssetLevelCorporate, level)

	err := level.UnmarshalText([]byte("nonsense"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "nonsense")
}

func TestAssetLevelRange_Contains(t *testing.T) {
	r := AssetLevelRange{Min: AssetLevelCorporate, Max: AssetLevelProduction}

	assert.False(t, r.Contains(AssetLevelPlayground))
	assert.False(t, r.Contains(AssetLevelResearchAndDevelopment))
	assert.True(t, r.Contains(AssetLevelCorporate))
	assert.True(t, r.Contains(AssetLevelNonEssentialProduction))
	assert.True(t, r.Contains(AssetLevelProduction))
}

func TestResolveAssetLevel_StringValue(t *testing.T) {
	props := []CustomProperty{
		{PropertyName: "team", Value: "platform"},
		{PropertyName: "repository-level", Value: "Production"},
	}

	level, ok, err := ResolveAssetLevel(props)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, AssetLevelProduction, level)
}

func TestResolveAssetLevel_MissingProperty(t *testing.T) {
	props := []CustomProperty{
		{PropertyName: "team", Value: "platform"},
	}

	level, ok, err := ResolveAssetLevel(props)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, AssetLevel(""), level)
}

func TestResolveAssetLevel_NilValue(t *testing.T) {
	props := []CustomProperty{
		{PropertyName: "repository-level", Value: nil},
	}

	_, ok, err := ResolveAssetLevel(props)

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveAssetLevel_UnknownValue(t *testing.T) {
	props := []CustomProperty{
		{PropertyName: "repository-level", Value: "Staging"},
	}

	_, ok, err := ResolveAssetLevel(props)

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestResolveAssetLevel_ArrayValue(t *testing.T) {
	props := []CustomProperty{
		{PropertyName: "repository-level", Value: []any{"Production", "Corporate"}},
	}

	_, ok, err := ResolveAssetLevel(props)

	assert.ErrorIs(t, err, ErrAssetLevelArray)
	assert.False(t, ok)
}

func TestResolveAssetLevel_NoProperties(t *testing.T) {
	_, ok, err := ResolveAssetLevel(nil)

	assert.NoError(t, err)
	assert.False(t, ok)
}
