package models

import (
	"errors"
	"fmt"
)

// AssetLevel is the sensitivity classification of a repository, taken from the
// "repository-level" custom property.
type AssetLevel string

const (
	// AssetLevelPlayground is for repos just testing the waters. Not even
	// development breaks if one of these breaks.
	AssetLevelPlayground AssetLevel = "Playground"
	// AssetLevelResearchAndDevelopment is used for development. If one of
	// these is pwned, other controls should stop spreading to production.
	AssetLevelResearchAndDevelopment AssetLevel = "Research & Development"
	// AssetLevelCorporate is only relevant for internal folks. No link to production.
	AssetLevelCorporate AssetLevel = "Corporate"
	// AssetLevelNonEssentialProduction covers publicly accessible services
	// that are not part of the core product.
	AssetLevelNonEssentialProduction AssetLevel = "Non-essential Production"
	AssetLevelProduction             AssetLevel = "Production"
)

// ErrAssetLevelArray is returned when the repository-level custom property
// carries an array value. The property schema assumes a single string, so this
// is a configuration error and aborts the invocation.
var ErrAssetLevelArray = errors.New("array value not supported for repository-level")

// assetLevelProperty is the custom property holding the classification.
const assetLevelProperty = "repository-level"

// Rank orders asset levels from least critical to most critical. The order is
// independent of declaration order and only comparable through this table.
func (l AssetLevel) Rank() int {
	switch l {
	case AssetLevelPlayground:
		return 10
	case AssetLevelResearchAndDevelopment:
		return 20
	case AssetLevelCorporate:
		return 30
	case AssetLevelNonEssentialProduction:
		return 40
	case AssetLevelProduction:
		return 50
	}
	return 0
}

// ParseAssetLevel maps a custom property string to an asset level.
func ParseAssetLevel(s string) (AssetLevel, bool) {
	switch AssetLevel(s) {
	case AssetLevelPlayground,
		AssetLevelResearchAndDevelopment,
		AssetLevelCorporate,
		AssetLevelNonEssentialProduction,
		AssetLevelProduction:
		return AssetLevel(s), true
	}
	return "", false
}

// UnmarshalText lets env-based config parse asset levels directly.
func (l *AssetLevel) UnmarshalText(text []byte) error {
	level, ok := ParseAssetLevel(string(text))
	if !ok {
		return fmt.Errorf("unknown asset level %q", string(text))
	}
	*l = level
	return nil
}

// AssetLevelRange is a closed interval over asset level ranks.
type AssetLevelRange struct {
	Min AssetLevel
	Max AssetLevel
}

// Contains reports whether level lies within the range, bounds included.
func (r AssetLevelRange) Contains(level AssetLevel) bool {
	return r.Min.Rank() <= level.Rank() && level.Rank() <= r.Max.Rank()
}

// CustomProperty is one repository custom property as returned by the GitHub
// API. Value is either a string or a []string.
type CustomProperty struct {
	PropertyName string `json:"property_name"`
	Value        any    `json:"value"`
}

// ResolveAssetLevel scans repository custom properties for the
// repository-level property. Repositories without the property, without a
// value, or with an unrecognized value have no asset level and are out of
// scope. An array value returns ErrAssetLevelArray.
func ResolveAssetLevel(props []CustomProperty) (AssetLevel, bool, error) {
	for _, prop := range props {
		if prop.PropertyName != assetLevelProperty {
			continue
		}
		switch value := prop.Value.(type) {
		case nil:
			return "", false, nil
		case string:
			level, ok := ParseAssetLevel(value)
			return level, ok, nil
		default:
			return "", false, ErrAssetLevelArray
		}
	}
	return "", false, nil
}
