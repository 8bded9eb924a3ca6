package model

import (
	"fmt"
	"strings"
)

// Feature is an optional post-scaffold modification.
type Feature string

const (
	// FeatureClean removes the demo content of the default template.
	FeatureClean Feature = "clean"
	// FeatureTailwind installs and wires Tailwind CSS.
	FeatureTailwind Feature = "tailwindcss"
)

// Features lists every feature in prompt order.
var Features = []Feature{FeatureClean, FeatureTailwind}

// DefaultFeatures are preselected when prompting.
var DefaultFeatures = []Feature{FeatureClean}

// ParseFeature converts a user supplied identifier into a Feature.
func ParseFeature(value string) (Feature, error) {
	feature := Feature(strings.ToLower(strings.TrimSpace(value)))
	if !feature.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFeature, value)
	}

	return feature, nil
}

// ParseFeatures parses a list of identifiers, dropping duplicates while
// keeping the first occurrence order.
func ParseFeatures(values []string) ([]Feature, error) {
	features := make([]Feature, 0, len(values))
	seen := make(map[Feature]struct{}, len(values))

	for _, value := range values {
		feature, err := ParseFeature(value)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[feature]; ok {
			continue
		}

		seen[feature] = struct{}{}
		features = append(features, feature)
	}

	return features, nil
}

// Valid reports whether f is a known feature.
func (f Feature) Valid() bool {
	switch f {
	case FeatureClean, FeatureTailwind:
		return true
	}

	return false
}

// Label is the prompt label of the feature.
func (f Feature) Label() string {
	switch f {
	case FeatureClean:
		return "Clean up default template"
	case FeatureTailwind:
		return "Install Tailwind CSS"
	}

	return string(f)
}

// Hint is an optional prompt hint.
func (f Feature) Hint() string {
	if f == FeatureClean {
		return "recommended"
	}

	return ""
}

// Title names the feature in status messages.
func (f Feature) Title() string {
	switch f {
	case FeatureClean:
		return "Template cleanup"
	case FeatureTailwind:
		return "Tailwind CSS"
	}

	return string(f)
}

// String implements fmt.Stringer.
func (f Feature) String() string {
	return string(f)
}
