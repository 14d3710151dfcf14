package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersion parses a NuGet version string. Leading and trailing whitespace is ignored.
func ParseVersion(raw string) (*semver.Version, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.New("empty version")
	}

	version, err := semver.NewVersion(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	return version, nil
}

// MustParseVersion is like ParseVersion but panics on malformed input.
// It is meant for constants and tests.
func MustParseVersion(raw string) *semver.Version {
	version, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return version
}

// IsPrerelease reports whether the version carries a pre-release label.
func IsPrerelease(version *semver.Version) bool {
	return version != nil && version.Prerelease() != ""
}

// SameVersion reports whether both versions are set and have the same precedence,
// or both are unset.
func SameVersion(left, right *semver.Version) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return left.Equal(right)
}

// FormatVersion renders a possibly unset version, using "-" for nothing.
func FormatVersion(version *semver.Version) string {
	if version == nil {
		return "-"
	}
	return version.String()
}
