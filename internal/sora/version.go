package sora

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version identifies a SORA rule generation
type Version string

const (
	// Version20 is JARUS SORA 2.0
	Version20 Version = "2.0"
	// Version25 is JARUS SORA 2.5
	Version25 Version = "2.5"
)

// SupportedVersions lists every rule generation the engines implement
func SupportedVersions() []Version {
	return []Version{Version20, Version25}
}

// IsValid reports whether v is a supported version
func (v Version) IsValid() bool {
	return v == Version20 || v == Version25
}

// String returns the version tag
func (v Version) String() string {
	return string(v)
}

// Label returns a human readable name such as "SORA 2.5"
func (v Version) Label() string {
	return "SORA " + string(v)
}

// ParseVersion normalises a version string ("2", "2.5", "v2.0", "2.5.0") to a
// supported Version. Pre-release tags and patch levels are rejected.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", &ValidationError{Field: "version", Message: "is required"}
	}

	parsed, err := semver.NewVersion(raw)
	if err != nil {
		return "", &ValidationError{
			Field:   "version",
			Value:   raw,
			Message: fmt.Sprintf("is not a version number: %v", err),
		}
	}

	if parsed.Major() == 2 && parsed.Patch() == 0 && parsed.Prerelease() == "" {
		switch parsed.Minor() {
		case 0:
			return Version20, nil
		case 5:
			return Version25, nil
		}
	}

	return "", &ValidationError{
		Field:   "version",
		Value:   raw,
		Message: "unsupported SORA version, expected 2.0 or 2.5",
	}
}
