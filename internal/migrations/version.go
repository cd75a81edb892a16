package migrations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/appointedtime/pressroom/config"
)

// ParseVersion parses a version string like "v2.1" or "2.1" and returns the major version
func ParseVersion(versionStr string) (float64, error) {
	cleanVersion := strings.TrimPrefix(versionStr, "v")

	parts := strings.Split(cleanVersion, ".")
	if len(parts) == 0 || parts[0] == "" {
		return 0, fmt.Errorf("invalid version format: %s", versionStr)
	}

	major, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid major version: %s", parts[0])
	}

	return major, nil
}

// GetCurrentCodeVersion returns the major version from config.VERSION
func GetCurrentCodeVersion() (float64, error) {
	return ParseVersion(config.VERSION)
}

// CompareVersions compares two version strings by major version.
// Returns: -1 if v1 < v2, 0 if v1 == v2, 1 if v1 > v2
func CompareVersions(v1, v2 string) (int, error) {
	major1, err := ParseVersion(v1)
	if err != nil {
		return 0, fmt.Errorf("failed to parse version %s: %w", v1, err)
	}

	major2, err := ParseVersion(v2)
	if err != nil {
		return 0, fmt.Errorf("failed to parse version %s: %w", v2, err)
	}

	if major1 < major2 {
		return -1, nil
	} else if major1 > major2 {
		return 1, nil
	}
	return 0, nil
}
