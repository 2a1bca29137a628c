package common

import (
	"fmt"
	"strings"
)

// Version is set via ldflags at build time: -ldflags "-X github.com/frib-daq/genx/internal/codegen/common.Version=x.y.z"
var Version = ""

// GetVersion returns the version string that was set at build time via ldflags.
// Returns "1.0.0-dev" if Version is empty (development builds only).
func GetVersion() (string, error) {
	if Version == "" {
		return "1.0.0-dev", nil
	}

	version := strings.TrimPrefix(Version, "v")
	baseVersion := strings.SplitN(version, "-", 2)[0]
	if !strings.Contains(baseVersion, ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}

	return version, nil
}

// ProgramVersion is the banner stamped into generated files, e.g.
// "rootgenerate version 1.0.0 (c) NSCL/FRIB".
func ProgramVersion(program string) (string, error) {
	v, err := GetVersion()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s version %s (c) NSCL/FRIB", program, v), nil
}
