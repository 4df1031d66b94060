package version

import (
	"encoding/json"
	"fmt"
)

// Version is the current release version of beerctl, overridden at build time
// with -ldflags "-X github.com/weaveworks/beerctl/pkg/version.Version=...".
var Version = "0.1.0"

// PreReleaseID is empty for releases.
var PreReleaseID = "dev"

// GitCommit and BuildDate are set by the release build.
var (
	GitCommit = ""
	BuildDate = ""
)

// ExtraSep separates semver version from any extra version info
const ExtraSep = "-"

// Info holds version information
type Info struct {
	Version      string        `json:"version"`
	PreReleaseID string        `json:"preReleaseID,omitempty"`
	Metadata     BuildMetadata `json:"metadata"`
}

// BuildMetadata contains the short commit hash and build date of the binary.
type BuildMetadata struct {
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
}

// GetVersionInfo returns version Info struct
func GetVersionInfo() Info {
	return Info{
		Version:      Version,
		PreReleaseID: PreReleaseID,
		Metadata: BuildMetadata{
			GitCommit: GitCommit,
			BuildDate: BuildDate,
		},
	}
}

// String return version info as JSON
func String() string {
	if data, err := json.Marshal(GetVersionInfo()); err == nil {
		return string(data)
	}
	return ""
}

// GetVersion returns the exact version of this build, e.g. 0.1.0-dev+abc1234.2021-01-15T14:03:46Z
func GetVersion() string {
	if PreReleaseID == "" {
		return Version
	}
	v := Version + ExtraSep + PreReleaseID
	if GitCommit == "" || BuildDate == "" {
		return v
	}
	return fmt.Sprintf("%s+%s.%s", v, GitCommit, BuildDate)
}
