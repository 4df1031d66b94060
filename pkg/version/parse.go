package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	fluxcd "github.com/fluxcd/pkg/version"
)

// ParseVersion parses a beerctl version as semver while ignoring
// extra build metadata
func ParseVersion(raw string) (*semver.Version, error) {
	// We don't want any extra info from the version
	semverVersion := strings.Split(raw, ExtraSep)[0]
	v, err := fluxcd.ParseVersion(semverVersion)
	if err != nil {
		return v, fmt.Errorf("unexpected error parsing beerctl version %q", raw)
	}
	return v, nil
}

// UserAgent is the User-Agent header value sent to the catalog service.
func UserAgent() string {
	return "beerctl/" + GetVersion()
}
