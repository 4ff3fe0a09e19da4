// Package version represents the version of the storage server.
// The version selects server dependent policies, for example the forbidden characters in file names.
package version

import (
	"strings"

	"github.com/Masterminds/semver"

	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

// maxComponents compared, servers report versions such as "10.0.3.3".
const maxComponents = 3

// forbiddenCharactersHandledByServer is the first version which validates file names on the server side.
var forbiddenCharactersHandledByServer = MustParse("8.1.0")

type Version struct {
	raw    string
	semver *semver.Version
}

// Parse a server version, components above the third are kept in String() but ignored in comparisons.
func Parse(raw string) (*Version, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("server version is empty")
	}

	parts := strings.Split(strings.TrimPrefix(raw, "v"), ".")
	if len(parts) > maxComponents {
		parts = parts[:maxComponents]
	}

	v, err := semver.NewVersion(strings.Join(parts, "."))
	if err != nil {
		return nil, errors.Errorf(`invalid server version "%s": %w`, raw, err)
	}

	return &Version{raw: raw, semver: v}, nil
}

func MustParse(raw string) *Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Version) String() string {
	if v == nil {
		return "unknown"
	}
	return v.raw
}

func (v *Version) LessThan(other *Version) bool {
	return v.semver.LessThan(other.semver)
}

// EnforcesForbiddenCharacters returns true if file names must be checked against
// the extended set of forbidden characters on the client side.
// An unknown version enforces the check.
func (v *Version) EnforcesForbiddenCharacters() bool {
	if v == nil {
		return true
	}
	return v.LessThan(forbiddenCharactersHandledByServer)
}
