// Package screenkeys records which release of the screen keyboard input
// components is built. The components themselves live in field, keyboard,
// editor and form.
package screenkeys

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var release string

// semver matches MAJOR.MINOR.PATCH with optional pre-release and build parts.
var semver = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the release number from the VERSION file, e.g. "0.1.0".
func Version() string { return strings.TrimSpace(release) }

// VersionTag prefixes Version with "v", the form used by -version and by
// release tags.
func VersionTag() string { return "v" + Version() }

// IsSemver reports whether v, ignoring surrounding blanks, is a release
// number without a "v" prefix.
func IsSemver(v string) bool { return semver.MatchString(strings.TrimSpace(v)) }

// VersionIsSemver checks the embedded VERSION file.
func VersionIsSemver() bool { return IsSemver(Version()) }
