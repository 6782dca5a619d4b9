// Package highlit carries the release version of the highlit module.
package highlit

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

//go:embed VERSION
var versionFile string

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Tag is the git tag for v.
func (v SemVer) Tag() string { return "v" + v.String() }

const ident = `[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*`

var semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-(` + ident + `))?(?:\+(` + ident + `))?$`)

// ParseVersion parses s, ignoring surrounding space. A leading "v" is not
// accepted.
func ParseVersion(s string) (SemVer, bool) {
	m := semverPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return SemVer{}, false
	}
	var v SemVer
	for i, dst := range []*int{&v.Major, &v.Minor, &v.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return SemVer{}, false
		}
		*dst = n
	}
	v.Pre, v.Build = m[4], m[5]
	return v, true
}

// Version is the release version embedded from the VERSION file.
func Version() string { return strings.TrimSpace(versionFile) }

// IsSemver reports whether s parses as a SemVer 2.0.0 version.
func IsSemver(s string) bool {
	_, ok := ParseVersion(s)
	return ok
}
