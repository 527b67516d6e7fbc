package semver

import "regexp"

var (
	// Disallowed leading letters for the major segment: every ASCII
	// letter except 'v'/'V', which is an accepted version prefix
	// ("v1.2.3" parses, "A1.2.3" does not).
	badMajorRe = regexp.MustCompile(`^[a-uw-zA-UW-Z]`)
)
