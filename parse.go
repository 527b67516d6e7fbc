package semver

import "strings"

// Parse splits a dotted version string into a structured Version.
//
// The first two segments become major and minor (whitespace-trimmed);
// both are required. A third segment becomes patch, except that a dash
// splits it once: the part before the first dash is patch, the part
// after is suffix (either side may be empty). Segments past the third
// are ignored.
//
// Only major is validated: it must not start with a letter other than
// 'v'/'V'. Malformed input never panics; failure is reported purely via
// the bool, and the returned Version is the zero value.
func Parse(text string) (Version, bool) {
	segs := strings.Split(text, ".")
	if len(segs) < 2 {
		return Version{}, false
	}

	major := strings.TrimSpace(segs[0])
	if badMajorRe.MatchString(major) {
		return Version{}, false
	}

	v := Version{
		Major: major,
		Minor: strings.TrimSpace(segs[1]),
		Flags: FlagHasMajor | FlagHasMinor,
	}

	if len(segs) > 2 {
		if patch, suffix, ok := strings.Cut(segs[2], "-"); ok {
			v.Patch = patch
			v.Suffix = suffix
			v.Flags |= FlagHasPatch | FlagHasSuffix
		} else {
			v.Patch = strings.TrimSpace(segs[2])
			v.Flags |= FlagHasPatch
		}
	}

	return v, true
}
