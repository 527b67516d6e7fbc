package semver

// Flag is a presence bitmask for Version fields. A field may hold an
// empty string and still be present: "1.2.3-" keeps an empty suffix,
// which String() omits but Array() and Record() report.
type Flag uint8

const (
	// FlagHasMajor marks the major field as set.
	FlagHasMajor Flag = 1 << iota
	// FlagHasMinor marks the minor field as set.
	FlagHasMinor
	// FlagHasPatch marks the patch field as set.
	FlagHasPatch
	// FlagHasSuffix marks the suffix field as set.
	FlagHasSuffix
)

// Version is an immutable dotted version value.
//
// Fields are stored as text exactly as parsed: a major like "v1" keeps
// its prefix, and a patch like "0" taken from "2.0.0-next" keeps only
// the part before the dash. Operations that change a counter return a
// new Version; the receiver is never modified.
type Version struct {
	// Major is the first dot-separated segment. It may carry a leading
	// 'v' or 'V'; any other leading letter fails Parse.
	Major string

	// Minor is the second dot-separated segment.
	Minor string

	// Patch is the third segment, or the part of it before the first
	// dash. Meaningful only when FlagHasPatch is set.
	Patch string

	// Suffix is the part of the third segment after the first dash
	// (prerelease/build tag, free-form). Meaningful only when
	// FlagHasSuffix is set.
	Suffix string

	// Flags records which fields are set.
	Flags Flag
}

// New builds a Version from numeric components. The suffix is attached
// when non-empty. Textual components (shorthand or dashed patch) come
// from Parse or FromRecord instead.
func New(major, minor, patch int, suffix string) Version {
	flags := FlagHasMajor | FlagHasMinor | FlagHasPatch
	if suffix != "" {
		flags |= FlagHasSuffix
	}

	return Version{
		Major:  itoa(major),
		Minor:  itoa(minor),
		Patch:  itoa(patch),
		Suffix: suffix,
		Flags:  flags,
	}
}

// HasPatch reports whether a patch segment is set (possibly empty).
func (v Version) HasPatch() bool {
	return v.Flags&FlagHasPatch != 0
}

// HasSuffix reports whether a suffix is set (possibly empty).
func (v Version) HasSuffix() bool {
	return v.Flags&FlagHasSuffix != 0
}

// IsValid reports whether both required fields are set. The zero
// Version, and the result of a failed Parse, are invalid.
func (v Version) IsValid() bool {
	return v.Flags&(FlagHasMajor|FlagHasMinor) == FlagHasMajor|FlagHasMinor
}
