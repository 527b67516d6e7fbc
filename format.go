package semver

import "strings"

// String renders the stored fields: non-empty major, minor, and patch
// joined with dots, then "-suffix" when the suffix is non-empty. No
// validation happens here; values set directly on the struct render
// as-is. Pure, so repeated calls yield identical strings.
func (v Version) String() string {
	var b strings.Builder

	for _, seg := range [...]string{v.Major, v.Minor, v.Patch} {
		if seg == "" {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}

	if v.Suffix != "" {
		b.WriteByte('-')
		b.WriteString(v.Suffix)
	}

	return b.String()
}

// Array returns the positional view: major and minor, then patch and
// suffix when present. Present-but-empty fields are included, so the
// length varies from 2 to 4.
func (v Version) Array() []string {
	out := make([]string, 0, 4)
	out = append(out, v.Major, v.Minor)

	if v.HasPatch() {
		out = append(out, v.Patch)
	}

	if v.HasSuffix() {
		out = append(out, v.Suffix)
	}

	return out
}
