package semver

import "strconv"

// strp returns a pointer to s. Record presence is pointer-based, so
// even empty strings need an address.
func strp(s string) *string {
	return &s
}

// itoa stringifies a counter for storage in a Version field.
func itoa(n int) string {
	return strconv.Itoa(n)
}
