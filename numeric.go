package semver

import "strconv"

// NoNumber is the sentinel returned by the numeric accessors when a
// field is absent or does not hold a plain number (e.g. a "v1" major).
// It is a normal return value, not an error condition.
const NoNumber = -1

// MajorInt returns the major counter, or NoNumber when major is not
// numeric.
func (v Version) MajorInt() int {
	return atoi(v.Major)
}

// MinorInt returns the minor counter, or NoNumber when minor is not
// numeric.
func (v Version) MinorInt() int {
	return atoi(v.Minor)
}

// PatchInt returns the patch counter, or NoNumber when patch is absent
// or not numeric (the patch of "1.2.3-rc" is still 3; the patch of
// "1.2.x" is not a number).
func (v Version) PatchInt() int {
	if !v.HasPatch() {
		return NoNumber
	}

	return atoi(v.Patch)
}

// IncMajor returns a copy with major raised by amount (default 1).
// A non-numeric major counts as 0, so "v1.2.3" steps to "1.2.3".
// Lower components are left alone rather than reset to zero, which
// diverges from conventional SemVer release practice on purpose.
func (v Version) IncMajor(amount ...int) Version {
	n := v.MajorInt()
	if n == NoNumber {
		n = 0
	}

	out := v
	out.Major = itoa(n + delta(amount))
	out.Flags |= FlagHasMajor

	return out
}

// IncMinor returns a copy with minor raised by amount (default 1).
// A non-numeric minor counts as 0. The patch is not reset.
func (v Version) IncMinor(amount ...int) Version {
	n := v.MinorInt()
	if n == NoNumber {
		n = 0
	}

	out := v
	out.Minor = itoa(n + delta(amount))
	out.Flags |= FlagHasMinor

	return out
}

// IncPatch returns a copy with patch raised by amount (default 1).
// Unlike the other counters, the NoNumber sentinel itself enters the
// arithmetic: incrementing an absent patch yields 0 and makes the
// patch present ("1.2" steps to "1.2.0").
func (v Version) IncPatch(amount ...int) Version {
	out := v
	out.Patch = itoa(v.PatchInt() + delta(amount))
	out.Flags |= FlagHasPatch

	return out
}

// delta resolves the optional increment amount, defaulting to 1.
func delta(amount []int) int {
	if len(amount) > 0 {
		return amount[0]
	}

	return 1
}

// atoi coerces a stored field to its counter value, NoNumber on failure.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return NoNumber
	}

	return n
}
