package semver

import (
	"encoding/json"
	"errors"
)

// errIncompleteRecord is returned by UnmarshalJSON when the major or
// minor key is missing.
var errIncompleteRecord = errors.New("semver: record must have major and minor")

// Record is the interchange form of a Version. A nil pointer means the
// field is absent; a pointer to "" is present-but-empty. Field order
// here fixes the JSON key order: major, minor, patch, suffix.
type Record struct {
	Major  *string `json:"major,omitempty"`
	Minor  *string `json:"minor,omitempty"`
	Patch  *string `json:"patch,omitempty"`
	Suffix *string `json:"suffix,omitempty"`
}

// Record projects the Version: major and minor always, patch and suffix
// only when present.
func (v Version) Record() Record {
	r := Record{
		Major: strp(v.Major),
		Minor: strp(v.Minor),
	}

	if v.HasPatch() {
		r.Patch = strp(v.Patch)
	}

	if v.HasSuffix() {
		r.Suffix = strp(v.Suffix)
	}

	return r
}

// FromRecord builds a Version from a Record. Major and minor are
// required; a record missing either fails. Patch and suffix stay absent
// when their pointers are nil.
func FromRecord(r Record) (Version, bool) {
	if r.Major == nil || r.Minor == nil {
		return Version{}, false
	}

	v := Version{
		Major: *r.Major,
		Minor: *r.Minor,
		Flags: FlagHasMajor | FlagHasMinor,
	}

	if r.Patch != nil {
		v.Patch = *r.Patch
		v.Flags |= FlagHasPatch
	}

	if r.Suffix != nil {
		v.Suffix = *r.Suffix
		v.Flags |= FlagHasSuffix
	}

	return v, true
}

// MarshalJSON encodes the record form.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Record())
}

// UnmarshalJSON decodes the record form. A record without major or
// minor is rejected.
func (v *Version) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	out, ok := FromRecord(r)
	if !ok {
		return errIncompleteRecord
	}

	*v = out

	return nil
}

// JSON returns the record form as a JSON string.
func (v Version) JSON() string {
	data, err := json.Marshal(v.Record())
	if err != nil {
		// Record is plain strings; Marshal cannot fail on it.
		return ""
	}

	return string(data)
}
