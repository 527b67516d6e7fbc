package semver

import (
	"reflect"
	"testing"
)

func TestNumericAccessors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in                  string
		major, minor, patch int
	}{
		{"1.2.3", 1, 2, 3},
		{"0.0.0", 0, 0, 0},
		{"10.20.30", 10, 20, 30},
		// No patch segment -> sentinel.
		{"1.2", 1, 2, NoNumber},
		// Textual patch -> sentinel; suffix does not hide the number.
		{"1.2.x", 1, 2, NoNumber},
		{"2.0.0-next", 2, 0, 0},
		// v-prefixed major is not a plain number.
		{"v1.2.3", NoNumber, 2, 3},
	}

	for _, tc := range cases {
		v, ok := Parse(tc.in)
		if !ok {
			t.Fatalf("Parse(%q) = false; want true", tc.in)
		}

		if got := v.MajorInt(); got != tc.major {
			t.Fatalf("MajorInt(%q) = %d; want %d", tc.in, got, tc.major)
		}

		if got := v.MinorInt(); got != tc.minor {
			t.Fatalf("MinorInt(%q) = %d; want %d", tc.in, got, tc.minor)
		}

		if got := v.PatchInt(); got != tc.patch {
			t.Fatalf("PatchInt(%q) = %d; want %d", tc.in, got, tc.patch)
		}
	}
}

func TestPatchInt_NeverSet(t *testing.T) {
	t.Parallel()

	if got := (Version{}).PatchInt(); got != NoNumber {
		t.Fatalf("PatchInt on empty value = %d; want %d", got, NoNumber)
	}
}

func TestInc_StepsSingleCounter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		inc  func(Version) Version
		want string
	}{
		{"0.0.1", func(v Version) Version { return v.IncPatch() }, "0.0.2"},
		{"0.1.0", func(v Version) Version { return v.IncMinor() }, "0.2.0"},
		{"1.0.0", func(v Version) Version { return v.IncMajor() }, "2.0.0"},
		// Lower counters are untouched, not reset.
		{"1.2.3", func(v Version) Version { return v.IncMajor() }, "2.2.3"},
		{"1.2.3", func(v Version) Version { return v.IncMinor() }, "1.3.3"},
		// Explicit amounts.
		{"1.0.0", func(v Version) Version { return v.IncMajor(3) }, "4.0.0"},
		{"1.2.0", func(v Version) Version { return v.IncPatch(5) }, "1.2.5"},
		// Suffix rides along.
		{"2.0.0-next", func(v Version) Version { return v.IncPatch() }, "2.0.1-next"},
	}

	for _, tc := range cases {
		v, ok := Parse(tc.in)
		if !ok {
			t.Fatalf("Parse(%q) = false; want true", tc.in)
		}

		if got := tc.inc(v).String(); got != tc.want {
			t.Fatalf("inc(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestIncPatch_AbsentPatch(t *testing.T) {
	t.Parallel()

	// Sentinel arithmetic: absent patch is -1, one step lands on 0.
	v, _ := Parse("1.2")

	got := v.IncPatch()
	if !got.HasPatch() {
		t.Fatalf("IncPatch on %q left patch absent", "1.2")
	}

	if s := got.String(); s != "1.2.0" {
		t.Fatalf("IncPatch(%q) = %q; want %q", "1.2", s, "1.2.0")
	}
}

func TestInc_NonNumericCountsAsZero(t *testing.T) {
	t.Parallel()

	// A "v1" major is not a number; stepping it starts from 0 and
	// drops the prefix.
	v, _ := Parse("v1.2.3")
	if got := v.IncMajor().String(); got != "1.2.3" {
		t.Fatalf("IncMajor(v1.2.3) = %q; want %q", got, "1.2.3")
	}

	w, _ := Parse("1.x.3")
	if got := w.IncMinor().String(); got != "1.1.3" {
		t.Fatalf("IncMinor(1.x.3) = %q; want %q", got, "1.1.3")
	}
}

func TestInc_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	v, _ := Parse("1.2.3")
	before := v

	_ = v.IncMajor()
	_ = v.IncMinor(2)
	_ = v.IncPatch()

	if !reflect.DeepEqual(v, before) {
		t.Fatalf("receiver changed: %+v; want %+v", v, before)
	}
}

func TestInc_Chained(t *testing.T) {
	t.Parallel()

	v, _ := Parse("1.0.0")

	got := v.IncMajor().IncMinor().IncPatch().String()
	if got != "2.1.1" {
		t.Fatalf("chained increments = %q; want %q", got, "2.1.1")
	}
}
