/*
Package semver represents dotted version identifiers as structured,
immutable values: parse a string into components, format components back
to a string, and step the major/minor/patch counters.

The package deliberately stops short of the full SemVer specification:
there is no precedence ordering, no range syntax, and no comparison.
Segments are kept as text, so shapes like "v1.2.3" or a non-numeric
patch survive a parse/format round trip unchanged.

Parsing notes:
  - Major and minor are required; "1" and "" fail to parse.
  - A leading "v"/"V" is accepted on major; any other leading letter is
    rejected ("v0.0.0" parses, "A1.2.3" does not). Minor, patch, and
    suffix are not validated.
  - The third segment splits once on its first dash: "2.0.0-next"
    stores patch "0" and suffix "next".

Counter notes:
  - IncMajor / IncMinor / IncPatch return a new Version and never reset
    the lower components, unlike conventional SemVer release bumps.
  - The numeric accessors return NoNumber (-1) for absent or
    non-numeric fields; incrementing an absent patch therefore lands
    on 0.

Usage example:

	v, ok := semver.Parse("v2.0.0-next")
	if !ok {
		// not a version
	}

	fmt.Println(v.String())            // v2.0.0-next
	fmt.Println(v.Suffix)              // next
	fmt.Println(v.IncMinor().String()) // v2.1.0-next
	fmt.Println(v.JSON())              // {"major":"v2","minor":"0","patch":"0","suffix":"next"}
*/
package semver
