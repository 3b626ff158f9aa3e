package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Value canonicalizes a filter-dimension value (league, age group,
// position) for comparison: case folded, surrounding and repeated
// whitespace removed. "U12  North " and "u12 north" compare equal,
// while "U1" and "U12" never do.
func Value(s string) string {
	return lower.String(strings.Join(strings.Fields(s), " "))
}

// Values canonicalizes a filter list, dropping entries that normalize
// to the empty string.
func Values(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if v := Value(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
