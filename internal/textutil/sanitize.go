package textutil

import "strings"

// segmentReplacer replaces filesystem-unsafe characters with safe alternatives.
var segmentReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
	"\x00", "",
)

// SanitizeSegment makes a label or asset code safe to use as a single path
// segment. Slashes, backslashes, colons, and asterisks become dashes; other
// unsafe characters are removed. "." and ".." collapse to the empty string.
func SanitizeSegment(name string) string {
	name = strings.TrimSpace(segmentReplacer.Replace(strings.TrimSpace(name)))
	if name == "." || name == ".." {
		return ""
	}
	return name
}
