package chat

import "strings"

// The three substitutions touch disjoint characters, so a single replacer
// applies them in one pass with the same result as any ordering.
var sanitizer = strings.NewReplacer(
	"*", "",
	"|", "",
	"\n", "<br>",
)

// Sanitize normalizes raw model output for display: emphasis asterisks and
// table bars are stripped, plain-text line breaks become <br> markers.
func Sanitize(raw string) string {
	return sanitizer.Replace(raw)
}
