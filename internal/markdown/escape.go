package markdown

import "strings"

var escapeReplacer = strings.NewReplacer(
	`\n`, "\n",
	`\t`, "\t",
	`\"`, `"`,
	`\'`, `'`,
)

// UnescapeSuggestion turns literal backslash escapes left over from a
// serialization round trip into the characters they stand for. The input
// is scanned once, left to right, so produced characters are never
// re-examined.
func UnescapeSuggestion(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	return escapeReplacer.Replace(s)
}
