package text

import "strings"

// Normalize produces the canonical comparison form of a free-text field:
// whitespace and newline runs collapsed to single spaces, leading/trailing
// whitespace trimmed, lowercased. An empty or all-whitespace input yields "".
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
