package chat

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares chat input for matching: surrounding and repeated
// whitespace is collapsed, the text is case folded and put in NFC.
func Normalize(input string) string {
	collapsed := strings.Join(strings.Fields(input), " ")
	// A Caser keeps state between calls, so each call gets its own.
	return norm.NFC.String(cases.Fold().String(collapsed))
}
