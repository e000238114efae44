// Package fallback implements the deterministic, rule-based extractors used
// when the LLM path fails. Both extractors are total over any string input:
// a rule that does not match leaves its field at the default, and nothing in
// this package returns an error.
//
// Rules are evaluated in a fixed, documented order and the first match wins.
// The order is load-bearing; do not reorder.
package fallback

import (
	"strings"
	"unicode"
)

// titleCase capitalizes the first letter of every word, lowering the rest,
// matching how the extracted spans are presented ("ravi kumar" -> "Ravi Kumar").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
