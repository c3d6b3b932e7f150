// Package words defines the four-letter word format shared by the loader
// and the guess prompt.
package words

import (
	"fmt"
	"regexp"
)

// Length is the number of letters in a valid word.
const Length = 4

var pattern = regexp.MustCompile(fmt.Sprintf(`^[a-z]{%d}$`, Length))

// Valid reports whether s is exactly four lowercase ASCII letters.
// Nothing is trimmed or case-folded.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
