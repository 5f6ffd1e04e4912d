package passgen

import (
	"strings"
	"unicode"
)

// substitutions maps uppercase letters and digits to look-alike characters.
// The mapping is one-way: 7 and L both end up near L/1, so it is not reversible.
var substitutions = map[rune]rune{
	'0': 'O',
	'1': 'L',
	'2': 'Z',
	'3': 'E',
	'4': 'A',
	'5': 'S',
	'6': 'B',
	'7': 'L',
	'8': 'B',
	'9': 'G',
	'A': '4',
	'B': '8',
	'C': 'U',
	'D': '0',
	'E': '3',
	'G': '6',
	'I': '1',
	'L': '1',
	'O': '0',
	'S': '5',
	'Z': '2',
}

// SubstituteChar returns the look-alike replacement for r.
// Lookup is case-insensitive; characters without a mapping are returned unchanged.
func SubstituteChar(r rune) rune {
	if sub, ok := substitutions[unicode.ToUpper(r)]; ok {
		return sub
	}
	return r
}

// SubstituteWord applies SubstituteChar to every character of s.
func SubstituteWord(s string) string {
	return strings.Map(SubstituteChar, s)
}
