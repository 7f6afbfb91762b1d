package username

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

// Format applies the case transform and numeric suffix to a word. The
// suffix digits come from rnd; one uniform draw per call.
func Format(rnd *rand.Rand, word string, style Style) string {
	switch style.Case {
	case CaseLower:
		word = strings.ToLower(word)
	case CaseUpper:
		word = strings.ToUpper(word)
	case CaseCapitalize:
		word = capitalize(word)
	}

	switch style.Number {
	case Number1Digit:
		word += fmt.Sprintf("%d", rnd.Intn(10))
	case Number2Digit:
		word += fmt.Sprintf("%02d", rnd.Intn(100))
	case Number3Digit:
		word += fmt.Sprintf("%03d", rnd.Intn(1000))
	}
	return word
}

// capitalize uppercases the first rune and lowercases the remainder.
func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
