// Package language defines the supported language table.
package language

import (
	"fmt"
	"sort"
	"strings"
)

// names maps a language code to its display name. Codes follow the
// three-letter convention of the Open Multilingual Wordnet.
var names = map[string]string{
	"eng": "English",
	"spa": "Spanish",
	"fra": "French",
	"ita": "Italian",
	"por": "Portuguese",
	"nld": "Dutch",
	"pol": "Polish",
	"swe": "Swedish",
	"fin": "Finnish",
	"nno": "Norwegian Nynorsk",
	"nob": "Norwegian Bokmål",
	"ron": "Romanian",
	"slk": "Slovak",
	"slv": "Slovenian",
	"zsm": "Malay",
	"eus": "Basque",
	"cat": "Catalan",
	"dan": "Danish",
	"lit": "Lithuanian",
}

// Name returns the display name for a code, or the code itself when unknown.
func Name(code string) string {
	if name, ok := names[code]; ok {
		return name
	}
	return code
}

// Supported reports whether the code exists in the language table.
func Supported(code string) bool {
	_, ok := names[code]
	return ok
}

// Codes returns all supported language codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Validate checks that every code is supported. It is intended to run at
// startup so configuration mistakes fail before any generation happens.
func Validate(codes []string) error {
	if len(codes) == 0 {
		return fmt.Errorf("no languages configured")
	}
	var unknown []string
	for _, code := range codes {
		if !Supported(code) {
			unknown = append(unknown, code)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown language code(s): %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(Codes(), ", "))
	}
	return nil
}
