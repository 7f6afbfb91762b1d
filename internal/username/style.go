package username

import "fmt"

// CaseStyle selects the case transform applied to a word.
type CaseStyle int

// Supported case transforms.
const (
	CaseLower CaseStyle = iota
	CaseUpper
	CaseCapitalize
)

// NumberStyle selects the numeric suffix appended to a word.
type NumberStyle int

// Supported numeric suffixes.
const (
	NumberNone NumberStyle = iota
	Number1Digit
	Number2Digit
	Number3Digit
)

// Style bundles the formatting settings for one generation run. It is a
// value, fixed for the duration of a batch.
type Style struct {
	Case   CaseStyle
	Number NumberStyle
	MinLen int
}

// ParseCaseStyle converts a config/flag value into a CaseStyle. Unknown
// values are rejected rather than passed through.
func ParseCaseStyle(value string) (CaseStyle, error) {
	switch value {
	case "lowercase":
		return CaseLower, nil
	case "uppercase":
		return CaseUpper, nil
	case "capitalize":
		return CaseCapitalize, nil
	default:
		return 0, fmt.Errorf("unknown case style %q (available: lowercase, uppercase, capitalize)", value)
	}
}

// ParseNumberStyle converts a config/flag value into a NumberStyle.
func ParseNumberStyle(value string) (NumberStyle, error) {
	switch value {
	case "none":
		return NumberNone, nil
	case "1digit":
		return Number1Digit, nil
	case "2digit":
		return Number2Digit, nil
	case "3digit":
		return Number3Digit, nil
	default:
		return 0, fmt.Errorf("unknown number style %q (available: none, 1digit, 2digit, 3digit)", value)
	}
}

// String returns the canonical config value for the case style.
func (c CaseStyle) String() string {
	switch c {
	case CaseUpper:
		return "uppercase"
	case CaseCapitalize:
		return "capitalize"
	default:
		return "lowercase"
	}
}

// String returns the canonical config value for the number style.
func (n NumberStyle) String() string {
	switch n {
	case Number1Digit:
		return "1digit"
	case Number2Digit:
		return "2digit"
	case Number3Digit:
		return "3digit"
	default:
		return "none"
	}
}
