package username

import (
	"math/rand"
	"strings"
	"testing"
)

func TestFormatCaseStyles(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	cases := []struct {
		word  string
		style CaseStyle
		want  string
	}{
		{"wOlF", CaseLower, "wolf"},
		{"wOlF", CaseUpper, "WOLF"},
		{"wOlF", CaseCapitalize, "Wolf"},
		{"stone", CaseUpper, "STONE"},
	}
	for _, tc := range cases {
		got := Format(rnd, tc.word, Style{Case: tc.style, Number: NumberNone})
		if got != tc.want {
			t.Fatalf("Format(%q, %v) = %q, want %q", tc.word, tc.style, got, tc.want)
		}
	}
}

func TestFormatUppercaseExact(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for _, word := range []string{"cat", "Fjord", "zebra"} {
		got := Format(rnd, word, Style{Case: CaseUpper, Number: NumberNone})
		if got != strings.ToUpper(word) {
			t.Fatalf("expected exactly %q, got %q", strings.ToUpper(word), got)
		}
	}
}

func TestFormatSuffixWidthAndRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	styles := []struct {
		number NumberStyle
		width  int
		max    int
	}{
		{Number1Digit, 1, 9},
		{Number2Digit, 2, 99},
		{Number3Digit, 3, 999},
	}
	for _, st := range styles {
		for i := 0; i < 10000; i++ {
			got := Format(rnd, "word", Style{Case: CaseLower, Number: st.number})
			suffix := got[len("word"):]
			if len(suffix) != st.width {
				t.Fatalf("%v: suffix %q has width %d, want %d", st.number, suffix, len(suffix), st.width)
			}
			value := 0
			for _, ch := range suffix {
				if ch < '0' || ch > '9' {
					t.Fatalf("%v: suffix %q contains non-digit", st.number, suffix)
				}
				value = value*10 + int(ch-'0')
			}
			if value < 0 || value > st.max {
				t.Fatalf("%v: suffix value %d out of range [0, %d]", st.number, value, st.max)
			}
		}
	}
}

func TestFormatNoneAppendsNothing(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	if got := Format(rnd, "plain", Style{Case: CaseLower, Number: NumberNone}); got != "plain" {
		t.Fatalf("expected untouched word, got %q", got)
	}
}

func TestFormatDeterministicWithSeed(t *testing.T) {
	style := Style{Case: CaseCapitalize, Number: Number3Digit}
	first := Format(rand.New(rand.NewSource(42)), "ember", style)
	second := Format(rand.New(rand.NewSource(42)), "ember", style)
	if first != second {
		t.Fatalf("same seed produced %q and %q", first, second)
	}
}

func TestParseStyles(t *testing.T) {
	if _, err := ParseCaseStyle("capitalise"); err == nil {
		t.Fatalf("expected error for unknown case style")
	}
	if _, err := ParseNumberStyle("4digit"); err == nil {
		t.Fatalf("expected error for unknown number style")
	}
	for _, value := range []string{"lowercase", "uppercase", "capitalize"} {
		style, err := ParseCaseStyle(value)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", value, err)
		}
		if style.String() != value {
			t.Fatalf("round trip failed: %q -> %q", value, style.String())
		}
	}
	for _, value := range []string{"none", "1digit", "2digit", "3digit"} {
		style, err := ParseNumberStyle(value)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", value, err)
		}
		if style.String() != value {
			t.Fatalf("round trip failed: %q -> %q", value, style.String())
		}
	}
}
