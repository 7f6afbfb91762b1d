package username

import "testing"

func TestIsValid(t *testing.T) {
	cases := []struct {
		word   string
		minLen int
		want   bool
	}{
		{"hello", 3, true},
		{"hi", 3, false},
		{"café", 3, false},
		{"abc", 3, true},
		{"ab", 2, true},
		{"", 3, false},
		{"naïve", 3, false},
		{"wolf42", 3, true},
	}
	for _, tc := range cases {
		if got := IsValid(tc.word, tc.minLen); got != tc.want {
			t.Fatalf("IsValid(%q, %d) = %v, want %v", tc.word, tc.minLen, got, tc.want)
		}
	}
}

func TestIsValidPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if !IsValid("stone", 3) {
			t.Fatalf("expected stone to stay valid on call %d", i)
		}
		if IsValid("øre", 3) {
			t.Fatalf("expected øre to stay invalid on call %d", i)
		}
	}
}
