package normalization

import "testing"

func TestParseInputString(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "  Alice@Example.COM ", want: "alice@example.com"},
		{input: "alice", want: "alice"},
		{input: "   ", want: ""},
	}
	for _, tc := range cases {
		if got := ParseInputString(tc.input); got != tc.want {
			t.Fatalf("ParseInputString(%q): want=%q got=%q", tc.input, tc.want, got)
		}
	}
}

func TestParseEnumString(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "easy", want: "EASY"},
		{input: " Medium ", want: "MEDIUM"},
		{input: "HARD", want: "HARD"},
		{input: "", want: ""},
	}
	for _, tc := range cases {
		if got := ParseEnumString(tc.input); got != tc.want {
			t.Fatalf("ParseEnumString(%q): want=%q got=%q", tc.input, tc.want, got)
		}
	}
}
