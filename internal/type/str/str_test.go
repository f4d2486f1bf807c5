package str

import (
	"testing"
)

func TestLiteral(t *testing.T) {
	for _, tc := range []struct {
		s        string
		expected string
	}{
		{"lisp", `"lisp"`},
		{"", `""`},
		{`C:\path`, `"C:\path"`},
		{`a\nb`, `"a\nb"`},
		{`say"hi"`, `"say"hi""`},
	} {
		if l := To(New(tc.s)).Literal(); l != tc.expected {
			t.Fatalf("Expected %s; got %s", tc.expected, l)
		}
	}
}

func TestString(t *testing.T) {
	if s := To(New(`a\x20b`)).String(); s != `a\x20b` {
		t.Fatalf("Expected the raw text; got %s", s)
	}
}
