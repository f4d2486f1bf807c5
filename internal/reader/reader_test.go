package reader

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/str"
)

func TestParse(t *testing.T) {
	c, err := Parse("test", `(first (1 2 3))`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := list.New(num.New("1"), num.New("2"), num.New("3"))
	if !cell.Equal(pair.Cadr(c), expected) {
		t.Fatalf("Expected %v; got %v", expected, pair.Cadr(c))
	}
}

func TestParseAtom(t *testing.T) {
	c, err := Parse("test", ` "lisp" `)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !cell.Equal(c, str.New("lisp")) {
		t.Fatalf(`Expected "lisp"; got %v`, c)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"   \n",
		"(lambda (x)",
		"(a) (b)",
		"1 2",
		")",
		`("unterminated)`,
	} {
		_, err := Parse("test", s)
		if !errors.Is(err, errsys.ErrMalformedSyntax) {
			t.Fatalf("Expected %q to be malformed; got %v", s, err)
		}
	}
}

func TestReadAll(t *testing.T) {
	cs, err := ReadAll("test", "(a b)\n42\n\"s\"\n()")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(cs) != 4 {
		t.Fatalf("Expected 4 expressions; got %d", len(cs))
	}

	if cs[3] != pair.Null {
		t.Fatalf("Expected the empty list; got %v", cs[3])
	}
}
