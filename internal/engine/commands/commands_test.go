package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/interface/callable"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/str"
)

func call(t *testing.T, lib map[string]cell.T, name string, args ...cell.T) (cell.T, error) {
	t.Helper()

	f, ok := lib[name].(callable.T)
	if !ok {
		t.Fatalf("Expected %s to be callable", name)
	}

	return f.Call(list.New(args...))
}

func TestLibrary(t *testing.T) {
	lib := Library(&bytes.Buffer{})

	for _, name := range []string{"first", "print", "rest"} {
		if !callable.Is(lib[name]) {
			t.Fatalf("Expected %s in the library", name)
		}
	}

	if len(lib) != 3 {
		t.Fatalf("Expected exactly 3 builtins; got %d", len(lib))
	}
}

func TestFirst(t *testing.T) {
	lib := Library(&bytes.Buffer{})

	v, err := call(t, lib, "first", list.New(num.New("1"), num.New("2")))
	if err != nil || !cell.Equal(v, num.New("1")) {
		t.Fatalf("Expected 1; got %v, %v", v, err)
	}

	// Extra arguments are ignored.
	v, err = call(t, lib, "first", str.New("xyz"), num.New("9"))
	if err != nil || !cell.Equal(v, str.New("x")) {
		t.Fatalf(`Expected "x"; got %v, %v`, v, err)
	}

	_, err = call(t, lib, "first", pair.Null)
	if !errors.Is(err, errsys.ErrIndexOutOfRange) {
		t.Fatalf("Expected index out of range; got %v", err)
	}
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer

	lib := Library(&out)

	for _, tc := range []struct {
		arg      cell.T
		expected string
	}{
		{str.New("lisp"), "lisp\n"},
		{num.New("3.5"), "7/2\n"},
		{list.New(str.New("a"), num.New("1")), "(\"a\" 1)\n"},
		{nil, "(|undefined|)\n"},
		{lib["first"], "(|builtin first|)\n"},
	} {
		out.Reset()

		v, err := call(t, lib, "print", tc.arg)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !cell.Equal(v, tc.arg) {
			t.Fatalf("Expected print to return %v; got %v", tc.arg, v)
		}

		if out.String() != tc.expected {
			t.Fatalf("Expected %q; got %q", tc.expected, out.String())
		}
	}
}

func TestRest(t *testing.T) {
	lib := Library(&bytes.Buffer{})

	for _, tc := range []struct {
		arg      cell.T
		expected cell.T
	}{
		{list.New(num.New("1"), num.New("2")), list.New(num.New("2"))},
		{list.New(num.New("1")), pair.Null},
		{pair.Null, pair.Null},
		{str.New("ab"), str.New("b")},
		{str.New(""), str.New("")},
	} {
		v, err := call(t, lib, "rest", tc.arg)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !cell.Equal(v, tc.expected) {
			t.Fatalf("Expected %v; got %v", tc.expected, v)
		}
	}

	_, err := call(t, lib, "rest", num.New("1"))
	if !errors.Is(err, errsys.ErrWrongType) {
		t.Fatalf("Expected wrong type; got %v", err)
	}
}
