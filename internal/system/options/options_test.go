package options

import (
	"testing"

	"github.com/docopt/docopt-go"
)

func check(t *testing.T, argv []string, terminal bool, cmd string, repl bool) {
	t.Helper()

	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	if err := parse(p, argv, terminal); err != nil {
		t.Fatalf("%v: unexpected error: %v", argv, err)
	}

	if Command() != cmd {
		t.Fatalf("%v: expected command %q; got %q", argv, cmd, Command())
	}

	if Interactive() != repl {
		t.Fatalf("%v: expected interactive %v; got %v", argv, repl, Interactive())
	}
}

func TestCommand(t *testing.T) {
	check(t, []string{"-c", "(first (1 2 3))"}, true, "(first (1 2 3))", false)
}

func TestInvertInteractive(t *testing.T) {
	check(t, []string{"-i"}, true, "", false)
	check(t, []string{"-i"}, false, "", true)
}

func TestStdin(t *testing.T) {
	check(t, []string{"-s"}, true, "", false)
}

func TestTerminal(t *testing.T) {
	check(t, []string{}, true, "", true)
	check(t, []string{}, false, "", false)
}

func TestUnknownOption(t *testing.T) {
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	if err := parse(p, []string{"--bogus"}, false); err == nil {
		t.Fatalf("expected an error for an unknown option")
	}
}

func TestVersion(t *testing.T) {
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}

	if err := parse(p, []string{"-v"}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !Version() {
		t.Fatalf("expected version to be requested")
	}
}
