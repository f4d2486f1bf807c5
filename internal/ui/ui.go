// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the lisp language.
package ui

import (
	"errors"
	"io"
	"os"

	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
	"github.com/michaelmacinnis/lisp/internal/reader/token"
	"github.com/michaelmacinnis/lisp/internal/system/history"
	"github.com/peterh/liner"
)

const (
	continued = "... "
	prompt    = "> "
)

// Evaluator is the interface for things that want to process parsed expressions.
type Evaluator interface {
	Evaluate(c cell.T) (cell.T, error)
}

// Run launches the UI which sends expressions to the Evaluator and
// prints each result. It returns when stdin is closed.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil {
		println(err.Error())
	}

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			println(err.Error())
		}
	}()

start:
	restart := false

	l := lexer.New("lisp")

	var p *parser.T

	p = parser.New(func(c cell.T) {
		show(e.Evaluate(c))
	}, func() *token.T {
		for {
			t := l.Token()
			if t != nil {
				return t
			}

			s := prompt
			if p.Depth() > 0 {
				s = continued
			}

			line, err := cli.Prompt(s)

			switch {
			case err == nil:
				cli.AppendHistory(line)
			case errors.Is(err, liner.ErrPromptAborted):
				restart = true
				return nil
			default:
				if !errors.Is(err, io.EOF) {
					println(err.Error())
				}

				os.Stdout.Write([]byte("\n"))

				return nil
			}

			l.Scan(line + "\n")
		}
	})

	err := p.Parse()

	if restart {
		goto start
	}

	if err != nil {
		println(err.Error())
		goto start
	}
}

func show(v cell.T, err error) {
	if err != nil {
		println(err.Error())
		return
	}

	os.Stdout.Write([]byte(common.String(v) + "\n"))
}
