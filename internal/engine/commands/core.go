// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

// printer returns a print builtin that writes one line per call to w.
func printer(w io.Writer) func(cell.T) (cell.T, error) {
	return func(args cell.T) (cell.T, error) {
		c := arg(args, 0)

		if _, err := fmt.Fprintln(w, common.String(c)); err != nil {
			return nil, fmt.Errorf("print: %w", err)
		}

		return c, nil
	}
}
