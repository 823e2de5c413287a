// internal/board/grid.go
//
// Core board types for the Boggle engine.
// Defines:
//   - Grid: an N×N matrix of uppercase letters (row-major, 0-indexed).
//   - Cell: a (row, col) coordinate used by the path search.
//
// A Grid is handed to its caller and never retained by this package.
// Its JSON form is an array of rows, each row an array of one-letter strings.

package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGrid is returned when a grid is not square or holds a cell that
// is not a single A–Z letter.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid is a square letter board. Each cell holds one uppercase ASCII letter.
type Grid [][]byte

// Cell is a board coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Size returns N for an N×N grid.
func (g Grid) Size() int { return len(g) }

// At returns the letter at c. The caller guarantees c is in bounds.
func (g Grid) At(c Cell) byte { return g[c.Row][c.Col] }

// InBounds reports whether c lies on the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < len(g) && c.Col >= 0 && c.Col < len(g[c.Row])
}

// Validate checks that g is non-empty, square and holds only A–Z letters.
func (g Grid) Validate() error {
	n := len(g)
	if n == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidGrid)
	}
	for r, row := range g {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, r, len(row), n)
		}
		for c, b := range row {
			if b < 'A' || b > 'Z' {
				return fmt.Errorf("%w: cell (%d,%d) is %q", ErrInvalidGrid, r, c, b)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]byte(nil), row...)
	}
	return out
}

// String renders one row per line.
func (g Grid) String() string {
	var b strings.Builder
	for i, row := range g {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(row)
	}
	return b.String()
}

// Parse builds a grid from text rows, one letter per cell.
// Letters are upper-cased; the result is validated.
func Parse(rows ...string) (Grid, error) {
	g := make(Grid, len(rows))
	for i, r := range rows {
		g[i] = []byte(strings.ToUpper(r))
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// MarshalJSON encodes the grid as [][]string.
func (g Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]string, len(g))
	for i, row := range g {
		rows[i] = make([]string, len(row))
		for j, b := range row {
			rows[i][j] = string(b)
		}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes [][]string and validates the result.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	out := make(Grid, len(rows))
	for i, row := range rows {
		out[i] = make([]byte, len(row))
		for j, s := range row {
			if len(s) != 1 {
				return fmt.Errorf("%w: cell (%d,%d) is %q", ErrInvalidGrid, i, j, s)
			}
			out[i][j] = strings.ToUpper(s)[0]
		}
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*g = out
	return nil
}
