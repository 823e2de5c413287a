// internal/board/path.go
//
// Path search: can a word be traced on the board?
//
// A path is a sequence of distinct cells, each adjacent (8 directions) to the
// previous one, whose letters spell the word. The search is a depth-first
// backtracking walk that stops at the first complete path. Sub-results are
// not memoized because they depend on which cells are already used.

package board

// neighbours lists adjacency offsets in fixed row-then-column order.
var neighbours = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// ExistsPath reports whether word can be traced on g without reusing a cell.
// Matching is ASCII case-insensitive. An empty word is never on the board.
func ExistsPath(g Grid, word string) bool {
	_, ok := FindPath(g, word)
	return ok
}

// FindPath returns the first path spelling word, in search order.
// g is not modified.
func FindPath(g Grid, word string) ([]Cell, bool) {
	if len(word) == 0 || len(g) == 0 {
		return nil, false
	}
	target := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		target[i] = upper(word[i])
	}

	s := &search{
		grid:    g,
		word:    target,
		visited: make([][]bool, len(g)),
		path:    make([]Cell, 0, len(word)),
	}
	for r := range g {
		s.visited[r] = make([]bool, len(g[r]))
	}

	for r := range g {
		for c := range g[r] {
			if s.walk(Cell{r, c}, 0) {
				return s.path, true
			}
		}
	}
	return nil, false
}

// search holds the state of one FindPath call.
type search struct {
	grid    Grid
	word    []byte
	visited [][]bool
	path    []Cell
}

// walk tries to match word[depth:] starting at cell.
func (s *search) walk(cell Cell, depth int) bool {
	if !s.grid.InBounds(cell) || s.visited[cell.Row][cell.Col] {
		return false
	}
	if upper(s.grid.At(cell)) != s.word[depth] {
		return false
	}

	s.visited[cell.Row][cell.Col] = true
	s.path = append(s.path, cell)
	if depth == len(s.word)-1 {
		return true
	}
	for _, d := range neighbours {
		if s.walk(Cell{cell.Row + d.Row, cell.Col + d.Col}, depth+1) {
			return true
		}
	}
	s.path = s.path[:len(s.path)-1]
	s.visited[cell.Row][cell.Col] = false
	return false
}

// upper folds an ASCII lowercase letter; other bytes pass through.
func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
