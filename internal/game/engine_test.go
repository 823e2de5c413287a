package game

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stgibson/boggle/internal/board"
	"github.com/stgibson/boggle/internal/words"
)

func allA(t *testing.T, n int) board.Grid {
	t.Helper()
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat("A", n)
	}
	g, err := board.Parse(rows...)
	require.NoError(t, err)
	return g
}

func testValidator() *Validator {
	return NewValidator(words.New([]string{"a", "ask", "cat", "cog", "act", "tag", "tat"}))
}

func TestValidateAllA(t *testing.T) {
	t.Parallel()

	v := testValidator()
	g := allA(t, 5)

	tests := []struct {
		word string
		want Verdict
	}{
		{"a", Ok},
		{"A", Ok},
		{" a ", Ok},
		{"aaa", NotWord},
		{"ask", NotOnBoard},
		{"ASK", NotOnBoard},
		{"zebra", NotWord},
	}
	for _, tt := range tests {
		got, err := v.Validate(g, tt.word)
		require.NoError(t, err, tt.word)
		assert.Equal(t, tt.want, got, "Validate(%q)", tt.word)
	}
}

func TestValidateNonASCIIIsNotWord(t *testing.T) {
	t.Parallel()

	v := testValidator()
	g, err := board.Parse("ASK", "XXX", "XXX")
	require.NoError(t, err)

	got, err := v.Validate(g, "ask")
	require.NoError(t, err)
	require.Equal(t, Ok, got)

	for _, word := range []string{"as\u212A", "AS\u212A", "\u212Aat", "a\u0301"} {
		got, err := v.Validate(g, word)
		require.NoError(t, err, word)
		assert.Equal(t, NotWord, got, "Validate(%q)", word)
	}
}

func TestValidateBlankIsInvalidInput(t *testing.T) {
	t.Parallel()

	v := testValidator()
	g := allA(t, 3)
	for _, w := range []string{"", "   ", "\t\n"} {
		_, err := v.Validate(g, w)
		assert.ErrorIs(t, err, ErrInvalidInput, "%q", w)
	}
}

func TestValidateDiagonalAdjacency(t *testing.T) {
	t.Parallel()

	// C and O touch only diagonally; O and G likewise.
	g, err := board.Parse(
		"CXX",
		"XOX",
		"XXG",
	)
	require.NoError(t, err)

	got, err := testValidator().Validate(g, "cog")
	require.NoError(t, err)
	assert.Equal(t, Ok, got)
}

func TestValidateNoCellReuse(t *testing.T) {
	t.Parallel()

	g, err := board.Parse(
		"CA",
		"TX",
	)
	require.NoError(t, err)
	v := testValidator()

	got, _ := v.Validate(g, "cat")
	assert.Equal(t, Ok, got)
	got, _ = v.Validate(g, "act")
	assert.Equal(t, Ok, got)
	// One T on the board; "tat" would have to step on it twice.
	got, _ = v.Validate(g, "tat")
	assert.Equal(t, NotOnBoard, got)
	got, _ = v.Validate(g, "tag")
	assert.Equal(t, NotOnBoard, got)
}

func TestValidateCaseInsensitiveAndIdempotent(t *testing.T) {
	t.Parallel()

	v := testValidator()
	g, err := board.NewGenerator(board.WithSeed(42, 42)).Generate(4)
	require.NoError(t, err)

	for _, w := range []string{"a", "cat", "ask", "aaa"} {
		lower, err := v.Validate(g, w)
		require.NoError(t, err)
		upper, err := v.Validate(g, strings.ToUpper(w))
		require.NoError(t, err)
		assert.Equal(t, lower, upper, w)
		for i := 0; i < 3; i++ {
			again, _ := v.Validate(g, w)
			assert.Equal(t, lower, again, w)
		}
	}
}

func TestValidateConcurrent(t *testing.T) {
	t.Parallel()

	v := testValidator()
	g := allA(t, 4)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := v.Validate(g, "a")
			assert.NoError(t, err)
			assert.Equal(t, Ok, got)
		}()
	}
	wg.Wait()
}

func TestVerdictWireForm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", Ok.String())
	assert.Equal(t, "not-word", NotWord.String())
	assert.Equal(t, "not-on-board", NotOnBoard.String())

	data, err := json.Marshal(map[string]Verdict{"result": NotOnBoard})
	require.NoError(t, err)
	assert.JSONEq(t, `{"result":"not-on-board"}`, string(data))
}

func TestNewGame(t *testing.T) {
	t.Parallel()

	gen := board.NewGenerator(board.WithDistribution(board.Dice))
	g1, err := New(gen, 4)
	require.NoError(t, err)
	g2, err := New(gen, 4)
	require.NoError(t, err)

	assert.NotEqual(t, g1.ID, g2.ID)
	assert.Equal(t, 4, g1.Size)
	assert.Equal(t, "dice", g1.Distribution)
	assert.NoError(t, g1.Board.Validate())
	assert.False(t, g1.CreatedAt.IsZero())

	_, err = New(gen, 0)
	assert.ErrorIs(t, err, board.ErrInvalidSize)
}

func TestGameCheck(t *testing.T) {
	t.Parallel()

	g := &Game{Board: allA(t, 2), Size: 2}
	got, err := g.Check(testValidator(), "A")
	require.NoError(t, err)
	assert.Equal(t, Ok, got)
}
