// internal/game/engine.go
//
// Core game engine for Boggle.
// Responsibilities:
//   - Create new games from a board generator.
//   - Validate guesses: dictionary membership first, then a path on the board.
//
// Notes:
//   - The dictionary is any Lexicon; in production it is the shared
//     *words.Dictionary loaded once at startup.
//   - A blank guess is an input error, not a verdict.
//   - No minimum word length is applied here; callers layer that policy.
package game

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/stgibson/boggle/internal/board"
)

// ErrInvalidInput is returned for an absent or blank guess.
var ErrInvalidInput = errors.New("invalid input")

// Lexicon answers case-insensitive word membership.
type Lexicon interface {
	Contains(word string) bool
}

// Validator turns (board, word) into a Verdict. It holds no per-call state
// and is safe for concurrent use.
type Validator struct {
	dict Lexicon
}

// NewValidator constructs a Validator over dict.
func NewValidator(dict Lexicon) *Validator {
	return &Validator{dict: dict}
}

// Validate checks word against the dictionary and then the board.
// Returns ErrInvalidInput when word is empty after trimming.
func (v *Validator) Validate(g board.Grid, word string) (Verdict, error) {
	word, ok := lowerASCII(strings.TrimSpace(word))
	if word == "" {
		return NotWord, ErrInvalidInput
	}
	if !ok || !v.dict.Contains(word) {
		return NotWord, nil
	}
	if !board.ExistsPath(g, word) {
		return NotOnBoard, nil
	}
	return Ok, nil
}

// lowerASCII folds A–Z to a–z. ok is false if s holds any non-ASCII byte.
func lowerASCII(s string) (string, bool) {
	b := []byte(s)
	for i, c := range b {
		switch {
		case c >= utf8.RuneSelf:
			return s, false
		case c >= 'A' && c <= 'Z':
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b), true
}

// New generates a size×size board and wraps it in a Game.
func New(gen *board.Generator, size int) (*Game, error) {
	grid, err := gen.Generate(size)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:           uuid.NewString(),
		Board:        grid,
		Size:         size,
		Distribution: gen.Distribution().String(),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Check validates a guess against this game's board.
func (g *Game) Check(v *Validator, word string) (Verdict, error) {
	return v.Validate(g.Board, word)
}
