// internal/game/types.go
//
// Core type definitions for the Boggle game engine.
// Defines:
//   - Verdict: the three-way result of validating a guess.
//   - Game: one board handed out to a player.

package game

import (
	"encoding/json"
	"time"

	"github.com/stgibson/boggle/internal/board"
)

// Verdict is the result of validating a guess against a board.
// Possible values:
//   - Ok:         a dictionary word that can be traced on the board.
//   - NotWord:    not in the dictionary.
//   - NotOnBoard: a dictionary word with no path on the board.
type Verdict int

const (
	Ok Verdict = iota
	NotWord
	NotOnBoard
)

// String returns the wire form sent to clients.
func (v Verdict) String() string {
	switch v {
	case Ok:
		return "ok"
	case NotWord:
		return "not-word"
	case NotOnBoard:
		return "not-on-board"
	}
	return "unknown"
}

// MarshalJSON encodes the verdict as its wire string.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// Game holds one generated board.
type Game struct {
	ID           string     // Unique game identifier (uuid).
	Board        board.Grid // Letters, never modified after creation.
	Size         int        // Board dimension N.
	Distribution string     // Letter distribution the board was drawn from.
	Daily        string     // Date key for a daily board, empty otherwise.
	CreatedAt    time.Time  // UTC creation time.
}
