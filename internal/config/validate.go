package config

import (
	"fmt"

	"github.com/stgibson/boggle/internal/board"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if _, err := board.ParseDistribution(c.Board.Distribution); err != nil {
		return fmt.Errorf("board.distribution: %w", err)
	}
	if c.Board.MaxSize < 1 {
		return fmt.Errorf("board.max_size must be >= 1 (got %d)", c.Board.MaxSize)
	}
	if c.Board.DefaultSize < 1 || c.Board.DefaultSize > c.Board.MaxSize {
		return fmt.Errorf("board.default_size must be in [1, %d] (got %d)", c.Board.MaxSize, c.Board.DefaultSize)
	}
	if c.Daily.Size < 1 || c.Daily.Size > c.Board.MaxSize {
		return fmt.Errorf("daily.size must be in [1, %d] (got %d)", c.Board.MaxSize, c.Daily.Size)
	}
	if c.Game.MinWordLength < 0 {
		return fmt.Errorf("game.min_word_length must be >= 0 (got %d)", c.Game.MinWordLength)
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("session.secret must be set")
	}
	if c.Production() && c.Session.Secret == "dev_secret_change_me" {
		return fmt.Errorf("session.secret must be changed in production")
	}
	return nil
}
