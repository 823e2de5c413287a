// internal/config/config.go
//
// Typed server configuration read from the environment.
// A .env file, if present, is loaded first (see Load).

package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Board   BoardConfig
	Game    GameConfig
	Words   WordsConfig
	Session SessionConfig
	Daily   DailyConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        `env:"PORT"            env-default:"5175"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN"   env-default:"http://localhost:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"10s"`
	Env            string        `env:"APP_ENV"         env-default:"development"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"` // json | console
}

// BoardConfig holds board generation settings.
type BoardConfig struct {
	Distribution string `env:"BOARD_DISTRIBUTION" env-default:"uniform"` // uniform | dice | frequency
	DefaultSize  int    `env:"BOARD_DEFAULT_SIZE" env-default:"5"`
	MaxSize      int    `env:"BOARD_MAX_SIZE"     env-default:"12"`
}

// GameConfig holds per-guess policy and session lifetime.
type GameConfig struct {
	MinWordLength int           `env:"GAME_MIN_WORD_LENGTH" env-default:"0"`
	TTL           time.Duration `env:"GAME_TTL"             env-default:"2h"`
}

// WordsConfig selects the dictionary source.
type WordsConfig struct {
	File  string `env:"WORDS_FILE"`
	DSN   string `env:"WORDS_DSN"`
	Table string `env:"WORDS_TABLE" env-default:"words"`
}

// SessionConfig holds the signed session cookie settings.
type SessionConfig struct {
	Secret     string `env:"SESSION_SECRET" env-default:"dev_secret_change_me"`
	CookieName string `env:"COOKIE_NAME"    env-default:"boggle_session"`
}

// DailyConfig holds daily board settings.
type DailyConfig struct {
	Salt string `env:"DAILY_SALT" env-default:"local_dev_salt"`
	Size int    `env:"DAILY_SIZE" env-default:"4"`
}

// Production reports whether the server runs with production cookie rules.
func (c *Config) Production() bool {
	return c.Server.Env == "production"
}
