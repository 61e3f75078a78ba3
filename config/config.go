/*
File    : go-lox/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config holds the interpreter's presentation settings, read from
// GOLOX_* environment variables. Only the outer surfaces (REPL prompt,
// history, coloring) are configurable; the language semantics take no
// configuration at all.
package config

import (
	"github.com/caarlos0/env/v6"
)

// Config captures the environment-driven settings of the interpreter.
//
// Fields:
//   - Prompt: The REPL prompt string
//   - HistoryFile: Where the REPL persists readline history; empty
//     disables persistence
//   - NoColor: Disables colored terminal output in the REPL and error
//     reporting (useful for pipes and dumb terminals)
type Config struct {
	Prompt      string `env:"GOLOX_PROMPT" envDefault:"lox >>> "`
	HistoryFile string `env:"GOLOX_HISTORY" envDefault:""`
	NoColor     bool   `env:"GOLOX_NO_COLOR" envDefault:"false"`
}

// Load reads the configuration from the process environment, applying
// defaults for unset variables.
//
// Returns:
//   - *Config: The populated configuration
//   - error: Parse failures (e.g. a non-boolean GOLOX_NO_COLOR)
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
