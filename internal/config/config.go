// Package config provides YAML-based configuration loading for termtris.
package config

import (
	"fmt"

	"github.com/vovakirdan/termtris/internal/tetris"
)

// TermtrisConfig contains all configuration for a termtris session.
type TermtrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the field dimensions.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	Gap     int `yaml:"gap"` // Min distance between a spawn anchor and a side wall
}

// TimingConfig defines the frame rate and gravity.
type TimingConfig struct {
	FPS       int `yaml:"fps"`
	FallSpeed int `yaml:"fall_speed"` // Frames between gravity steps
}

// Validate reports the first problem with the configuration.
// Board problems are returned as *tetris.ConfigurationError.
func (c TermtrisConfig) Validate() error {
	if c.Timing.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.Timing.FPS)
	}
	if c.Timing.FallSpeed < 0 {
		return fmt.Errorf("config: fall_speed must not be negative, got %d", c.Timing.FallSpeed)
	}
	return tetris.CheckSpawnable(c.Board.Columns, c.Board.Rows, c.Board.Gap)
}
