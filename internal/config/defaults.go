package config

import (
	_ "embed"
)

//go:embed defaults/termtris.yaml
var defaultTermtrisYAML []byte

// DefaultTermtrisConfig returns the hardcoded termtris configuration.
func DefaultTermtrisConfig() TermtrisConfig {
	return TermtrisConfig{
		Board: BoardConfig{
			Columns: 25,
			Rows:    25,
			Gap:     4,
		},
		Timing: TimingConfig{
			FPS:       60,
			FallSpeed: 30, // One step every half second at 60fps
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTermtrisYAML
}
