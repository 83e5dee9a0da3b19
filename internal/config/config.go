// Package config provides configuration types and helpers for logsift.
package config

import (
	"github.com/mlindgren/logsift/internal/mine"
)

// Config holds the application-wide configuration.
type Config struct {
	Format  string      `mapstructure:"format"`
	Verbose bool        `mapstructure:"verbose"`
	Miner   MinerConfig `mapstructure:"miner"`
}

// MinerConfig holds the template mining options as they appear in the
// config file and environment.
type MinerConfig struct {
	// Depth is the number of token levels in the parse tree below the
	// token-count level.
	Depth int `mapstructure:"depth"`

	// SimilarityThreshold is the minimum score, in [0,1], for a line to
	// join an existing template.
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`

	// MaxChildren caps the branches per tree node before new tokens fall
	// into the generic wildcard branch.
	MaxChildren int `mapstructure:"max_children"`

	// Delimiters are extra split characters beyond whitespace.
	Delimiters string `mapstructure:"delimiters"`

	// Rules override the built-in normalization substitutions when set.
	Rules []mine.Rule `mapstructure:"normalization_rules"`
}

// Build converts the file/env representation into a mine.Config.
// Validation happens in mine.New, not here.
func (c MinerConfig) Build() mine.Config {
	rules := c.Rules
	if rules == nil {
		rules = mine.DefaultRules()
	}
	return mine.Config{
		Depth:               c.Depth,
		SimilarityThreshold: c.SimilarityThreshold,
		MaxChildren:         c.MaxChildren,
		Rules:               rules,
		Delimiters:          c.Delimiters,
	}
}
