// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • rng         = nil      (resolved lazily to a clock-seeded source by randomSource)
//   • gridMargin  = DefaultGridMargin
//   • gridSpacing = DefaultGridSpacing

package builder

import (
	"math/rand"
	"time"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "seed from the clock when needed".
	rng *rand.Rand

	// Grid layout in pixels.
	gridMargin  int
	gridSpacing int
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		gridMargin:  DefaultGridMargin,
		gridSpacing: DefaultGridSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// randomSource returns the configured RNG or a fresh clock-seeded one.
func (c builderConfig) randomSource() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
