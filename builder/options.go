// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs; the
//     constructors themselves only ever return errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for NewRandomGraph.
// Panics on nil; prefer WithSeed for reproducible runs.
// The RNG is not safe for concurrent use; do not share it between goroutines
// that build graphs at the same time.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGridMargin sets the offset of the first grid row and column.
// Panics if px < 0.
func WithGridMargin(px int) BuilderOption {
	if px < 0 {
		panic("builder: WithGridMargin(px<0)")
	}
	return func(c *builderConfig) {
		c.gridMargin = px
	}
}

// WithGridSpacing sets the distance between neighboring grid vertices.
// Panics if px <= 0.
func WithGridSpacing(px int) BuilderOption {
	if px <= 0 {
		panic("builder: WithGridSpacing(px<=0)")
	}
	return func(c *builderConfig) {
		c.gridSpacing = px
	}
}
