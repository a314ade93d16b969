// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()

	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultGridMargin, cfg.gridMargin)
	assert.Equal(t, DefaultGridSpacing, cfg.gridSpacing)
	assert.NotNil(t, cfg.randomSource(), "clock-seeded fallback")
}

func TestNewBuilderConfig_LastOptionWins(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithSeed(5), WithRand(r), WithGridSpacing(10), WithGridSpacing(30))

	assert.Same(t, r, cfg.rng)
	assert.Same(t, r, cfg.randomSource())
	assert.Equal(t, 30, cfg.gridSpacing)
}

func TestRandomPairs_DistinctUnordered(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	pairs := randomPairs(rng, 6, 15) // complete K6

	seen := make(map[[2]int]bool)
	for _, p := range pairs {
		assert.NotEqual(t, p[0], p[1])
		lo, hi := p[0], p[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		assert.False(t, seen[[2]int{lo, hi}], "pair %v drawn twice", p)
		seen[[2]int{lo, hi}] = true
	}
	assert.Len(t, seen, 15)
}
