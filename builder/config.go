// SPDX-License-Identifier: MIT
// Package: algoshelf/builder
//
// config.go - functional options resolved into an immutable builderConfig.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil RNG).
//     Constructors themselves never panic.
//   • Randomness only flows from WithSeed/WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved, read-only view handed to constructors.
type builderConfig struct {
	rng *rand.Rand // nil unless WithSeed/WithRand
}

// newBuilderConfig applies opts over the defaults (no RNG).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
