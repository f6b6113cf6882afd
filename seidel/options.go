package seidel

import (
	"math/rand"
	"time"
)

// Options control how a Solver runs. The zero value is not useful; start from
// DefaultOptions and apply Option functions.
type Options struct {
	// Seed for the constraint permutation. Only used when Seeded is true.
	Seed   int64
	Seeded bool
	// Source for the permutation. Takes precedence over Seed. A *rand.Rand is not
	// safe for concurrent use, so don't share one between concurrent solves.
	Rand *rand.Rand
	// Half-width of the artificial bounding box, in the normalized frame.
	Bound float64
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{Bound: DefaultBound}
}

// Use a fixed seed, so that the same input is always processed in the same order.
// Handy for debugging and for reproducible tests; results don't depend on it.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// Override DefaultBound. A bound too small for the data clips genuinely unbounded
// problems into finite optima on the box.
func WithBound(bound float64) Option {
	return func(o *Options) {
		o.Bound = bound
	}
}

func (o Options) validate() {
	if !(o.Bound > 0) || !isFinite(o.Bound) {
		fatalWrapf(ErrBadBound, "bound %g", o.Bound)
	}
}

// The source used for one solve. Without a seed or a caller supplied source, each
// call gets a fresh time based seed, so an adversary can't precompute a bad order.
func (o Options) rng() *rand.Rand {
	switch {
	case o.Rand != nil:
		return o.Rand
	case o.Seeded:
		return rand.New(rand.NewSource(o.Seed))
	default:
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}
