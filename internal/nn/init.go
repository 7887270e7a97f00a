package nn

import (
	"math/rand"

	"github.com/born-ml/scalargrad/internal/parallel"
)

// Option configures module construction.
type Option func(*options)

type options struct {
	rng      *rand.Rand
	parallel parallel.Config
}

func newOptions(opts []Option) *options {
	o := &options{parallel: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRand draws initial parameter values from rng instead of the global
// source, making construction reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithParallel sets how MLP.ForwardBatch fans out over inputs.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.parallel = cfg
	}
}

// uniform draws from U(-1, 1).
func (o *options) uniform() float64 {
	if o.rng != nil {
		return o.rng.Float64()*2.0 - 1.0
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.Float64()*2.0 - 1.0
}
