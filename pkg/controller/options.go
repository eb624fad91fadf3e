package controller

import (
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-formctl/pkg/collect"
	"github.com/goliatone/go-formctl/pkg/validation"
)

// DefaultDelay is the simulated submission latency.
const DefaultDelay = time.Second

// FailureMessage is shown when any sink fails.
const FailureMessage = "Ocorreu um erro ao enviar o formulário. Por favor, tente novamente."

// SuccessAnchor is the scroll target passed to View.ScrollTo once the
// success banner is shown.
const SuccessAnchor = "successMessage"

// Option configures a Controller.
type Option func(*Controller)

// WithDelay overrides the submission delay. Negative values become zero.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d < 0 {
			d = 0
		}
		c.delay = d
	}
}

// WithSleeper injects the suspension primitive.
func WithSleeper(s Sleeper) Option {
	return func(c *Controller) {
		if s != nil {
			c.sleeper = s
		}
	}
}

// WithClock sets the collector clock.
func WithClock(clock collect.Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithRegistry swaps the validation rules.
func WithRegistry(reg *validation.Registry) Option {
	return func(c *Controller) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStateHook registers a callback invoked on every transition. It runs
// on the goroutine driving the transition.
func WithStateHook(fn func(from, to State)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.hooks = append(c.hooks, fn)
		}
	}
}
