package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-formctl/pkg/collect"
	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/presenter"
	"github.com/goliatone/go-formctl/pkg/surface"
	"github.com/goliatone/go-formctl/pkg/validation"
)

// Controller wires the validators, collector and sinks to user events.
type Controller struct {
	surface   surface.Surface
	view      View
	fields    model.Descriptors
	persister Persister
	reporter  Reporter

	presenter *presenter.Presenter
	validator *validation.Orchestrator
	collector *collect.Collector

	registry *validation.Registry
	sleeper  Sleeper
	delay    time.Duration
	clock    collect.Clock
	logger   *zap.Logger
	hooks    []func(from, to State)

	mu    sync.Mutex
	state State
}

// New assembles a controller. surface, view, persister and reporter are
// required.
func New(s surface.Surface, view View, fields model.Descriptors, persister Persister, reporter Reporter, opts ...Option) (*Controller, error) {
	switch {
	case s == nil:
		return nil, errors.New("controller: surface is required")
	case view == nil:
		return nil, errors.New("controller: view is required")
	case persister == nil:
		return nil, errors.New("controller: persister is required")
	case reporter == nil:
		return nil, errors.New("controller: reporter is required")
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		surface:   s,
		view:      view,
		fields:    fields,
		persister: persister,
		reporter:  reporter,
		sleeper:   RealSleeper{},
		delay:     DefaultDelay,
		logger:    zap.NewNop(),
		state:     StateIdle,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.registry == nil {
		c.registry = validation.NewRegistry()
	}

	c.presenter = presenter.New(s, fields)
	c.validator = validation.New(s, c.presenter, fields,
		validation.WithRegistry(c.registry),
		validation.WithLogger(c.logger),
	)
	var collectOpts []collect.Option
	if c.clock != nil {
		collectOpts = append(collectOpts, collect.WithClock(c.clock))
	}
	c.collector = collect.New(s, fields, collectOpts...)
	return c, nil
}

// Presenter exposes the error presenter.
func (c *Controller) Presenter() *presenter.Presenter { return c.presenter }

// State reports the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Init runs start-up work: the saved record, if any, is loaded and logged.
// It is not written back to the surface.
func (c *Controller) Init(ctx context.Context) {
	if rec, ok := c.persister.Load(ctx); ok {
		c.logger.Debug("previous record available",
			zap.String("timestamp", rec.Timestamp),
			zap.Bool("draft", rec.Draft),
			zap.Int("fields", rec.Len()),
		)
	}
}

// Submit runs one submission. A call made while another submission is in
// progress returns OutcomeIgnored without touching the view.
func (c *Controller) Submit(ctx context.Context) Outcome {
	if !c.begin() {
		c.logger.Debug("submit ignored while busy")
		return OutcomeIgnored
	}
	c.view.HideSuccess()

	if !c.validator.ValidateForm() {
		c.transition(StateInvalid)
		if field, ok := c.presenter.FirstError(); ok {
			c.view.ScrollTo(field)
		}
		c.transition(StateIdle)
		return OutcomeInvalid
	}

	// once submitting, the sequence runs to completion
	ctx = context.WithoutCancel(ctx)

	c.transition(StateSubmitting)
	c.view.SetBusy(true)
	c.sleeper.Sleep(ctx, c.delay)

	rec := c.collector.Collect()
	saved := c.persister.Save(ctx, rec)
	sent := c.reporter.Send(rec)

	c.view.SetBusy(false)
	c.transition(StateSettled)

	outcome := OutcomeSubmitted
	if saved && sent {
		c.view.ShowSuccess()
		c.view.ScrollTo(SuccessAnchor)
		c.presenter.ClearAll()
	} else {
		outcome = OutcomeFailed
		c.logger.Warn("submission failed",
			zap.Bool("saved", saved),
			zap.Bool("reported", sent),
		)
		c.view.Alert(FailureMessage)
	}

	c.transition(StateIdle)
	return outcome
}

// SubmitAsync runs Submit on its own goroutine so other handlers keep
// responding during the delay. The channel yields exactly one outcome.
func (c *Controller) SubmitAsync(ctx context.Context) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		out <- c.Submit(ctx)
	}()
	return out
}

// Blur validates a required text-like field when it loses focus. Optional
// fields are never validated.
func (c *Controller) Blur(field string) bool {
	d, ok := c.fields.Lookup(field)
	if !ok || d.Kind.IsChoice() || !d.Required {
		return true
	}
	return c.validator.ValidateField(d.Name, d.Kind)
}

// Input re-validates a text-like field as it is edited, but only while it
// is already showing an error.
func (c *Controller) Input(field string) bool {
	d, ok := c.fields.Lookup(field)
	if !ok || d.Kind.IsChoice() || !d.Required {
		return true
	}
	if !c.presenter.HasError(field) {
		return true
	}
	return c.validator.ValidateField(d.Name, d.Kind)
}

// Change clears a choice group's error once the user picks an option.
func (c *Controller) Change(group string) {
	c.presenter.ClearError(group)
}

// Unload saves a draft when the page is going away: if any field holds data
// and the success banner is not showing, the current record is written with
// draft set. Validation is not consulted. It reports whether a draft was
// saved.
func (c *Controller) Unload(ctx context.Context) bool {
	rec := c.collector.Collect()
	if !rec.HasData() || c.view.SuccessVisible() {
		return false
	}
	ok := c.persister.Save(context.WithoutCancel(ctx), rec.AsDraft())
	if ok {
		c.logger.Info("draft saved on unload", zap.String("timestamp", rec.Timestamp))
	}
	return ok
}

func (c *Controller) begin() bool {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return false
	}
	c.state = StateValidating
	c.mu.Unlock()
	c.notify(StateIdle, StateValidating)
	return true
}

func (c *Controller) transition(to State) {
	c.mu.Lock()
	from := c.state
	c.state = to
	c.mu.Unlock()
	c.notify(from, to)
}

func (c *Controller) notify(from, to State) {
	c.logger.Debug("state transition", zap.Stringer("from", from), zap.Stringer("to", to))
	for _, hook := range c.hooks {
		hook(from, to)
	}
}
