// Package collect snapshots a form surface into a model.Record.
package collect

import (
	"strings"
	"time"

	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/surface"
)

// Clock returns the current time.
type Clock func() time.Time

// Collector reads every descriptor from a surface. It never writes to the
// surface.
type Collector struct {
	surface surface.Surface
	fields  model.Descriptors
	now     Clock
}

// Option configures a Collector.
type Option func(*Collector)

// WithClock overrides the timestamp source.
func WithClock(clock Clock) Option {
	return func(c *Collector) {
		if clock != nil {
			c.now = clock
		}
	}
}

// New constructs a collector.
func New(s surface.Surface, fields model.Descriptors, opts ...Option) *Collector {
	c := &Collector{surface: s, fields: fields, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Collect returns a fresh record. Scalars are trimmed, radio groups yield the
// selected value or "", checkbox groups yield the checked values in surface
// order (possibly empty). Every descriptor produces a key.
func (c *Collector) Collect() model.Record {
	rec := model.NewRecord(model.FormatTimestamp(c.now()))
	for _, d := range c.fields {
		switch {
		case d.Kind.IsMulti():
			rec.SetList(d.Name, c.surface.Selected(d.Name))
		case d.Kind.IsChoice():
			value := ""
			if selected := c.surface.Selected(d.Name); len(selected) > 0 {
				value = selected[0]
			}
			rec.SetString(d.Name, value)
		default:
			rec.SetString(d.Name, strings.TrimSpace(c.surface.FieldValue(d.Name)))
		}
	}
	return rec
}
