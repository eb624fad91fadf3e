// Package presenter binds field names to their error slots on a surface.
package presenter

import (
	"strings"

	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/surface"
)

// Presenter shows and clears inline field errors. It holds no validation
// logic; all state lives on the surface, which makes ShowError and ClearError
// idempotent.
type Presenter struct {
	surface surface.Surface
	fields  model.Descriptors
}

// New binds a presenter to a surface. fields fixes the order FirstError and
// ClearAll walk.
func New(s surface.Surface, fields model.Descriptors) *Presenter {
	return &Presenter{surface: s, fields: fields}
}

// ShowError writes message into the field's error slot and marks it invalid.
// A blank message is treated as a clear.
func (p *Presenter) ShowError(field, message string) {
	message = strings.TrimSpace(message)
	if p.surface.FieldError(field) == message {
		return
	}
	p.surface.SetFieldError(field, message)
}

// ClearError empties the slot. Safe on fields without an error.
func (p *Presenter) ClearError(field string) {
	if p.surface.FieldError(field) == "" {
		return
	}
	p.surface.SetFieldError(field, "")
}

// HasError reports whether field currently shows a message.
func (p *Presenter) HasError(field string) bool {
	return p.surface.FieldError(field) != ""
}

// ClearAll empties every known error slot.
func (p *Presenter) ClearAll() {
	for _, d := range p.fields {
		p.ClearError(d.Name)
	}
}

// FirstError returns the first field, in layout order, with a visible error.
func (p *Presenter) FirstError() (string, bool) {
	for _, d := range p.fields {
		if p.HasError(d.Name) {
			return d.Name, true
		}
	}
	return "", false
}

// Errors returns every visible message keyed by field name, or nil.
func (p *Presenter) Errors() map[string]string {
	var out map[string]string
	for _, d := range p.fields {
		msg := p.surface.FieldError(d.Name)
		if msg == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[d.Name] = msg
	}
	return out
}
