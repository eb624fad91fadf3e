package presenter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/presenter"
	"github.com/goliatone/go-formctl/pkg/surface"
)

// countingSurface counts writes to error slots.
type countingSurface struct {
	*surface.Memory
	writes int
}

func (c *countingSurface) SetFieldError(name, message string) {
	c.writes++
	c.Memory.SetFieldError(name, message)
}

var fields = model.Descriptors{
	{Name: "nombre_completo", Kind: model.KindText, Required: true},
	{Name: "email", Kind: model.KindEmail, Required: true},
	{Name: "referentes", Kind: model.KindTextArea, Required: true},
}

func TestShowErrorIsIdempotent(t *testing.T) {
	s := &countingSurface{Memory: surface.NewMemory()}
	p := presenter.New(s, fields)

	p.ShowError("email", "bad")
	p.ShowError("email", "bad")
	p.ShowError("email", " bad ")

	if s.writes != 1 {
		t.Fatalf("expected a single write, got %d", s.writes)
	}
	if got := s.FieldError("email"); got != "bad" {
		t.Fatalf("error slot = %q", got)
	}

	p.ShowError("email", "worse")
	if got := s.FieldError("email"); got != "worse" {
		t.Fatalf("error slot = %q", got)
	}
}

func TestClearErrorIsSafeWithoutError(t *testing.T) {
	s := &countingSurface{Memory: surface.NewMemory()}
	p := presenter.New(s, fields)

	p.ClearError("email")
	if s.writes != 0 {
		t.Fatalf("clearing an empty slot wrote %d times", s.writes)
	}

	p.ShowError("email", "bad")
	p.ClearError("email")
	p.ClearError("email")
	if p.HasError("email") {
		t.Fatalf("error not cleared")
	}
	if s.writes != 2 {
		t.Fatalf("expected 2 writes, got %d", s.writes)
	}
}

func TestFirstErrorFollowsFieldOrder(t *testing.T) {
	p := presenter.New(surface.NewMemory(), fields)

	if _, ok := p.FirstError(); ok {
		t.Fatalf("no errors expected")
	}

	p.ShowError("referentes", "a")
	p.ShowError("email", "b")
	if got, _ := p.FirstError(); got != "email" {
		t.Fatalf("FirstError = %q", got)
	}

	if diff := cmp.Diff(map[string]string{"email": "b", "referentes": "a"}, p.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	p.ClearAll()
	if p.Errors() != nil {
		t.Fatalf("ClearAll left errors: %v", p.Errors())
	}
}
