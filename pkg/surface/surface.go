// Package surface abstracts the input surface a form is filled on. The
// controller, validators and collector only ever talk to the Surface
// interface so they can run without a rendering layer.
package surface

import (
	"fmt"
	"slices"
	"sync"
)

// Surface is the capability set the form logic needs from whatever renders
// the inputs.
type Surface interface {
	// FieldValue returns the raw value of a named scalar input. Unknown
	// fields read as "".
	FieldValue(name string) string
	// Selected returns the checked values of a choice group in surface
	// order. An empty group yields an empty slice.
	Selected(group string) []string
	// SetFieldError writes message into the field's error slot and marks the
	// field invalid. An empty message clears both.
	SetFieldError(name, message string)
	// FieldError returns the message currently shown for name.
	FieldError(name string) string
}

// Memory is a concurrency-safe in-memory Surface. Choice groups must be
// declared with their option order so Selected can report surface order.
type Memory struct {
	mu      sync.RWMutex
	values  map[string]string
	groups  map[string][]string
	checked map[string]map[string]bool
	errors  map[string]string
}

// NewMemory constructs an empty surface.
func NewMemory() *Memory {
	return &Memory{
		values:  make(map[string]string),
		groups:  make(map[string][]string),
		checked: make(map[string]map[string]bool),
		errors:  make(map[string]string),
	}
}

// DeclareGroup registers a choice group and the order of its options.
// Redeclaring a group keeps selections that are still valid options.
func (m *Memory) DeclareGroup(group string, options ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[group] = append([]string(nil), options...)
	prev := m.checked[group]
	next := make(map[string]bool, len(options))
	for _, opt := range options {
		if prev[opt] {
			next[opt] = true
		}
	}
	m.checked[group] = next
}

// SetValue writes a scalar input value.
func (m *Memory) SetValue(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[name] = value
}

// Check selects value inside a multi-choice group.
func (m *Memory) Check(group, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hasOptionLocked(group, value); err != nil {
		return err
	}
	m.checked[group][value] = true
	return nil
}

// Uncheck clears value inside a group.
func (m *Memory) Uncheck(group, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if set, ok := m.checked[group]; ok {
		delete(set, value)
	}
}

// Select behaves like a radio input: value becomes the only selection.
func (m *Memory) Select(group, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.hasOptionLocked(group, value); err != nil {
		return err
	}
	m.checked[group] = map[string]bool{value: true}
	return nil
}

// ClearGroup removes every selection in a group.
func (m *Memory) ClearGroup(group string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.checked[group]; ok {
		m.checked[group] = make(map[string]bool)
	}
}

func (m *Memory) hasOptionLocked(group, value string) error {
	options, ok := m.groups[group]
	if !ok {
		return fmt.Errorf("surface: unknown group %q", group)
	}
	if !slices.Contains(options, value) {
		return fmt.Errorf("surface: group %q has no option %q", group, value)
	}
	return nil
}

// FieldValue implements Surface.
func (m *Memory) FieldValue(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[name]
}

// Selected implements Surface.
func (m *Memory) Selected(group string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []string{}
	set := m.checked[group]
	for _, opt := range m.groups[group] {
		if set[opt] {
			out = append(out, opt)
		}
	}
	return out
}

// SetFieldError implements Surface.
func (m *Memory) SetFieldError(name, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if message == "" {
		delete(m.errors, name)
		return
	}
	m.errors[name] = message
}

// FieldError implements Surface.
func (m *Memory) FieldError(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.errors[name]
}

// Reset clears values and selections. Error slots and group declarations
// are kept.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[string]string)
	for group := range m.checked {
		m.checked[group] = make(map[string]bool)
	}
}
