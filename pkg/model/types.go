package model

import (
	"fmt"
	"strings"
)

// FieldKind enumerates the input shapes the controller understands.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindPhone    FieldKind = "phone"
	KindTextArea FieldKind = "textarea"
	// KindRadio is a single-choice group.
	KindRadio FieldKind = "radio"
	// KindCheckbox is a multi-choice group.
	KindCheckbox FieldKind = "checkbox"
)

// ParseFieldKind normalises a kind identifier. "whatsapp" is accepted as an
// alias of phone and the single/multi-choice spellings map onto the group
// kinds.
func ParseFieldKind(raw string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "text", "":
		return KindText, nil
	case "email":
		return KindEmail, nil
	case "phone", "whatsapp", "tel":
		return KindPhone, nil
	case "textarea":
		return KindTextArea, nil
	case "radio", "single-choice":
		return KindRadio, nil
	case "checkbox", "multi-choice":
		return KindCheckbox, nil
	default:
		return "", fmt.Errorf("model: unknown field kind %q", raw)
	}
}

// IsChoice reports whether the kind is a group of selectable inputs.
func (k FieldKind) IsChoice() bool {
	return k == KindRadio || k == KindCheckbox
}

// IsMulti reports whether values for the kind are collected as a list.
func (k FieldKind) IsMulti() bool {
	return k == KindCheckbox
}

// Option is one selectable input inside a choice group.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// DisplayLabel falls back to the value when no label is configured.
func (o Option) DisplayLabel() string {
	if label := strings.TrimSpace(o.Label); label != "" {
		return label
	}
	return o.Value
}

// FieldDescriptor describes a single named input. Descriptors are static and
// defined once when the form is assembled.
type FieldDescriptor struct {
	Name     string
	Kind     FieldKind
	Label    string
	Required bool
	Options  []Option
}

// OptionValues returns the option values in declaration order.
func (d FieldDescriptor) OptionValues() []string {
	if len(d.Options) == 0 {
		return nil
	}
	out := make([]string, 0, len(d.Options))
	for _, opt := range d.Options {
		out = append(out, opt.Value)
	}
	return out
}

// Descriptors is an ordered field table.
type Descriptors []FieldDescriptor

// Lookup finds a descriptor by name.
func (ds Descriptors) Lookup(name string) (FieldDescriptor, bool) {
	for _, d := range ds {
		if d.Name == name {
			return d, true
		}
	}
	return FieldDescriptor{}, false
}

// Required returns the descriptors that take part in a form-wide validation
// pass, preserving order.
func (ds Descriptors) Required() Descriptors {
	var out Descriptors
	for _, d := range ds {
		if d.Required {
			out = append(out, d)
		}
	}
	return out
}

// Names lists every descriptor name in order.
func (ds Descriptors) Names() []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Name)
	}
	return out
}

// Validate checks the table for empty or duplicate names and choice groups
// without options.
func (ds Descriptors) Validate() error {
	seen := make(map[string]struct{}, len(ds))
	for idx, d := range ds {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return fmt.Errorf("model: descriptor %d has no name", idx)
		}
		if name == FieldTimestamp || name == FieldDraft {
			return fmt.Errorf("model: field name %q is reserved", name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("model: duplicate field %q", name)
		}
		seen[name] = struct{}{}
		if d.Kind.IsChoice() && len(d.Options) == 0 {
			return fmt.Errorf("model: choice field %q has no options", name)
		}
	}
	return nil
}
