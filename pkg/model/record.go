package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Reserved record keys.
const (
	FieldTimestamp = "timestamp"
	FieldDraft     = "draft"
)

// TimestampLayout matches the millisecond precision UTC format browsers emit
// for Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in TimestampLayout, always in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Record is a flat, point-in-time snapshot of a form. Values are either a
// string (scalar fields) or a []string (multi-choice fields). Field order is
// the order values were set, which collectors keep aligned with the
// descriptor table.
type Record struct {
	Timestamp string
	Draft     bool

	order  []string
	values map[string]any
}

// NewRecord returns an empty record stamped with timestamp.
func NewRecord(timestamp string) Record {
	return Record{Timestamp: timestamp, values: make(map[string]any)}
}

// SetString stores a scalar value.
func (r *Record) SetString(name, value string) {
	r.set(name, value)
}

// SetList stores a multi-choice value. A nil list is stored as empty so the
// key is never missing.
func (r *Record) SetList(name string, values []string) {
	r.set(name, append([]string{}, values...))
}

func (r *Record) set(name string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[name]; !exists {
		r.order = append(r.order, name)
	}
	r.values[name] = value
}

// Fields returns the field names in record order (timestamp and draft are
// not included).
func (r Record) Fields() []string {
	return append([]string(nil), r.order...)
}

// Len reports the number of fields.
func (r Record) Len() int {
	return len(r.order)
}

// Value returns the raw value stored under name.
func (r Record) Value(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// String returns the scalar value of name, or "" when absent or a list.
func (r Record) String(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// List returns a copy of the list value of name.
func (r Record) List(name string) []string {
	l, _ := r.values[name].([]string)
	return append([]string(nil), l...)
}

// HasData reports whether any field holds a non-blank string or a non-empty
// list. The timestamp never counts.
func (r Record) HasData() bool {
	for _, name := range r.order {
		switch v := r.values[name].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return true
			}
		case []string:
			if len(v) > 0 {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	out := Record{
		Timestamp: r.Timestamp,
		Draft:     r.Draft,
		order:     append([]string(nil), r.order...),
		values:    make(map[string]any, len(r.values)),
	}
	for k, v := range r.values {
		if l, ok := v.([]string); ok {
			out.values[k] = append([]string{}, l...)
			continue
		}
		out.values[k] = v
	}
	return out
}

// AsDraft returns a copy of the record flagged as a draft.
func (r Record) AsDraft() Record {
	out := r.Clone()
	out.Draft = true
	return out
}

// Equal compares records field by field, including order, timestamp and the
// draft flag. go-cmp picks this method up automatically.
func (r Record) Equal(other Record) bool {
	if r.Timestamp != other.Timestamp || r.Draft != other.Draft {
		return false
	}
	if !slices.Equal(r.order, other.order) {
		return false
	}
	for _, name := range r.order {
		switch a := r.values[name].(type) {
		case string:
			b, ok := other.values[name].(string)
			if !ok || a != b {
				return false
			}
		case []string:
			b, ok := other.values[name].([]string)
			if !ok || !slices.Equal(a, b) {
				return false
			}
		}
	}
	return true
}

// MarshalJSON emits timestamp first, then fields in record order, then
// draft when set.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	writeKV := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("model: encode %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := writeKV(FieldTimestamp, r.Timestamp); err != nil {
		return nil, err
	}
	for _, name := range r.order {
		if err := writeKV(name, r.values[name]); err != nil {
			return nil, err
		}
	}
	if r.Draft {
		if err := writeKV(FieldDraft, true); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a record, keeping the key order of the payload.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("model: decode record: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("model: record must be a JSON object")
	}

	out := NewRecord("")
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("model: decode record: %w", err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("model: decode %q: %w", key, err)
		}

		switch key {
		case FieldTimestamp:
			if err := json.Unmarshal(raw, &out.Timestamp); err != nil {
				return fmt.Errorf("model: decode timestamp: %w", err)
			}
		case FieldDraft:
			if err := json.Unmarshal(raw, &out.Draft); err != nil {
				return fmt.Errorf("model: decode draft: %w", err)
			}
		default:
			trimmed := bytes.TrimSpace(raw)
			if len(trimmed) > 0 && trimmed[0] == '[' {
				var list []string
				if err := json.Unmarshal(trimmed, &list); err != nil {
					return fmt.Errorf("model: decode %q: %w", key, err)
				}
				out.SetList(key, list)
				continue
			}
			var s string
			if err := json.Unmarshal(trimmed, &s); err != nil {
				return fmt.Errorf("model: decode %q: %w", key, err)
			}
			out.SetString(key, s)
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("model: decode record: %w", err)
	}

	*r = out
	return nil
}
