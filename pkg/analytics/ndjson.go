package analytics

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// NDJSONWriter writes each pushed event as one JSON line.
type NDJSONWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewNDJSONWriter wraps w.
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	return &NDJSONWriter{enc: json.NewEncoder(w)}
}

// Push implements Pusher.
func (n *NDJSONWriter) Push(ev Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.enc.Encode(ev); err != nil {
		return fmt.Errorf("analytics: write event: %w", err)
	}
	return nil
}

// Tee fans an event out to several pushers. Every pusher is attempted; the
// first error is returned.
type Tee []Pusher

// Push implements Pusher.
func (t Tee) Push(ev Event) error {
	var first error
	for _, p := range t {
		if p == nil {
			continue
		}
		if err := p.Push(ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}
