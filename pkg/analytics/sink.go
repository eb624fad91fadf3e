package analytics

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formctl/pkg/model"
)

// SinkOption configures a Sink.
type SinkOption func(*Sink)

// WithPusher replaces the destination queue.
func WithPusher(p Pusher) SinkOption {
	return func(s *Sink) {
		if p != nil {
			s.pusher = p
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) SinkOption {
	return func(s *Sink) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Sink reports submitted records as form_submit events.
type Sink struct {
	formName string
	pusher   Pusher
	logger   *zap.Logger
}

// NewSink targets the process-wide DataLayer unless WithPusher says
// otherwise.
func NewSink(formName string, opts ...SinkOption) *Sink {
	s := &Sink{formName: formName, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.pusher == nil {
		s.pusher = DataLayer()
	}
	return s
}

// Send pushes {event: form_submit, form_name, form_data: rec}. Failures,
// including panics raised by the pusher, are logged and reported as false.
func (s *Sink) Send(rec model.Record) bool {
	ev := NewEvent(s.formName, rec)
	if err := s.push(ev); err != nil {
		s.logger.Error("push analytics event failed",
			zap.String("form_name", s.formName),
			zap.Error(err),
		)
		return false
	}
	s.logger.Info("analytics event pushed",
		zap.String("event", ev.Event),
		zap.String("form_name", s.formName),
		zap.Stringer("id", ev.ID),
	)
	return true
}

func (s *Sink) push(ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analytics: panic during push: %v", r)
		}
	}()
	return s.pusher.Push(ev)
}
