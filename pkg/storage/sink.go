package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formctl/pkg/model"
)

// DefaultKey is the slot submissions and drafts are written to.
const DefaultKey = "gestor_trafego_form_data"

// SinkOption configures a Sink.
type SinkOption func(*Sink)

// WithKey overrides the storage key.
func WithKey(key string) SinkOption {
	return func(s *Sink) {
		if key != "" {
			s.key = key
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

// Sink writes records to one key of a Store, replacing whatever was there.
type Sink struct {
	store  Store
	key    string
	logger *zap.Logger
}

// NewSink wraps store.
func NewSink(store Store, opts ...SinkOption) *Sink {
	s := &Sink{store: store, key: DefaultKey, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Key returns the storage key.
func (s *Sink) Key() string {
	return s.key
}

// Save encodes rec as JSON and overwrites the key. Any fault is logged and
// reported as false.
func (s *Sink) Save(ctx context.Context, rec model.Record) bool {
	if err := s.save(ctx, rec); err != nil {
		s.logger.Error("save record failed", zap.String("key", s.key), zap.Error(err))
		return false
	}
	s.logger.Info("record saved",
		zap.String("key", s.key),
		zap.String("timestamp", rec.Timestamp),
		zap.Bool("draft", rec.Draft),
	)
	return true
}

func (s *Sink) save(ctx context.Context, rec model.Record) (err error) {
	if s.store == nil {
		return ErrDisabled
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("storage: panic during save: %v", r)
		}
	}()
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("storage: encode record: %w", err)
	}
	return s.store.Set(ctx, s.key, payload)
}

// Load reads and decodes the saved record. It reports false when nothing is
// stored or the payload cannot be read. The result is informational only;
// callers do not feed it back into the input surface.
func (s *Sink) Load(ctx context.Context) (model.Record, bool) {
	if s.store == nil {
		return model.Record{}, false
	}
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.Error("load record failed", zap.String("key", s.key), zap.Error(err))
		return model.Record{}, false
	}
	if !ok {
		return model.Record{}, false
	}
	var rec model.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Error("decode saved record failed", zap.String("key", s.key), zap.Error(err))
		return model.Record{}, false
	}
	s.logger.Info("saved record found",
		zap.String("key", s.key),
		zap.String("timestamp", rec.Timestamp),
		zap.Bool("draft", rec.Draft),
	)
	return rec, true
}
