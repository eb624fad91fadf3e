package validation

import (
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/presenter"
	"github.com/goliatone/go-formctl/pkg/surface"
)

// Result is the outcome of validating one field.
type Result struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message,omitempty"`
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRegistry swaps the rule registry.
func WithRegistry(reg *Registry) Option {
	return func(o *Orchestrator) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator runs field validators against the current surface state.
type Orchestrator struct {
	surface   surface.Surface
	presenter *presenter.Presenter
	fields    model.Descriptors
	registry  *Registry
	logger    *zap.Logger

	mu      sync.Mutex
	results map[string]Result
	last    []string
}

// New builds an orchestrator over fields.
func New(s surface.Surface, p *presenter.Presenter, fields model.Descriptors, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		surface:   s,
		presenter: p,
		fields:    fields,
		registry:  NewRegistry(),
		logger:    zap.NewNop(),
		results:   make(map[string]Result),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// ValidateField clears any prior error, runs the chain for kind and shows the
// first failing rule's message. Kinds with no registered chain are valid.
func (o *Orchestrator) ValidateField(field string, kind model.FieldKind) bool {
	o.presenter.ClearError(field)

	res := Result{Field: field, Valid: true}
	chain, ok := o.registry.Resolve(kind)
	if !ok {
		o.logger.Debug("no validation rules for kind",
			zap.String("field", field),
			zap.String("kind", string(kind)),
		)
	}
	for _, rule := range chain {
		if rule.Check(o.surface, field) {
			continue
		}
		res.Valid = false
		res.Rule = rule.Name
		res.Message = rule.Message
		break
	}

	if !res.Valid {
		o.presenter.ShowError(field, res.Message)
	}

	o.mu.Lock()
	o.results[field] = res
	o.mu.Unlock()
	return res.Valid
}

// ValidateForm validates every required field and returns true only when all
// pass. Every field is checked so all errors surface in one pass.
func (o *Orchestrator) ValidateForm() bool {
	required := o.fields.Required()
	valid := true
	for _, d := range required {
		ok := o.ValidateField(d.Name, d.Kind)
		valid = valid && ok
	}

	o.mu.Lock()
	o.last = required.Names()
	o.mu.Unlock()

	if !valid {
		o.logger.Debug("form validation failed", zap.Int("fields", len(required)))
	}
	return valid
}

// Results returns the per-field outcomes of the last ValidateForm pass in
// field order.
func (o *Orchestrator) Results() []Result {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Result, 0, len(o.last))
	for _, name := range o.last {
		if res, ok := o.results[name]; ok {
			out = append(out, res)
		}
	}
	return out
}
