package validation

import (
	"sync"

	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/surface"
)

// Check evaluates one rule for a field on a surface.
type Check func(s surface.Surface, field string) bool

// Rule pairs a check with the message shown when it fails.
type Rule struct {
	Name    string
	Message string
	Check   Check
}

// Registry maps field kinds to ordered rule chains. Chains run in order and
// stop at the first failing rule, so presence rules come before shape rules.
// Registering a kind again replaces its chain.
type Registry struct {
	mu    sync.RWMutex
	rules map[model.FieldKind][]Rule
}

// NewRegistry constructs a registry with the built-in chains registered.
func NewRegistry() *Registry {
	reg := &Registry{rules: make(map[model.FieldKind][]Rule)}
	reg.registerBuiltins()
	return reg
}

// Register sets the rule chain for kind. Rules without a Check are dropped.
func (r *Registry) Register(kind model.FieldKind, rules ...Rule) {
	if r == nil || kind == "" {
		return
	}
	chain := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.Check == nil {
			continue
		}
		chain = append(chain, rule)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.rules == nil {
		r.rules = make(map[model.FieldKind][]Rule)
	}
	r.rules[kind] = chain
}

// Resolve returns the chain registered for kind.
func (r *Registry) Resolve(kind model.FieldKind) ([]Rule, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	chain, ok := r.rules[kind]
	if !ok {
		return nil, false
	}
	return append([]Rule(nil), chain...), true
}

func (r *Registry) registerBuiltins() {
	required := Rule{Name: "required", Message: MessageRequired, Check: valueCheck(Required)}

	r.Register(model.KindText, required)
	r.Register(model.KindTextArea, required)
	r.Register(model.KindEmail, required, Rule{
		Name:    "email",
		Message: MessageEmail,
		Check:   valueCheck(Email),
	})
	r.Register(model.KindPhone, required, Rule{
		Name:    "phone",
		Message: MessagePhone,
		Check:   valueCheck(Phone),
	})
	r.Register(model.KindRadio, Rule{Name: "radio", Message: MessageRadio, Check: ChoiceMade})
	r.Register(model.KindCheckbox, Rule{Name: "checkbox", Message: MessageCheckbox, Check: ChoiceMade})
}

func valueCheck(pred func(string) bool) Check {
	return func(s surface.Surface, field string) bool {
		if s == nil {
			return false
		}
		return pred(s.FieldValue(field))
	}
}
