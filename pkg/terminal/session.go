// Package terminal fills a form interactively from a TTY. A Session prompts
// for every field, mirrors the answers onto an in-memory surface, forwards
// blur/change events to the controller and doubles as the controller's View.
package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/form"
	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/surface"
)

// Messages printed by the session view.
const (
	MessageSending = "Enviando..."
	MessageSuccess = "¡Formulario enviado con éxito! Nos pondremos en contacto pronto."
	skipOption     = "(omitir)"
)

// Handlers is the part of the controller a session drives.
type Handlers interface {
	Blur(field string) bool
	Change(group string)
	Submit(ctx context.Context) controller.Outcome
	Unload(ctx context.Context) bool
}

// Theme captures optional message prefixes.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// Session is one interactive fill of a form definition.
type Session struct {
	def     form.Definition
	surface *surface.Memory
	driver  PromptDriver
	theme   Theme

	mu      sync.Mutex
	busy    bool
	success bool
}

// NewSession prepares a session over def. The surface is created from the
// definition; use Surface to hand it to the controller.
func NewSession(def form.Definition, opts ...Option) *Session {
	s := &Session{
		def:     def,
		surface: def.NewSurface(),
		theme:   Theme{ErrorPrefix: "! "},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s
}

// Surface returns the surface answers are written to.
func (s *Session) Surface() *surface.Memory {
	return s.surface
}

// Run prompts for every field and submits. After an invalid submission only
// the fields showing errors are asked again. Leaving the session on any path
// goes through Unload, so unsent answers are kept as a draft unless the
// success banner is showing. An abort returns ErrAborted.
func (s *Session) Run(ctx context.Context, h Handlers) (controller.Outcome, error) {
	if h == nil {
		return controller.OutcomeIgnored, ErrNoHandlers
	}
	defer h.Unload(context.WithoutCancel(ctx))

	pending := s.def.Fields
	for {
		if err := s.fill(ctx, h, pending); err != nil {
			return controller.OutcomeIgnored, err
		}

		outcome := h.Submit(ctx)
		if outcome != controller.OutcomeInvalid {
			return outcome, nil
		}
		pending = s.invalidFields()
		if len(pending) == 0 {
			return outcome, nil
		}
	}
}

func (s *Session) invalidFields() model.Descriptors {
	var out model.Descriptors
	for _, d := range s.def.Fields {
		if s.surface.FieldError(d.Name) != "" {
			out = append(out, d)
		}
	}
	return out
}

func (s *Session) fill(ctx context.Context, h Handlers, fields model.Descriptors) error {
	for _, d := range fields {
		var err error
		switch d.Kind {
		case model.KindRadio:
			err = s.promptRadio(ctx, h, d)
		case model.KindCheckbox:
			err = s.promptCheckbox(ctx, h, d)
		default:
			err = s.promptText(ctx, h, d)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptText(ctx context.Context, h Handlers, d model.FieldDescriptor) error {
	for {
		if msg := s.surface.FieldError(d.Name); msg != "" {
			s.printError(ctx, msg)
		}

		cfg := InputConfig{
			Message: label(d),
			Default: s.surface.FieldValue(d.Name),
		}
		var (
			answer string
			err    error
		)
		if d.Kind == model.KindTextArea {
			answer, err = s.driver.TextArea(ctx, cfg)
		} else {
			answer, err = s.driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}

		s.surface.SetValue(d.Name, answer)
		if h.Blur(d.Name) {
			return nil
		}
	}
}

func (s *Session) promptRadio(ctx context.Context, h Handlers, d model.FieldDescriptor) error {
	if msg := s.surface.FieldError(d.Name); msg != "" {
		s.printError(ctx, msg)
	}

	options := labels(d.Options)
	offset := 0
	if !d.Required {
		options = append([]string{skipOption}, options...)
		offset = 1
	}
	cfg := SelectConfig{Message: label(d), Options: options}
	if selected := s.surface.Selected(d.Name); len(selected) > 0 {
		cfg.Defaults = []int{optionIndex(d, selected[0]) + offset}
	}

	idx, err := s.driver.Select(ctx, cfg)
	if err != nil {
		return err
	}
	idx -= offset
	if idx < 0 || idx >= len(d.Options) {
		s.surface.ClearGroup(d.Name)
	} else if err := s.surface.Select(d.Name, d.Options[idx].Value); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	h.Change(d.Name)
	return nil
}

func (s *Session) promptCheckbox(ctx context.Context, h Handlers, d model.FieldDescriptor) error {
	if msg := s.surface.FieldError(d.Name); msg != "" {
		s.printError(ctx, msg)
	}

	cfg := SelectConfig{Message: label(d), Options: labels(d.Options)}
	for _, value := range s.surface.Selected(d.Name) {
		cfg.Defaults = append(cfg.Defaults, optionIndex(d, value))
	}

	picked, err := s.driver.MultiSelect(ctx, cfg)
	if err != nil {
		return err
	}
	s.surface.ClearGroup(d.Name)
	for _, idx := range picked {
		if idx < 0 || idx >= len(d.Options) {
			continue
		}
		if err := s.surface.Check(d.Name, d.Options[idx].Value); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
	}
	h.Change(d.Name)
	return nil
}

func (s *Session) printError(ctx context.Context, msg string) {
	_ = s.driver.Info(ctx, s.theme.ErrorPrefix+msg)
}

func (s *Session) printInfo(msg string) {
	_ = s.driver.Info(context.Background(), s.theme.InfoPrefix+msg)
}

// SetBusy implements controller.View.
func (s *Session) SetBusy(busy bool) {
	s.mu.Lock()
	s.busy = busy
	s.mu.Unlock()
	if busy {
		s.printInfo(MessageSending)
	}
}

// ShowSuccess implements controller.View.
func (s *Session) ShowSuccess() {
	s.mu.Lock()
	s.success = true
	s.mu.Unlock()
	s.printInfo(MessageSuccess)
}

// HideSuccess implements controller.View.
func (s *Session) HideSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.success = false
}

// SuccessVisible implements controller.View.
func (s *Session) SuccessVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.success
}

// ScrollTo implements controller.View by naming the first field to fix.
func (s *Session) ScrollTo(field string) {
	if field == controller.SuccessAnchor {
		return
	}
	if d, ok := s.def.Fields.Lookup(field); ok {
		s.printInfo("Revisa: " + label(d))
	}
}

// Alert implements controller.View.
func (s *Session) Alert(message string) {
	_ = s.driver.Info(context.Background(), s.theme.ErrorPrefix+message)
}

func label(d model.FieldDescriptor) string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

func labels(options []model.Option) []string {
	out := make([]string, 0, len(options))
	for _, opt := range options {
		out = append(out, opt.DisplayLabel())
	}
	return out
}

func optionIndex(d model.FieldDescriptor, value string) int {
	for i, opt := range d.Options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// Busy reports whether a submission is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}
