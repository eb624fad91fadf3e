// Package form describes concrete forms: their name, the storage key their
// records are written to and the ordered field table. Definitions are YAML
// documents; the gestor_trafego_latam form ships embedded.
package form

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/surface"
)

// Identifiers of the bundled form.
const (
	FormName   = "gestor_trafego_latam"
	StorageKey = "gestor_trafego_form_data"
)

// Definition is a parsed form.
type Definition struct {
	Name       string
	StorageKey string
	Fields     model.Descriptors
}

type document struct {
	Name       string          `yaml:"name"`
	StorageKey string          `yaml:"storage_key"`
	Fields     []fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"`
	Label    string         `yaml:"label"`
	Required bool           `yaml:"required"`
	Options  []model.Option `yaml:"options"`
}

// Load parses a YAML definition from r.
func Load(r io.Reader) (Definition, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, errors.New("form: empty definition")
		}
		return Definition{}, fmt.Errorf("form: decode definition: %w", err)
	}
	return normalise(doc)
}

// LoadFile parses the definition at path.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("form: read %s: %w", path, err)
	}
	def, err := Load(bytes.NewReader(data))
	if err != nil {
		return Definition{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return def, nil
}

// LoadFS parses name from fsys.
func LoadFS(fsys fs.FS, name string) (Definition, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Definition{}, fmt.Errorf("form: read %s: %w", name, err)
	}
	return Load(bytes.NewReader(data))
}

func normalise(doc document) (Definition, error) {
	def := Definition{
		Name:       strings.TrimSpace(doc.Name),
		StorageKey: strings.TrimSpace(doc.StorageKey),
	}
	if def.Name == "" {
		return Definition{}, errors.New("form: definition has no name")
	}
	if def.StorageKey == "" {
		def.StorageKey = def.Name + "_form_data"
	}

	for _, f := range doc.Fields {
		kind, err := model.ParseFieldKind(f.Kind)
		if err != nil {
			return Definition{}, fmt.Errorf("form: field %q: %w", f.Name, err)
		}
		def.Fields = append(def.Fields, model.FieldDescriptor{
			Name:     strings.TrimSpace(f.Name),
			Kind:     kind,
			Label:    strings.TrimSpace(f.Label),
			Required: f.Required,
			Options:  f.Options,
		})
	}
	if len(def.Fields) == 0 {
		return Definition{}, fmt.Errorf("form: %s defines no fields", def.Name)
	}
	if err := def.Fields.Validate(); err != nil {
		return Definition{}, fmt.Errorf("form: %s: %w", def.Name, err)
	}
	return def, nil
}

var (
	defaultOnce sync.Once
	defaultDef  Definition
	defaultErr  error
)

// Default returns the bundled gestor_trafego_latam definition.
func Default() Definition {
	defaultOnce.Do(func() {
		defaultDef, defaultErr = LoadFS(EmbeddedFS(), FormName+".yaml")
	})
	if defaultErr != nil {
		// embedded definition is broken
		panic(defaultErr)
	}
	return Definition{
		Name:       defaultDef.Name,
		StorageKey: defaultDef.StorageKey,
		Fields:     append(model.Descriptors(nil), defaultDef.Fields...),
	}
}

// NewSurface returns an empty in-memory surface with every choice group of
// the definition declared.
func (d Definition) NewSurface() *surface.Memory {
	m := surface.NewMemory()
	for _, f := range d.Fields {
		if f.Kind.IsChoice() {
			m.DeclareGroup(f.Name, f.OptionValues()...)
		}
	}
	return m
}
