package form_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formctl/pkg/form"
	"github.com/goliatone/go-formctl/pkg/model"
)

func TestDefaultDefinition(t *testing.T) {
	def := form.Default()

	if def.Name != form.FormName || def.StorageKey != form.StorageKey {
		t.Fatalf("unexpected identifiers %q / %q", def.Name, def.StorageKey)
	}

	wantOrder := []string{
		"nombre_completo", "email", "whatsapp", "instagram",
		"nivel_trafico", "experiencia_clientes", "plataformas", "presupuesto",
		"formacion", "referentes", "intereses", "disponibilidad",
		"desafio_principal", "medicion_resultados",
	}
	if diff := cmp.Diff(wantOrder, def.Fields.Names()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	kinds := map[model.FieldKind]int{}
	for _, d := range def.Fields.Required() {
		kinds[d.Kind]++
	}
	wantKinds := map[model.FieldKind]int{
		model.KindText:     1,
		model.KindEmail:    1,
		model.KindPhone:    1,
		model.KindTextArea: 1,
		model.KindRadio:    5,
		model.KindCheckbox: 2,
	}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("required kinds mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{"instagram", "medicion_resultados", "desafio_principal"} {
		d, ok := def.Fields.Lookup(name)
		if !ok || d.Required {
			t.Fatalf("%s should exist and be optional", name)
		}
	}
}

func TestDefaultReturnsCopies(t *testing.T) {
	a := form.Default()
	a.Fields[0].Name = "changed"
	if form.Default().Fields[0].Name != "nombre_completo" {
		t.Fatalf("Default shares its field table")
	}
}

func TestLoadDefinition(t *testing.T) {
	def, err := form.Load(strings.NewReader(`
name: contacto
fields:
  - name: nombre
    required: true
  - name: canal
    kind: single-choice
    required: true
    options:
      - value: email
      - value: telefono
        label: Teléfono
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if def.StorageKey != "contacto_form_data" {
		t.Fatalf("storage key = %q", def.StorageKey)
	}
	canal, _ := def.Fields.Lookup("canal")
	if canal.Kind != model.KindRadio {
		t.Fatalf("canal kind = %q", canal.Kind)
	}
	if got := canal.Options[1].DisplayLabel(); got != "Teléfono" {
		t.Fatalf("label = %q", got)
	}
	if got := canal.Options[0].DisplayLabel(); got != "email" {
		t.Fatalf("fallback label = %q", got)
	}

	mem := def.NewSurface()
	if err := mem.Select("canal", "telefono"); err != nil {
		t.Fatalf("surface group not declared: %v", err)
	}
}

func TestLoadDefinitionErrors(t *testing.T) {
	cases := map[string]string{
		"empty":         ``,
		"no name":       "fields:\n  - name: a\n",
		"no fields":     "name: x\n",
		"unknown kind":  "name: x\nfields:\n  - name: a\n    kind: date\n",
		"unknown key":   "name: x\nbogus: 1\nfields:\n  - name: a\n",
		"choice no opt": "name: x\nfields:\n  - name: a\n    kind: radio\n",
		"duplicate":     "name: x\nfields:\n  - name: a\n  - name: a\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := form.Load(strings.NewReader(doc)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
