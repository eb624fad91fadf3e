package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/goliatone/go-formctl/internal/config"
	"github.com/goliatone/go-formctl/pkg/form"
	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/validation"
)

func validRecord(def form.Definition) model.Record {
	rec := model.NewRecord("2025-03-01T10:00:00.000Z")
	for _, d := range def.Fields {
		switch d.Kind {
		case model.KindCheckbox:
			rec.SetList(d.Name, d.OptionValues()[:1])
		case model.KindRadio:
			rec.SetString(d.Name, d.Options[0].Value)
		default:
			rec.SetString(d.Name, "")
		}
	}
	rec.SetString("nombre_completo", "Ana Ruiz")
	rec.SetString("email", "ana@test.com")
	rec.SetString("whatsapp", "+57 300 1234567")
	rec.SetString("referentes", "x")
	return rec
}

func TestCheckRecordValid(t *testing.T) {
	def := form.Default()
	results, valid := checkRecord(def, validRecord(def), zap.NewNop())
	if !valid {
		t.Fatalf("valid record rejected: %+v", results)
	}
	if len(results) != len(def.Fields.Required()) {
		t.Fatalf("got %d results, want one per required field", len(results))
	}
}

func TestCheckRecordDraft(t *testing.T) {
	def := form.Default()
	draft := model.NewRecord("2025-03-01T10:00:00.000Z").AsDraft()
	draft.SetString("nombre_completo", "Ana")
	draft.SetList("plataformas", []string{"no_such_option"})

	results, valid := checkRecord(def, draft, zap.NewNop())
	if valid {
		t.Fatalf("incomplete draft accepted")
	}

	byField := map[string]validation.Result{}
	for _, res := range results {
		byField[res.Field] = res
	}
	if !byField["nombre_completo"].Valid {
		t.Fatalf("name rejected: %+v", byField["nombre_completo"])
	}
	got := []string{byField["email"].Message, byField["plataformas"].Message}
	want := []string{validation.MessageRequired, validation.MessageCheckbox}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefinitionDoesNotTouchStorage(t *testing.T) {
	dir := t.TempDir()
	c := config.Default()
	c.Storage.Path = filepath.Join(dir, "state")

	def, err := loadDefinition(c)
	if err != nil {
		t.Fatalf("loadDefinition: %v", err)
	}
	if def.Name != form.FormName {
		t.Fatalf("definition = %q", def.Name)
	}
	if _, err := os.Stat(c.Storage.Path); !os.IsNotExist(err) {
		t.Fatalf("storage path created as a side effect (stat err %v)", err)
	}
}

func TestPrintResults(t *testing.T) {
	results := []validation.Result{
		{Field: "nombre_completo", Valid: true},
		{Field: "email", Valid: false, Rule: "email", Message: validation.MessageEmail},
	}

	var table bytes.Buffer
	if err := printResults(&table, results, false); err != nil {
		t.Fatalf("printResults table: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "FIELD") || !strings.Contains(lines[2], validation.MessageEmail) {
		t.Fatalf("unexpected table:\n%s", table.String())
	}

	var out bytes.Buffer
	if err := printResults(&out, results, true); err != nil {
		t.Fatalf("printResults json: %v", err)
	}
	var decoded []validation.Result
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(results, decoded); diff != "" {
		t.Fatalf("json round trip mismatch (-want +got):\n%s", diff)
	}
}
