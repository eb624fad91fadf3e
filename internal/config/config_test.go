package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	doc := `
storage:
  backend: SQLite
  path: /tmp/forms.db
  key: custom_key
submit:
  delay: 250ms
log:
  level: DEBUG
  file: /tmp/formctl.log
analytics:
  export: events.ndjson
`
	cfg, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := Default()
	want.Storage = StorageConfig{Backend: "sqlite", Path: "/tmp/forms.db", Key: "custom_key"}
	want.Submit.Delay = 250 * time.Millisecond
	want.Log.Level = "debug"
	want.Log.File = "/tmp/formctl.log"
	want.Analytics.Export = "events.ndjson"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("storage:\n  bucket: x\n"))
	if err == nil || !strings.Contains(err.Error(), "config: decode") {
		t.Fatalf("Parse error = %v, want a decode error", err)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "unknown backend", doc: "storage:\n  backend: redis\n", want: "Backend"},
		{name: "missing path", doc: "storage:\n  backend: file\n  path: \"\"\n", want: "Path"},
		{name: "negative delay", doc: "submit:\n  delay: -1s\n", want: "Delay"},
		{name: "bad level", doc: "log:\n  level: trace\n", want: "Level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Parse error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestMemoryBackendNeedsNoPath(t *testing.T) {
	cfg, err := Parse(strings.NewReader("storage:\n  backend: memory\n  path: \"\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Storage.Backend != "memory" {
		t.Fatalf("backend = %q", cfg.Storage.Backend)
	}
}

func TestLoadAppliesOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formctl.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, WithVerbose(true), WithStorage("memory", ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := []string{cfg.Log.Level, cfg.Storage.Backend, cfg.Storage.Path}
	if diff := cmp.Diff([]string{"debug", "memory", ".formctl"}, got); diff != "" {
		t.Fatalf("overrides mismatch (-want +got):\n%s", diff)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load without path: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
