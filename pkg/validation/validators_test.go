package validation_test

import (
	"testing"

	"github.com/goliatone/go-formctl/pkg/surface"
	"github.com/goliatone/go-formctl/pkg/validation"
)

func TestRequired(t *testing.T) {
	cases := map[string]bool{
		"":        false,
		"   ":     false,
		"\t\n":    false,
		"a":       true,
		"  Ana  ": true,
	}
	for in, want := range cases {
		if got := validation.Required(in); got != want {
			t.Errorf("Required(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestEmail(t *testing.T) {
	cases := map[string]bool{
		"ana@test.com":        true,
		"a.b+c@sub.domain.co": true,
		"x@y.z":               true,
		"not-an-email":        false,
		"ana@test":            false,
		"@test.com":           false,
		"ana@.com":            false,
		"ana @test.com":       false,
		"ana@ test.com":       false,
		" ana@test.com":       false,
		"ana@test.com ":       false,
		"ana@@test.com":       false,
		"ana@test.":           false,
		"ana\v@test.com":      false,
		"ana\ufeff@test.com":  false,
		"ana@test\u00a0.com":  false,
		"ana@test.com\u3000":  false,
		"ana\u0085@test.com":  true, // NEL is not whitespace in the browser
		"":                    false,
	}
	for in, want := range cases {
		if got := validation.Email(in); got != want {
			t.Errorf("Email(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPhone(t *testing.T) {
	cases := map[string]bool{
		"+57 300 1234567":     true,
		"+57 300 123 4567":    true,
		"+1-555-123-4567":     true,
		"+5511987654321":      true,
		"+1234567":            true,  // 1 digit code + 6 digits
		"+123456":             false, // too short
		"+123456789012345678": true,  // 4 + 14 digits
		"+1234567890123456789": false,
		"573001234567":        false,
		"+57 (300) 1234567":   false,
		"+57 300 abc4567":     false,
		"+57\ufeff3001234567":  true,
		"+57\u00a0300\t1234567": true,
		"+57\v300-1234567":    true,
		"+57\u00853001234567":  false,
		"":                    false,
		"+":                   false,
	}
	for in, want := range cases {
		if got := validation.Phone(in); got != want {
			t.Errorf("Phone(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestChoiceMade(t *testing.T) {
	mem := surface.NewMemory()
	mem.DeclareGroup("intereses", "estrategia", "ia")

	if validation.ChoiceMade(mem, "intereses") {
		t.Fatalf("empty group reported a choice")
	}
	if err := mem.Check("intereses", "ia"); err != nil {
		t.Fatalf("check: %v", err)
	}
	if !validation.ChoiceMade(mem, "intereses") {
		t.Fatalf("checked group reported no choice")
	}
	if validation.ChoiceMade(mem, "missing") {
		t.Fatalf("unknown group reported a choice")
	}
	if validation.ChoiceMade(nil, "intereses") {
		t.Fatalf("nil surface reported a choice")
	}
}
