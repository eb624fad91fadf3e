package validation

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-formctl/pkg/surface"
)

// Messages shown next to invalid fields.
const (
	MessageRequired = "Este campo es obligatorio"
	MessageEmail    = "Por favor, introduce un correo electrónico válido"
	MessagePhone    = "Por favor, introduce un WhatsApp válido con código de país (ej: +57 300 123 4567)"
	MessageCheckbox = "Por favor, selecciona al menos una opción"
	MessageRadio    = "Por favor, selecciona una opción"
)

// whitespace is the ECMAScript \s class. RE2's \s only covers ASCII
// spacing, and unicode.IsSpace differs on U+0085 and U+FEFF.
const whitespace = `\t\n\x{000B}\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	emailPattern    = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`)
	phonePattern    = regexp.MustCompile(`^\+\d{1,4}\d{6,14}$`)
	phoneSeparators = regexp.MustCompile(`[` + whitespace + `-]`)
)

// Required is true when value has content after trimming.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// Email accepts local@domain.tld shaped values with no whitespace anywhere.
func Email(value string) bool {
	return emailPattern.MatchString(value)
}

// Phone accepts "+" followed by a 1-4 digit country code and a 6-14 digit
// subscriber number once spaces and hyphens are removed. Since both parts are
// plain digits this amounts to 7-18 digits after the plus sign.
func Phone(value string) bool {
	return phonePattern.MatchString(stripPhone(value))
}

func stripPhone(value string) string {
	return phoneSeparators.ReplaceAllString(value, "")
}

// ChoiceMade is true when at least one input of group is selected.
func ChoiceMade(s surface.Surface, group string) bool {
	if s == nil {
		return false
	}
	return len(s.Selected(group)) > 0
}
