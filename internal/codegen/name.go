package codegen

import (
	"fmt"
	"strings"
)

// ModelName is a validated PascalCase plugin model name (e.g. "EnergyCost").
// All generated identifiers and file names derive from it.
type ModelName string

// ParseModelName validates that s is PascalCase: non-empty, first rune an
// uppercase ASCII letter, remaining runes ASCII letters or digits.
func ParseModelName(s string) (ModelName, error) {
	if s == "" {
		return "", fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	for i, r := range s {
		if i == 0 {
			if r < 'A' || r > 'Z' {
				return "", fmt.Errorf("%w: %q does not start with an uppercase letter", ErrInvalidName, s)
			}
			continue
		}
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit {
			return "", fmt.Errorf("%w: %q contains invalid character %q", ErrInvalidName, s, r)
		}
	}
	return ModelName(s), nil
}

// Pascal returns the name as given, used verbatim in generated type names.
func (n ModelName) Pascal() string {
	return string(n)
}

// Snake returns the lower snake_case form used for directory and file names
// (e.g. "EnergyCost" -> "energy_cost").
func (n ModelName) Snake() string {
	var sb strings.Builder
	for i, r := range string(n) {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r - 'A' + 'a')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Package returns the flat lowercase form used as the generated Go package
// name (e.g. "EnergyCost" -> "energycost").
func (n ModelName) Package() string {
	return strings.ReplaceAll(n.Snake(), "_", "")
}
