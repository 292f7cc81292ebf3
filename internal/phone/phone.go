// Package phone extrae números telefónicos de celdas con texto libre.
package phone

import (
	"regexp"
	"strings"
)

// MinDigits longitud mínima de dígitos para aceptar un número.
const MinDigits = 7

var (
	// Separadores que pueden unir varios números en una misma celda:
	// signos de puntuación, un guion rodeado de espacios y las palabras
	// "y"/"o" entre espacios.
	dashSep   = regexp.MustCompile(`\s+[-–—]\s+`)
	symbolSep = regexp.MustCompile(`[,;|/\\\t]+`)
	wordSep   = regexp.MustCompile(`(?i)\s+(y|o)\s+`)
)

// Extract devuelve los números distintos encontrados en el valor crudo de
// una celda, ya normalizados a solo dígitos. El orden es el de la primera
// aparición en el texto. Los fragmentos con menos de MinDigits dígitos se
// descartan.
func Extract(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = dashSep.ReplaceAllString(normalized, "\n")
	normalized = symbolSep.ReplaceAllString(normalized, "\n")
	normalized = wordSep.ReplaceAllString(normalized, "\n")

	var phones []string
	seen := make(map[string]bool)

	for _, part := range strings.Split(normalized, "\n") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		digits := onlyDigits(part)
		if len(digits) < MinDigits {
			continue
		}
		if seen[digits] {
			continue
		}
		seen[digits] = true
		phones = append(phones, digits)
	}

	return phones
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
