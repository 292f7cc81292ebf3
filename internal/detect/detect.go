// Package detect localiza las columnas de nombre y teléfono a partir de los
// encabezados de la hoja, con niveles de coincidencia cada vez más laxos.
package detect

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match columna encontrada y el motivo del nivel que la eligió.
type Match struct {
	Index  int    // índice 0-based dentro de los encabezados
	Reason string // descripción del nivel de coincidencia
}

// Columns resultado de la detección completa.
type Columns struct {
	Name  Match
	Phone Match
}

// Listas ordenadas de coincidencia. El orden es parte del contrato: el
// primer nivel que acierta gana.
var (
	nameSynonyms = []string{
		"razon social",
		"nombre o razon social",
		"cliente",
		"empresa",
		"contacto",
		"responsable",
		"titular",
	}

	namePartials = []string{
		"razon social",
		"cliente",
		"empresa",
		"contacto",
		"responsable",
		"titular",
	}

	phoneExact    = []string{"telefono", "teléfono", "celular", "whatsapp", "movil", "móvil", "tel"}
	phoneContains = []string{"telefono", "celular", "whatsapp", "movil", "tel", "contacto"}

	emailBlacklist = []string{"correo", "email", "e-mail", "mail"}
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeHeader pasa el encabezado a minúsculas, quita acentos y colapsa
// los espacios internos a uno solo.
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	if out, _, err := transform.String(stripMarks, h); err == nil {
		h = out
	}
	return strings.Join(strings.Fields(h), " ")
}

func normalizeAll(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = NormalizeHeader(h)
	}
	return out
}

// FindNameColumn busca la columna de nombre/razón social. Las columnas que
// contienen "rfc" nunca se aceptan, aunque contengan "nombre".
func FindNameColumn(headers []string) (Match, bool) {
	hs := normalizeAll(headers)

	// 1) match exacto "nombre"
	for i, hn := range hs {
		if hn == "nombre" {
			return Match{Index: i, Reason: `match exacto: "NOMBRE"`}, true
		}
	}

	// 2) contiene "nombre" (excluyendo RFC)
	for i, hn := range hs {
		if hn == "" || strings.Contains(hn, "rfc") {
			continue
		}
		if strings.Contains(hn, "nombre") {
			return Match{Index: i, Reason: `contiene "NOMBRE"`}, true
		}
	}

	// 3) sinónimos fuertes, exactos, en orden de lista
	for _, syn := range nameSynonyms {
		for i, hn := range hs {
			if hn == syn {
				return Match{Index: i, Reason: fmt.Sprintf("sinónimo fuerte: %q", syn)}, true
			}
		}
	}

	// 4) coincidencia parcial, encabezado por encabezado
	for i, hn := range hs {
		if hn == "" || strings.Contains(hn, "rfc") {
			continue
		}
		for _, p := range namePartials {
			if strings.Contains(hn, p) {
				return Match{Index: i, Reason: fmt.Sprintf("coincidencia parcial: %q", p)}, true
			}
		}
	}

	return Match{}, false
}

// FindPhoneColumn busca la columna de teléfono/celular. Cualquier encabezado
// que parezca de correo queda vetado en todos los niveles.
func FindPhoneColumn(headers []string) (Match, bool) {
	hs := normalizeAll(headers)

	// 1) match exacto por lista de prioridad
	for _, p := range phoneExact {
		pn := NormalizeHeader(p)
		for i, hn := range hs {
			if hn != pn {
				continue
			}
			if isEmailHeader(hn) {
				continue
			}
			return Match{Index: i, Reason: fmt.Sprintf("match exacto: %q", p)}, true
		}
	}

	// 2) contiene el término, encabezado por encabezado
	for i, hn := range hs {
		if hn == "" || isEmailHeader(hn) {
			continue
		}
		for _, p := range phoneContains {
			if strings.Contains(hn, p) {
				return Match{Index: i, Reason: fmt.Sprintf("contiene: %q", p)}, true
			}
		}
	}

	return Match{}, false
}

func isEmailHeader(hn string) bool {
	for _, b := range emailBlacklist {
		if strings.Contains(hn, b) {
			return true
		}
	}
	return false
}

// DetectColumns combina ambas búsquedas; falla si cualquiera de las dos no
// encuentra columna.
func DetectColumns(headers []string) (Columns, bool) {
	name, okName := FindNameColumn(headers)
	phone, okPhone := FindPhoneColumn(headers)
	if !okName || !okPhone {
		return Columns{}, false
	}
	return Columns{Name: name, Phone: phone}, true
}
