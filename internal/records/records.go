// Package records arma los registros de origen a partir de las filas de la
// hoja y resuelve el rango de filas pedido por el operador.
package records

import (
	"fmt"
	"strings"

	"github.com/miguel-estebane/excel-clientes/internal/phone"
)

// Record un registro de la hoja de origen. Row es la fila real de Excel
// (la fila 1 es el encabezado, los datos empiezan en la 2).
type Record struct {
	Name     string
	PhoneRaw string
	Row      int
}

// FirstDataRow primera fila de Excel que puede contener datos.
const FirstDataRow = 2

// Build convierte las filas de datos en registros, conservando la fila real
// de Excel. Las filas con nombre y teléfono vacíos se descartan: no aportan
// nada y no deben aparecer en ningún rango ni exportación.
func Build(dataRows [][]string, idxName, idxPhone int) []Record {
	var out []Record
	for i, row := range dataRows {
		rec := Record{
			Name:     cellAt(row, idxName),
			PhoneRaw: cellAt(row, idxPhone),
			Row:      i + FirstDataRow,
		}
		if strings.TrimSpace(rec.Name) == "" && strings.TrimSpace(rec.PhoneRaw) == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Classification nivel de calidad de un registro.
type Classification int

const (
	ClassOK   Classification = iota // al menos un teléfono válido
	ClassWarn                       // celda de teléfono vacía
	ClassBad                        // hay contenido pero ningún teléfono válido
)

func (c Classification) String() string {
	switch c {
	case ClassOK:
		return "OK"
	case ClassWarn:
		return "WARN"
	default:
		return "BAD"
	}
}

// Classify determina el nivel de calidad de un registro. Solo depende de la
// celda de teléfono, nunca del nombre.
func Classify(r Record) Classification {
	phones := phone.Extract(r.PhoneRaw)
	if len(phones) > 0 {
		return ClassOK
	}
	if strings.TrimSpace(r.PhoneRaw) == "" {
		return ClassWarn
	}
	return ClassBad
}

// RangeResult rango efectivo de registros seleccionado.
type RangeResult struct {
	Records  []Record
	StartRow int      // fila Excel inicial efectiva
	EndRow   int      // fila Excel final efectiva (inclusive)
	Notices  []string // correcciones aplicadas a la entrada del operador
	Empty    string   // motivo por el que el rango quedó vacío ("" = hay datos)
}

// SelectRange recorta la lista de registros al rango de filas de Excel
// pedido. startRow menor a 2 (o 0) se corrige a la primera fila con datos.
// endRow solo cuenta si hasEnd es verdadero; sin fila final el rango llega
// hasta el último registro. Un fin numérico menor al inicio (incluidos 0 y
// negativos tecleados por el operador) es un rango invertido, no un "hasta
// el final". Un rango invertido o fuera de los datos devuelve Empty con el
// motivo.
func SelectRange(recs []Record, startRow, endRow int, hasEnd bool) RangeResult {
	res := RangeResult{}

	maxRow := len(recs) + 1 // última fila de Excel con datos

	if startRow < FirstDataRow {
		res.Notices = append(res.Notices,
			fmt.Sprintf("Inicio no válido. Se usará la primera fila con datos (fila %d).", FirstDataRow))
		startRow = FirstDataRow
	}

	startIndex := startRow - FirstDataRow
	if startIndex >= len(recs) {
		res.Empty = fmt.Sprintf("La fila inicial (%d) está fuera del rango de datos (máximo %d).", startRow, maxRow)
		return res
	}

	endExclusive := len(recs)
	if hasEnd {
		if endRow < startRow {
			res.Empty = "La fila final es menor que la inicial."
			return res
		}
		if endRow > maxRow {
			res.Notices = append(res.Notices,
				fmt.Sprintf("La fila final (%d) excede el máximo (%d). Se ajustará al máximo.", endRow, maxRow))
			endRow = maxRow
		}
		endExclusive = endRow - 1
		if endExclusive > len(recs) {
			endExclusive = len(recs)
		}
		if endExclusive <= startIndex {
			res.Empty = "El rango calculado está vacío."
			return res
		}
	}

	res.Records = recs[startIndex:endExclusive]
	res.StartRow = startRow
	res.EndRow = endExclusive + 1
	return res
}
