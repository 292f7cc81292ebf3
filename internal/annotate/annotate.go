// Package annotate marca en el archivo original la calidad de cada fila
// procesada: relleno de color en las columnas afectadas y un valor SI/NO en
// la columna de control. Las marcas y valores previos nunca se pisan, así
// que repetir una corrida sobre el mismo rango no cambia nada.
package annotate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/miguel-estebane/excel-clientes/internal/config"
	"github.com/miguel-estebane/excel-clientes/internal/records"
)

// Plan filas a marcar por nivel de calidad, más las columnas a rellenar.
type Plan struct {
	Sheet    string
	MarkCols []int // columnas 1-based a rellenar (nombre y teléfono)
	OK       []int // filas Excel con teléfono válido
	Warn     []int // filas Excel con teléfono vacío
	Bad      []int // filas Excel con contenido inválido
}

// BuildPlan clasifica los registros del rango y arma el plan de marcado.
func BuildPlan(sheet string, markCols []int, recs []records.Record) Plan {
	p := Plan{Sheet: sheet, MarkCols: dedupeCols(markCols)}
	for _, rec := range recs {
		switch records.Classify(rec) {
		case records.ClassOK:
			p.OK = append(p.OK, rec.Row)
		case records.ClassWarn:
			p.Warn = append(p.Warn, rec.Row)
		default:
			p.Bad = append(p.Bad, rec.Row)
		}
	}
	return p
}

func dedupeCols(cols []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, c := range cols {
		if c < 1 || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

type styleKey struct {
	base  int
	color string
}

type applier struct {
	f          *excelize.File
	sheet      string
	statusCol  int
	styleCache map[styleKey]int
}

// Apply ejecuta el plan sobre un libro ya abierto. Garantiza la columna de
// control, rellena solo celdas sin relleno previo y escribe SI/NO solo en
// celdas de control vacías. El orden de aplicación es OK, WARN, BAD.
func Apply(f *excelize.File, p Plan) error {
	sheet, err := resolveSheet(f, p.Sheet)
	if err != nil {
		return err
	}

	a := &applier{f: f, sheet: sheet, styleCache: make(map[styleKey]int)}

	if err := a.ensureStatusColumn(); err != nil {
		return err
	}

	if err := a.markRows(p.OK, p.MarkCols, config.FillOK, config.StatusExported); err != nil {
		return err
	}
	if err := a.markRows(p.Warn, p.MarkCols, config.FillWarn, config.StatusNotExported); err != nil {
		return err
	}
	if err := a.markRows(p.Bad, p.MarkCols, config.FillBad, config.StatusNotExported); err != nil {
		return err
	}

	return nil
}

// resolveSheet usa la hoja pedida si existe; si no, la primera del libro.
func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("el libro no tiene hojas")
	}
	for _, s := range sheets {
		if s == name {
			return s, nil
		}
	}
	if name != "" {
		return "", fmt.Errorf("no se encontró la hoja %q en el libro", name)
	}
	return sheets[0], nil
}

// ensureStatusColumn localiza la columna de control por match exacto (sin
// distinguir mayúsculas) o la agrega como última columna. La columna nueva
// va después de la fila más ancha de la hoja, no solo del encabezado: una
// fila de datos más ancha que el encabezado no debe quedar debajo.
func (a *applier) ensureStatusColumn() error {
	rows, err := a.f.GetRows(a.sheet)
	if err != nil {
		return fmt.Errorf("error leyendo encabezados: %w", err)
	}

	var headers []string
	if len(rows) > 0 {
		headers = rows[0]
	}

	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), config.StatusHeader) {
			a.statusCol = i + 1
			return nil
		}
	}

	width := len(headers)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	a.statusCol = width + 1
	cell, _ := excelize.CoordinatesToCellName(a.statusCol, 1)
	if err := a.f.SetCellValue(a.sheet, cell, config.StatusHeader); err != nil {
		return fmt.Errorf("error agregando columna %s: %w", config.StatusHeader, err)
	}
	return nil
}

func (a *applier) markRows(rowNums, cols []int, color, status string) error {
	for _, r := range rowNums {
		if r < records.FirstDataRow {
			continue
		}

		for _, c := range cols {
			cell, _ := excelize.CoordinatesToCellName(c, r)
			filled, err := a.hasFill(cell)
			if err != nil {
				return err
			}
			if filled {
				continue // respeta marcas previas
			}
			if err := a.setFill(cell, color); err != nil {
				return err
			}
		}

		statusCell, _ := excelize.CoordinatesToCellName(a.statusCol, r)
		current, err := a.f.GetCellValue(a.sheet, statusCell)
		if err != nil {
			return fmt.Errorf("error leyendo celda %s: %w", statusCell, err)
		}
		if strings.TrimSpace(current) != "" {
			continue // conserva el historial de contacto
		}
		if err := a.f.SetCellValue(a.sheet, statusCell, status); err != nil {
			return fmt.Errorf("error escribiendo celda %s: %w", statusCell, err)
		}
	}
	return nil
}

func (a *applier) hasFill(cell string) (bool, error) {
	styleID, err := a.f.GetCellStyle(a.sheet, cell)
	if err != nil {
		return false, fmt.Errorf("error leyendo estilo de %s: %w", cell, err)
	}
	if styleID == 0 {
		return false, nil
	}
	style, err := a.f.GetStyle(styleID)
	if err != nil || style == nil {
		return false, nil
	}
	if style.Fill.Type == "gradient" {
		return true, nil
	}
	return style.Fill.Type == "pattern" && style.Fill.Pattern > 0, nil
}

// setFill aplica el relleno del nivel conservando el resto del estilo que
// ya tenga la celda.
func (a *applier) setFill(cell, color string) error {
	baseID, err := a.f.GetCellStyle(a.sheet, cell)
	if err != nil {
		return fmt.Errorf("error leyendo estilo de %s: %w", cell, err)
	}

	key := styleKey{base: baseID, color: color}
	newID, ok := a.styleCache[key]
	if !ok {
		style := &excelize.Style{}
		if baseID != 0 {
			if base, err := a.f.GetStyle(baseID); err == nil && base != nil {
				style = base
			}
		}
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}

		newID, err = a.f.NewStyle(style)
		if err != nil {
			return fmt.Errorf("error creando estilo de relleno: %w", err)
		}
		a.styleCache[key] = newID
	}

	if err := a.f.SetCellStyle(a.sheet, cell, cell, newID); err != nil {
		return fmt.Errorf("error aplicando relleno en %s: %w", cell, err)
	}
	return nil
}
