// Package xlsxio lee la hoja de origen y la entrega como encabezados más
// filas de datos en el orden físico del archivo.
package xlsxio

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet contenido de la primera hoja del libro de origen.
type Sheet struct {
	Name    string
	Headers []string // encabezados ya recortados
	Rows    [][]string
}

// ReadFirstSheet abre el libro y recorre la primera hoja. La primera fila
// es siempre el encabezado.
func ReadFirstSheet(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error abriendo archivo %s: %v", path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("el libro %s no tiene hojas", path)
	}
	sheet := sheetList[0]

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error leyendo filas de %s: %v", path, err)
	}
	defer rows.Close()

	out := &Sheet{Name: sheet}

	if rows.Next() {
		headers, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("error leyendo encabezados: %v", err)
		}
		for i, h := range headers {
			headers[i] = strings.TrimSpace(h)
		}
		out.Headers = headers
	}

	for rows.Next() {
		row, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("error leyendo fila: %v", err)
		}
		out.Rows = append(out.Rows, row)
	}

	if len(out.Headers) == 0 && len(out.Rows) == 0 {
		return nil, fmt.Errorf("el archivo %s está vacío o no se pudo leer", path)
	}

	return out, nil
}
