package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/miguel-estebane/excel-clientes/internal/config"
)

// Encabezado fijo de los archivos exportados.
var exportHeader = []string{"nome", "numero", "e-mail"}

// WriteChunk crea un archivo nuevo con el encabezado fijo y las filas del
// lote, en la hoja de salida estándar.
func WriteChunk(c Chunk) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := config.ExportSheetName
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("error creando hoja %q: %w", sheet, err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("error eliminando hoja por defecto: %w", err)
	}

	for i, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("error escribiendo encabezado: %w", err)
		}
	}

	for i, row := range c.Rows {
		r := i + 2
		values := []string{row.Name, row.Phone, row.Email}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, r)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("error escribiendo fila %d: %w", r, err)
			}
		}
	}

	if err := f.SaveAs(c.Path); err != nil {
		return fmt.Errorf("error guardando archivo %s: %w", c.Path, err)
	}
	return nil
}
