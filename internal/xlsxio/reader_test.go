package xlsxio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "origen.xlsx")

	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadFirstSheet(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{" Nombre ", "Telefono"},
		{"Ana", "5551111222"},
		{"Beto", "5553334444"},
	})

	sheet, err := ReadFirstSheet(path)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", sheet.Name)
	assert.Equal(t, []string{"Nombre", "Telefono"}, sheet.Headers, "encabezados recortados")
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Ana", sheet.Rows[0][0])
	assert.Equal(t, "5553334444", sheet.Rows[1][1])
}

func TestReadFirstSheetMissingFile(t *testing.T) {
	_, err := ReadFirstSheet(filepath.Join(t.TempDir(), "no-existe.xlsx"))
	assert.Error(t, err)
}

func TestReadFirstSheetEmptyWorkbook(t *testing.T) {
	path := writeWorkbook(t, nil)
	_, err := ReadFirstSheet(path)
	assert.Error(t, err)
}
