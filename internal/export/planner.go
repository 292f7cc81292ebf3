// Package export expande los registros en filas de contacto, los parte en
// lotes de tamaño fijo y resuelve los nombres de archivo de salida.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/miguel-estebane/excel-clientes/internal/phone"
	"github.com/miguel-estebane/excel-clientes/internal/records"
)

// NamePlaceholder nombre sustituto cuando el registro no trae nombre.
const NamePlaceholder = "Sin nombre"

// Row una fila del archivo exportado.
type Row struct {
	Name  string
	Phone string
	Email string
}

// Chunk un lote de filas con su número de secuencia y ruta de salida.
type Chunk struct {
	Seq  int // secuencia 1-based dentro de la corrida
	Path string
	Rows []Row
}

// Expand genera una fila por cada teléfono extraído de cada registro. El
// primer teléfono lleva el nombre tal cual; los siguientes llevan el sufijo
// " (k)". Los registros sin teléfonos válidos no aportan filas.
func Expand(recs []records.Record) []Row {
	var out []Row
	for _, rec := range recs {
		baseName := strings.TrimSpace(rec.Name)
		if baseName == "" {
			baseName = NamePlaceholder
		}
		for k, num := range phone.Extract(rec.PhoneRaw) {
			name := baseName
			if k > 0 {
				name = fmt.Sprintf("%s (%d)", baseName, k+1)
			}
			out = append(out, Row{Name: name, Phone: num})
		}
	}
	return out
}

// Split parte las filas en lotes consecutivos de a lo sumo size filas,
// conservando el orden.
func Split(rows []Row, size int) [][]Row {
	var chunks [][]Row
	for i := 0; i < len(rows); i += size {
		end := i + size
		if end > len(rows) {
			end = len(rows)
		}
		chunks = append(chunks, rows[i:end])
	}
	return chunks
}

// FileName arma el nombre de un lote:
// <base>_<DD-MM-YYYY>_(<inicio>-<fin>)_<NN>.xlsx
// El rango es el de toda la corrida, no el del lote.
func FileName(base string, date time.Time, startRow, endRow, seq int) string {
	return fmt.Sprintf("%s_%s_(%d-%d)_%02d.xlsx",
		base, date.Format("02-01-2006"), startRow, endRow, seq)
}

// ExpectedPaths rutas que la corrida escribiría con numeración consecutiva
// desde 01. Sirve para detectar colisiones antes de escribir.
func ExpectedPaths(dir, base string, date time.Time, startRow, endRow, chunks int) []string {
	paths := make([]string, 0, chunks)
	for k := 1; k <= chunks; k++ {
		paths = append(paths, filepath.Join(dir, FileName(base, date, startRow, endRow, k)))
	}
	return paths
}

// ResolvePaths asigna secuencia y ruta definitiva a cada lote. Si overwrite
// es falso, la secuencia de cada lote avanza hasta encontrar un nombre
// libre, de modo que nunca se pisa un archivo existente.
func ResolvePaths(chunks [][]Row, dir, base string, date time.Time, startRow, endRow int, overwrite bool, exists func(string) bool) []Chunk {
	out := make([]Chunk, 0, len(chunks))
	seq := 1
	for _, rows := range chunks {
		var path string
		for {
			path = filepath.Join(dir, FileName(base, date, startRow, endRow, seq))
			if overwrite || !exists(path) {
				break
			}
			seq++
		}
		out = append(out, Chunk{Seq: seq, Path: path, Rows: rows})
		seq++
	}
	return out
}
