// Package pipeline encadena las etapas del proceso: lectura, detección de
// columnas, rango, clasificación, exportación por lotes y marcado del
// archivo original.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/miguel-estebane/excel-clientes/internal/annotate"
	"github.com/miguel-estebane/excel-clientes/internal/browse"
	"github.com/miguel-estebane/excel-clientes/internal/config"
	"github.com/miguel-estebane/excel-clientes/internal/detect"
	"github.com/miguel-estebane/excel-clientes/internal/export"
	"github.com/miguel-estebane/excel-clientes/internal/prompt"
	"github.com/miguel-estebane/excel-clientes/internal/records"
	"github.com/miguel-estebane/excel-clientes/internal/xlsxio"
)

type Pipeline struct {
	Cfg    *config.Config
	Prompt *prompt.Prompter
	Out    io.Writer // consola del operador (explorador y avisos)
	Log    *slog.Logger
	Now    func() time.Time
}

// Result resumen de una corrida completa.
type Result struct {
	InputFile    string
	OutputFiles  []string
	ExportedRows int
	RowsOK       int
	RowsWarn     int
	RowsBad      int
	Warnings     []string
}

func New(cfg *config.Config, p *prompt.Prompter, out io.Writer, log *slog.Logger) *Pipeline {
	return &Pipeline{Cfg: cfg, Prompt: p, Out: out, Log: log, Now: time.Now}
}

// Run ejecuta el proceso completo. Un rango vacío no es un error: devuelve
// un Result con la advertencia y ningún archivo escrito. Los errores de
// marcado llegan con el Result parcial, porque los lotes ya exportados no
// se revierten.
func (p *Pipeline) Run() (*Result, error) {
	res := &Result{}

	inputFile, err := p.resolveInput()
	if err != nil {
		return res, err
	}
	res.InputFile = inputFile
	p.Log.Info("archivo seleccionado", "file", inputFile)

	sheet, err := xlsxio.ReadFirstSheet(inputFile)
	if err != nil {
		return res, err
	}

	cols, ok := detect.DetectColumns(sheet.Headers)
	if !ok {
		return res, fmt.Errorf("no se pudieron detectar las columnas requeridas; encabezados encontrados: %v", sheet.Headers)
	}
	p.Log.Info("columna NOMBRE detectada", "header", sheet.Headers[cols.Name.Index], "reason", cols.Name.Reason)
	p.Log.Info("columna TELEFONO detectada", "header", sheet.Headers[cols.Phone.Index], "reason", cols.Phone.Reason)

	recs := records.Build(sheet.Rows, cols.Name.Index, cols.Phone.Index)
	if len(recs) == 0 {
		return res, fmt.Errorf("no hay datos válidos para procesar")
	}
	maxRow := len(recs) + 1
	p.Log.Info("filas con datos", "count", len(recs), "max_row", maxRow)

	startRow, endRow, hasEnd := p.resolveRange(maxRow)

	rng := records.SelectRange(recs, startRow, endRow, hasEnd)
	for _, n := range rng.Notices {
		p.Log.Warn(n)
		res.Warnings = append(res.Warnings, n)
	}
	if rng.Empty != "" {
		p.Log.Warn(rng.Empty)
		res.Warnings = append(res.Warnings, rng.Empty)
		return res, nil
	}
	p.Log.Info("rango a procesar", "start", rng.StartRow, "end", rng.EndRow, "records", len(rng.Records))

	markCols := []int{cols.Name.Index + 1, cols.Phone.Index + 1}
	plan := annotate.BuildPlan(sheet.Name, markCols, rng.Records)
	res.RowsOK = len(plan.OK)
	res.RowsWarn = len(plan.Warn)
	res.RowsBad = len(plan.Bad)

	rows := export.Expand(rng.Records)
	res.ExportedRows = len(rows)

	if len(rows) == 0 {
		msg := "No hubo teléfonos válidos para exportar en ese rango."
		p.Log.Warn(msg)
		res.Warnings = append(res.Warnings, msg)
	} else {
		files, err := p.exportChunks(rows, inputFile, rng.StartRow, rng.EndRow)
		res.OutputFiles = files
		if err != nil {
			return res, err
		}
	}

	// Aunque no se haya exportado nada, el rango procesado se marca igual
	// (WARN/BAD con C_CONTACTADO=NO).
	if err := p.applyAnnotation(inputFile, plan); err != nil {
		return res, err
	}
	p.Log.Info("marcado completado",
		"ok", res.RowsOK, "warn", res.RowsWarn, "bad", res.RowsBad,
		"status_col", config.StatusHeader)

	return res, nil
}

func (p *Pipeline) resolveInput() (string, error) {
	if p.Cfg.InputFile != "" {
		if _, err := os.Stat(p.Cfg.InputFile); err != nil {
			return "", fmt.Errorf("no se encontró el archivo de origen: %s", p.Cfg.InputFile)
		}
		return p.Cfg.InputFile, nil
	}
	return browse.Pick(p.Prompt, p.Out, p.Cfg.RootDir)
}

// resolveRange toma el rango de los flags o lo pregunta. Un inicio no
// numérico queda en 0 y la selección lo corrige. Para el fin se conserva
// si hubo respuesta numérica o no: Enter o texto cuentan como "hasta la
// última fila", pero un número tecleado (aunque sea 0) se valida como fila
// final real.
func (p *Pipeline) resolveRange(maxRow int) (startRow, endRow int, hasEnd bool) {
	startRow = p.Cfg.StartRow
	if startRow == 0 {
		startRow, _ = p.Prompt.Int("¿Desde qué número de fila de EXCEL quieres empezar? (ej. 2, 1400): ")
	}

	endRow = p.Cfg.EndRow
	hasEnd = endRow != 0
	if !hasEnd {
		endRow, hasEnd = p.Prompt.Int(fmt.Sprintf("¿Hasta qué número de fila de EXCEL quieres procesar? (Enter = hasta la última, máximo %d): ", maxRow))
	}
	return startRow, endRow, hasEnd
}

func (p *Pipeline) exportChunks(rows []export.Row, inputFile string, startRow, endRow int) ([]string, error) {
	if err := os.MkdirAll(p.Cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creando carpeta de salida %s: %v", p.Cfg.OutputDir, err)
	}

	base := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	date := p.Now()

	chunks := export.Split(rows, p.Cfg.ChunkSize)
	expected := export.ExpectedPaths(p.Cfg.OutputDir, base, date, startRow, endRow, len(chunks))

	overwrite := p.Cfg.Overwrite
	if !overwrite && anyExists(expected) {
		overwrite = p.Prompt.YesNo("Ya existen archivos con ese origen/fecha/rango. ¿Deseas sobrescribirlos? (S/N): ")
		p.Log.Info("colisión de nombres detectada", "overwrite", overwrite)
	}

	resolved := export.ResolvePaths(chunks, p.Cfg.OutputDir, base, date, startRow, endRow, overwrite, fileExists)

	var files []string
	for _, c := range resolved {
		if err := export.WriteChunk(c); err != nil {
			return files, err
		}
		files = append(files, c.Path)
		p.Log.Info("lote generado", "file", c.Path, "records", len(c.Rows))
	}
	return files, nil
}

func (p *Pipeline) applyAnnotation(inputFile string, plan annotate.Plan) error {
	f, err := excelize.OpenFile(inputFile)
	if err != nil {
		return fmt.Errorf("error abriendo archivo original %s: %v", inputFile, err)
	}
	defer f.Close()

	if err := annotate.Apply(f, plan); err != nil {
		return err
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("error guardando archivo original %s (¿está abierto en Excel?): %v", inputFile, err)
	}
	return nil
}

func anyExists(paths []string) bool {
	for _, p := range paths {
		if fileExists(p) {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
