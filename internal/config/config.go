package config

import (
	"flag"
	"fmt"
	"path/filepath"
)

// Valores fijos del proceso de división de clientes.
const (
	DefaultChunkSize = 50
	OutputDirName    = "exportados"

	StatusHeader      = "C_CONTACTADO"
	StatusExported    = "SI"
	StatusNotExported = "NO"

	ExportSheetName = "Hoja1"

	// Colores ARGB de los tres niveles de calidad.
	FillOK   = "FFC6EFCE" // verde suave: exportado
	FillWarn = "FFFFEB9C" // amarillo suave: teléfono vacío
	FillBad  = "FFFFC7CE" // rojo suave: teléfono inválido
)

// ExcludedDirs carpetas que el explorador nunca muestra.
var ExcludedDirs = map[string]bool{
	OutputDirName:  true,
	"node_modules": true,
	".git":         true,
}

type Config struct {
	InputFile string // archivo origen; si está vacío se abre el explorador
	RootDir   string // carpeta raíz del explorador
	OutputDir string // carpeta de salida de los lotes
	ChunkSize int    // registros por archivo exportado
	StartRow  int    // fila Excel inicial (0 = preguntar)
	EndRow    int    // fila Excel final (0 = preguntar)
	Overwrite bool   // sobrescribir archivos existentes sin preguntar
	LogLevel  string
	LogFormat string
}

func ParseFlags() (*Config, error) {

	cfg := &Config{}

	flag.StringVar(&cfg.InputFile, "file", "", "archivo Excel de origen (omite el explorador)")
	flag.StringVar(&cfg.RootDir, "dir", ".", "carpeta raíz para buscar archivos Excel")
	flag.StringVar(&cfg.OutputDir, "out", OutputDirName, "carpeta de salida de los lotes exportados")
	flag.IntVar(&cfg.ChunkSize, "chunk", DefaultChunkSize, "registros por archivo exportado")
	flag.IntVar(&cfg.StartRow, "start", 0, "fila Excel inicial (0 = preguntar)")
	flag.IntVar(&cfg.EndRow, "end", 0, "fila Excel final (0 = preguntar)")
	flag.BoolVar(&cfg.Overwrite, "overwrite", false, "sobrescribir archivos existentes sin preguntar")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "nivel de log: debug, info, warn, error")
	flag.StringVar(&cfg.LogFormat, "log-format", "text", "formato de log: text o json")

	flag.Parse()

	if cfg.ChunkSize < 1 {
		return nil, fmt.Errorf("el tamaño de lote debe ser al menos 1 (recibido %d)", cfg.ChunkSize)
	}

	// Normalización de rutas
	cfg.RootDir = filepath.Clean(cfg.RootDir)
	cfg.OutputDir = filepath.Clean(cfg.OutputDir)
	if cfg.InputFile != "" {
		cfg.InputFile = filepath.Clean(cfg.InputFile)
	}

	return cfg, nil
}
