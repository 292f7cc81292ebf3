package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/miguel-estebane/excel-clientes/internal/config"
	"github.com/miguel-estebane/excel-clientes/internal/logging"
	"github.com/miguel-estebane/excel-clientes/internal/pipeline"
	"github.com/miguel-estebane/excel-clientes/internal/prompt"
)

type Output struct {
	Success      bool     `json:"success"`
	RunID        string   `json:"run_id"`
	InputFile    string   `json:"input_file,omitempty"`
	OutputFiles  []string `json:"output_files,omitempty"`
	ExportedRows int      `json:"exported_rows"`
	RowsOK       int      `json:"rows_ok"`
	RowsWarn     int      `json:"rows_warn"`
	RowsBad      int      `json:"rows_bad"`
	Warnings     []string `json:"warnings,omitempty"`
	Error        string   `json:"error,omitempty"`
	Duration     string   `json:"duration"`
}

func main() {

	start := time.Now()
	runID := uuid.NewString()

	cfg, err := config.ParseFlags()
	if err != nil {
		emitJSON(Output{
			Success:  false,
			RunID:    runID,
			Error:    fmt.Sprintf("Error de configuración: %v", err),
			Duration: time.Since(start).String(),
		})
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	logger := slog.Default().With("run_id", runID)

	p := pipeline.New(cfg, prompt.New(os.Stdin, os.Stdout), os.Stdout, logger)

	res, err := p.Run()
	out := Output{
		Success:      err == nil,
		RunID:        runID,
		InputFile:    res.InputFile,
		OutputFiles:  res.OutputFiles,
		ExportedRows: res.ExportedRows,
		RowsOK:       res.RowsOK,
		RowsWarn:     res.RowsWarn,
		RowsBad:      res.RowsBad,
		Warnings:     res.Warnings,
		Duration:     time.Since(start).String(),
	}
	if err != nil {
		out.Error = err.Error()
	}
	emitJSON(out)

	if err != nil {
		os.Exit(1)
	}
}

func emitJSON(out Output) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Error al emitir JSON: %v", err)
	}
}
