// Package browse implementa el explorador de archivos Excel: listado de
// carpetas y archivos candidatos, y la selección interactiva del origen.
package browse

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/miguel-estebane/excel-clientes/internal/config"
	"github.com/miguel-estebane/excel-clientes/internal/prompt"
)

// Listing contenido navegable de una carpeta.
type Listing struct {
	Dirs  []string
	Files []string
}

// IsExcelFile acepta .xlsx/.xls/.xlsm y descarta los temporales de Excel.
func IsExcelFile(name string) bool {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "~$") {
		return false
	}
	return strings.HasSuffix(lower, ".xlsx") ||
		strings.HasSuffix(lower, ".xls") ||
		strings.HasSuffix(lower, ".xlsm")
}

// List devuelve las subcarpetas (sin las excluidas) y los archivos Excel de
// una carpeta, ordenados por nombre.
func List(dir string) (*Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el directorio %s: %v", dir, err)
	}

	l := &Listing{}
	for _, e := range entries {
		if e.IsDir() {
			if config.ExcludedDirs[e.Name()] {
				continue
			}
			l.Dirs = append(l.Dirs, e.Name())
		} else if IsExcelFile(e.Name()) {
			l.Files = append(l.Files, e.Name())
		}
	}

	sort.Strings(l.Dirs)
	sort.Strings(l.Files)
	return l, nil
}

// Pick navega desde root hasta que el operador elige un archivo Excel.
// Las opciones se eligen por número; ".." sube un nivel.
func Pick(p *prompt.Prompter, out io.Writer, root string) (string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	current := root

	for {
		l, err := List(current)
		if err != nil {
			return "", err
		}

		rel, _ := filepath.Rel(root, current)
		if rel == "" {
			rel = "."
		}
		fmt.Fprintf(out, "\nCarpeta: %s\n", rel)

		type option struct {
			label string
			dir   bool
			name  string
			up    bool
		}
		var options []option

		if current != root {
			options = append(options, option{label: "[..] Subir un nivel", up: true})
		}
		for _, d := range l.Dirs {
			options = append(options, option{label: "[DIR] " + d, dir: true, name: d})
		}
		for _, f := range l.Files {
			options = append(options, option{label: f, name: f})
		}

		if len(options) == 0 {
			return "", fmt.Errorf("no hay archivos Excel ni carpetas en %s", current)
		}

		for i, o := range options {
			fmt.Fprintf(out, "  %2d) %s\n", i+1, o.label)
		}
		if len(l.Files) == 0 {
			fmt.Fprintln(out, "  (No hay Excel aquí; entra a otra carpeta)")
		}

		ans := p.Ask("Selecciona el Excel (número): ")
		n, err := strconv.Atoi(ans)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(out, "Opción no válida.")
			continue
		}

		o := options[n-1]
		switch {
		case o.up:
			current = filepath.Dir(current)
		case o.dir:
			current = filepath.Join(current, o.name)
		default:
			return filepath.Join(current, o.name), nil
		}
	}
}
