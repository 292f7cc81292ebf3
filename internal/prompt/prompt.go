// Package prompt implementa las preguntas de consola del proceso.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter lee respuestas línea a línea. Se construye sobre io.Reader e
// io.Writer para poder probarse sin terminal.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// Ask imprime la pregunta y devuelve la respuesta recortada. Una entrada
// agotada (EOF) devuelve cadena vacía.
func (p *Prompter) Ask(question string) string {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// YesNo acepta S/SI/SÍ/Y/YES como afirmativo; cualquier otra cosa es no.
func (p *Prompter) YesNo(question string) bool {
	switch strings.ToUpper(p.Ask(question)) {
	case "S", "SI", "SÍ", "Y", "YES":
		return true
	}
	return false
}

// Int devuelve el número ingresado, o 0 si la respuesta está vacía o no es
// numérica. El segundo valor indica si hubo número válido.
func (p *Prompter) Int(question string) (int, bool) {
	ans := p.Ask(question)
	if ans == "" {
		return 0, false
	}
	n, err := strconv.Atoi(ans)
	if err != nil {
		return 0, false
	}
	return n, true
}
