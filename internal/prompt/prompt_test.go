package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  hola  \n"), &out)

	assert.Equal(t, "hola", p.Ask("¿pregunta? "))
	assert.Equal(t, "¿pregunta? ", out.String())
}

func TestAskEOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})
	assert.Equal(t, "", p.Ask("¿? "))
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"S", true},
		{"si", true},
		{"SÍ", true},
		{"y", true},
		{"YES", true},
		{"n", false},
		{"no", false},
		{"", false},
		{"cualquier cosa", false},
	}
	for _, tt := range tests {
		p := New(strings.NewReader(tt.in+"\n"), &bytes.Buffer{})
		assert.Equal(t, tt.want, p.YesNo("¿? "), "respuesta %q", tt.in)
	}
}

func TestInt(t *testing.T) {
	p := New(strings.NewReader("42\n\nabc\n"), &bytes.Buffer{})

	n, ok := p.Int("¿? ")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	n, ok = p.Int("¿? ")
	assert.False(t, ok, "respuesta vacía")
	assert.Equal(t, 0, n)

	n, ok = p.Int("¿? ")
	assert.False(t, ok, "respuesta no numérica")
	assert.Equal(t, 0, n)
}
