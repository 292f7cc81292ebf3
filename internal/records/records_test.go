package records

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	rows := [][]string{
		{"x", "Ana", "5551111222"},
		{"x", "", ""},          // totalmente vacía: se descarta
		{"x", "  ", "   "},     // solo espacios: se descarta
		{"x", "Beto", ""},      // sin teléfono pero con nombre: se conserva
		{"x", "", "5553334444"}, // sin nombre pero con teléfono: se conserva
		{"x"},                  // fila corta: celdas faltantes cuentan como vacías
	}

	recs := Build(rows, 1, 2)

	require.Len(t, recs, 3)
	assert.Equal(t, Record{Name: "Ana", PhoneRaw: "5551111222", Row: 2}, recs[0])
	assert.Equal(t, Record{Name: "Beto", PhoneRaw: "", Row: 5}, recs[1])
	assert.Equal(t, Record{Name: "", PhoneRaw: "5553334444", Row: 6}, recs[2])
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassOK, Classify(Record{PhoneRaw: "555-123-4567"}))
	assert.Equal(t, ClassWarn, Classify(Record{PhoneRaw: ""}))
	assert.Equal(t, ClassWarn, Classify(Record{PhoneRaw: "   "}))
	assert.Equal(t, ClassBad, Classify(Record{PhoneRaw: "notaphone"}))
	assert.Equal(t, ClassBad, Classify(Record{PhoneRaw: "12345"}))

	// la clasificación nunca depende del nombre
	assert.Equal(t, ClassOK, Classify(Record{Name: "", PhoneRaw: "5551234567"}))
	assert.Equal(t, ClassBad, Classify(Record{Name: "Ana", PhoneRaw: "abc"}))
}

func makeRecords(n int) []Record {
	recs := make([]Record, n)
	for i := range recs {
		recs[i] = Record{
			Name:     fmt.Sprintf("Cliente %d", i+1),
			PhoneRaw: fmt.Sprintf("55512345%02d", i),
			Row:      i + FirstDataRow,
		}
	}
	return recs
}

func TestSelectRange(t *testing.T) {
	recs := makeRecords(10) // filas Excel 2..11

	t.Run("todo el rango con fin omitido", func(t *testing.T) {
		res := SelectRange(recs, 2, 0, false)
		require.Empty(t, res.Empty)
		assert.Len(t, res.Records, 10)
		assert.Equal(t, 2, res.StartRow)
		assert.Equal(t, 11, res.EndRow)
		assert.Empty(t, res.Notices)
	})

	t.Run("subrango", func(t *testing.T) {
		res := SelectRange(recs, 5, 7, true)
		require.Empty(t, res.Empty)
		require.Len(t, res.Records, 3)
		assert.Equal(t, 5, res.Records[0].Row)
		assert.Equal(t, 7, res.Records[2].Row)
		assert.Equal(t, 5, res.StartRow)
		assert.Equal(t, 7, res.EndRow)
	})

	t.Run("una sola fila", func(t *testing.T) {
		res := SelectRange(recs, 4, 4, true)
		require.Empty(t, res.Empty)
		require.Len(t, res.Records, 1)
		assert.Equal(t, 4, res.Records[0].Row)
	})

	t.Run("inicio invalido se corrige a 2", func(t *testing.T) {
		res := SelectRange(recs, 0, 0, false)
		require.Empty(t, res.Empty)
		assert.Len(t, res.Records, 10)
		require.Len(t, res.Notices, 1)
		assert.Contains(t, res.Notices[0], "fila 2")
	})

	t.Run("inicio fuera de rango", func(t *testing.T) {
		res := SelectRange(recs, 20, 0, false)
		assert.NotEmpty(t, res.Empty)
		assert.Empty(t, res.Records)
	})

	t.Run("rango invertido", func(t *testing.T) {
		res := SelectRange(recs, 5, 3, true)
		assert.NotEmpty(t, res.Empty)
		assert.Empty(t, res.Records)
	})

	t.Run("fin cero tecleado es rango invertido", func(t *testing.T) {
		// un 0 respondido como fila final no equivale a "hasta la última"
		res := SelectRange(recs, 2, 0, true)
		assert.NotEmpty(t, res.Empty)
		assert.Empty(t, res.Records)
	})

	t.Run("fin negativo tecleado es rango invertido", func(t *testing.T) {
		res := SelectRange(recs, 2, -3, true)
		assert.NotEmpty(t, res.Empty)
		assert.Empty(t, res.Records)
	})

	t.Run("fin excede el maximo y se ajusta", func(t *testing.T) {
		res := SelectRange(recs, 5, 99, true)
		require.Empty(t, res.Empty)
		require.Len(t, res.Notices, 1)
		assert.Contains(t, res.Notices[0], "excede el máximo")
		assert.Equal(t, 11, res.EndRow)
		assert.Len(t, res.Records, 7)
	})

	t.Run("orden preservado", func(t *testing.T) {
		res := SelectRange(recs, 3, 6, true)
		require.Empty(t, res.Empty)
		for i, rec := range res.Records {
			assert.Equal(t, i+3, rec.Row)
		}
	})
}
