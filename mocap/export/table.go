package export

import (
	"bufio"
	"strconv"
)

// tableWriter emits tab-separated rows.
type tableWriter struct {
	w   *bufio.Writer
	buf []byte
}

func newTableWriter(w *bufio.Writer) *tableWriter {
	return &tableWriter{w: w, buf: make([]byte, 0, 256)}
}

func (t *tableWriter) strings(fields ...string) {
	t.buf = t.buf[:0]
	for i, f := range fields {
		if i > 0 {
			t.buf = append(t.buf, '\t')
		}
		t.buf = append(t.buf, f...)
	}
	t.buf = append(t.buf, '\n')
	t.w.Write(t.buf)
}

// row writes lead followed by values formatted with the shortest
// representation that round-trips at the given bit size.
func (t *tableWriter) row(lead []string, values []float64, bitSize int) {
	t.buf = t.buf[:0]
	for i, f := range lead {
		if i > 0 {
			t.buf = append(t.buf, '\t')
		}
		t.buf = append(t.buf, f...)
	}
	for i, v := range values {
		if i > 0 || len(lead) > 0 {
			t.buf = append(t.buf, '\t')
		}
		t.buf = strconv.AppendFloat(t.buf, v, 'g', -1, bitSize)
	}
	t.buf = append(t.buf, '\n')
	t.w.Write(t.buf)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
