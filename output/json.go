package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// JSONFormatter outputs tables as JSON Lines, one object per row with keys
// in column order
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes t as JSON Lines. Infinite and NaN floats are written as null.
func (j *JSONFormatter) Format(t *Table) error {
	keys := make([][]byte, len(t.Columns))
	for i, col := range t.Columns {
		key, err := json.Marshal(col)
		if err != nil {
			return err
		}
		keys[i] = key
	}

	bw := bufio.NewWriter(j.writer)
	for n, row := range t.Rows {
		_ = bw.WriteByte('{')
		for i, cell := range row {
			if i > 0 {
				_ = bw.WriteByte(',')
			}
			value, err := json.Marshal(jsonValue(cell))
			if err != nil {
				return fmt.Errorf("row %d column %s: %w", n, t.Columns[i], err)
			}
			_, _ = bw.Write(keys[i])
			_ = bw.WriteByte(':')
			_, _ = bw.Write(value)
		}
		_, _ = bw.WriteString("}\n")
	}
	return bw.Flush()
}

func jsonValue(v any) any {
	switch f := v.(type) {
	case float64:
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil
		}
	case float32:
		if math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
			return nil
		}
	}
	return v
}
