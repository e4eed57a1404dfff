package output

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olekukonko/tablewriter"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	PlayerID string  `csv:"player_id"`
	HR       uint32  `csv:"HR"`
	ERA      float64 `csv:"ERA"`
	GS       bool    `csv:"GS"`
	Note     string  `csv:"note"`
	Team     string
	Skip     string `csv:"-"`
}

func sampleTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := FromRecords([]line{
		{PlayerID: "ruthba01", HR: 60, ERA: 2.5, GS: true, Note: "=SUM(A1)", Team: "NYA"},
		{PlayerID: "mopup01", ERA: math.Inf(1), Note: "-5 runs"},
		{PlayerID: "gehrilo01", HR: 47, ERA: 0.1, Note: `said "hi", left`, Skip: "x"},
	})
	require.NoError(t, err)
	return tbl
}

func TestFromRecords(t *testing.T) {
	tbl := sampleTable(t)

	assert.Equal(t, []string{"player_id", "HR", "ERA", "GS", "note"}, tbl.Columns)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []any{"ruthba01", uint32(60), 2.5, true, "=SUM(A1)"}, tbl.Rows[0])
}

func TestFromRecords_Empty(t *testing.T) {
	tbl, err := FromRecords[line](nil)
	require.NoError(t, err)
	assert.Len(t, tbl.Columns, 5)
	assert.Empty(t, tbl.Rows)
}

func TestFromRecords_NotStruct(t *testing.T) {
	_, err := FromRecords([]int{1, 2})
	assert.True(t, errors.Is(err, ErrNotStruct))
}

func TestCSVFormatter_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(sampleTable(t)))

	g := goldie.New(t)
	g.Assert(t, "records_csv", buf.Bytes())
}

func TestCSVFormatter_HeaderOnly(t *testing.T) {
	tbl, err := FromRecords[line](nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(tbl))

	g := goldie.New(t)
	g.Assert(t, "empty_csv", buf.Bytes())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "ruthba01", "ruthba01"},
		{"formula", "=1+1", "'=1+1"},
		{"plus", "+1", "'+1"},
		{"at", "@cmd", "'@cmd"},
		{"pipe with quote", "|it's", "'|it''s"},
		{"tab", "\tx", "'\tx"},
		{"int", int64(-42), "-42"},
		{"uint", uint32(42), "42"},
		{"float", 3.14, "3.14"},
		{"float32", float32(0.25), "0.25"},
		{"infinity", math.Inf(1), "+Inf"},
		{"bool", false, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.value); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestJSONFormatter_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(sampleTable(t)))

	g := goldie.New(t)
	g.Assert(t, "records_json", buf.Bytes())
}

func TestJSONFormatter_Empty(t *testing.T) {
	tbl, err := FromRecords[line](nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(tbl))
	assert.Empty(t, buf.String())
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(sampleTable(t)))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5, out)

	assert.Contains(t, lines[0], "player_id")
	assert.Contains(t, lines[0], "ERA")
	assert.Contains(t, lines[2], "ruthba01")
	assert.Contains(t, lines[3], "+Inf")
	assert.Contains(t, lines[4], "gehrilo01")
	assert.NotContains(t, out, "'=SUM", "the terminal table is not sanitized")
}

func TestTableFormatter_ColumnAlignment(t *testing.T) {
	left, right := tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT
	assert.Equal(t, []int{left, right, right, left, left}, columnAlignment(sampleTable(t)))

	empty := &Table{Columns: []string{"a", "b"}}
	assert.Equal(t, []int{left, left}, columnAlignment(empty))
}

func TestSetOutput(t *testing.T) {
	tbl := sampleTable(t)

	for _, name := range Formats() {
		t.Run(name, func(t *testing.T) {
			var first, second bytes.Buffer
			f, err := NewFormatter(name, &first)
			require.NoError(t, err)

			f.SetOutput(&second)
			require.NoError(t, f.Format(tbl))
			assert.Empty(t, first.String())
			assert.Contains(t, second.String(), "gehrilo01")
		})
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name string
		want Formatter
	}{
		{"csv", &CSVFormatter{}},
		{"CSV", &CSVFormatter{}},
		{"json", &JSONFormatter{}},
		{"jsonl", &JSONFormatter{}},
		{"table", &TableFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFormatter(tt.name, &bytes.Buffer{})
			require.NoError(t, err)
			assert.IsType(t, tt.want, f)
		})
	}

	_, err := NewFormatter("xml", &bytes.Buffer{})
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), "csv, json, table")
}

func TestValidFormat(t *testing.T) {
	for _, name := range Formats() {
		assert.True(t, ValidFormat(name), name)
	}
	assert.False(t, ValidFormat("xml"))
	assert.False(t, ValidFormat(""))
}

func TestDefaultFormat(t *testing.T) {
	assert.Equal(t, FormatCSV, DefaultFormat(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.csv"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, FormatCSV, DefaultFormat(f))
}
