package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// SchemaInfo describes one column of a data file
type SchemaInfo struct {
	Name         string `json:"name" csv:"name"`
	Type         string `json:"type" csv:"type"`
	PhysicalType string `json:"physical_type" csv:"physical_type"`
	LogicalType  string `json:"logical_type" csv:"logical_type"`
	Required     bool   `json:"required" csv:"required"`
	Optional     bool   `json:"optional" csv:"optional"`
	Repeated     bool   `json:"repeated" csv:"repeated"`
}

// csvSampleRows is how many data rows ExtractSchemaInfo inspects to guess
// CSV column types
const csvSampleRows = 100

// ExtractSchemaInfo lists the columns of a parquet or CSV file.
//
// Parquet columns carry their physical and logical types. Nested parquet
// fields use dot notation (e.g., "team.name"). CSV column types are guessed
// from the first rows of the file.
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	if IsParquet(path) {
		return parquetSchemaInfo(path)
	}
	return csvSchemaInfo(path)
}

func parquetSchemaInfo(path string) ([]SchemaInfo, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var infos []SchemaInfo
	for _, field := range r.Schema().Fields() {
		infos = appendFieldInfo(infos, field, "", false)
	}
	return infos, nil
}

// appendFieldInfo appends the leaf columns below field. Groups are not
// listed themselves and pass their repeated flag down to their children.
func appendFieldInfo(infos []SchemaInfo, field parquet.Field, prefix string, parentRepeated bool) []SchemaInfo {
	name := field.Name()
	if prefix != "" {
		name = prefix + "." + name
	}
	repeated := parentRepeated || field.Repeated()

	if children := field.Fields(); len(children) > 0 {
		for _, child := range children {
			infos = appendFieldInfo(infos, child, name, repeated)
		}
		return infos
	}

	physical, logical := "GROUP", ""
	if field.Type() != nil {
		physical = physicalNames[field.Type().Kind()]
		if physical == "" {
			physical = "UNKNOWN"
		}
		if lt := field.Type().LogicalType(); lt != nil {
			logical = lt.String()
		}
	}

	return append(infos, SchemaInfo{
		Name:         name,
		Type:         friendlyType(physical, logical),
		PhysicalType: physical,
		LogicalType:  logical,
		Required:     field.Required(),
		Optional:     field.Optional(),
		Repeated:     repeated,
	})
}

var physicalNames = map[parquet.Kind]string{
	parquet.Boolean:           "BOOLEAN",
	parquet.Int32:             "INT32",
	parquet.Int64:             "INT64",
	parquet.Int96:             "INT96",
	parquet.Float:             "FLOAT",
	parquet.Double:            "DOUBLE",
	parquet.ByteArray:         "BYTE_ARRAY",
	parquet.FixedLenByteArray: "FIXED_LEN_BYTE_ARRAY",
}

// friendlyType prefers the logical type and falls back to the physical one
func friendlyType(physical, logical string) string {
	switch {
	case logical == "STRING" || logical == "UTF8":
		return "STRING"
	case logical != "":
		return logical
	case physical == "FLOAT":
		return "FLOAT32"
	case physical == "DOUBLE":
		return "FLOAT64"
	default:
		return physical
	}
}

func csvSchemaInfo(path string) ([]SchemaInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	infos := make([]SchemaInfo, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		infos[i] = SchemaInfo{Name: strings.TrimSpace(name), Required: true}
	}

	kinds := make([]string, len(header))
	for n := 0; n < csvSampleRows; n++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		for i := range infos {
			cell := ""
			if i < len(record) {
				cell = strings.TrimSpace(record[i])
			}
			if cell == "" {
				infos[i].Required = false
				infos[i].Optional = true
				continue
			}
			kinds[i] = widen(kinds[i], cellKind(cell))
		}
	}

	for i := range infos {
		if kinds[i] == "" {
			kinds[i] = "STRING"
		}
		infos[i].Type = kinds[i]
		infos[i].PhysicalType = "CSV"
	}
	return infos, nil
}

// cellKind guesses the type of one non-empty CSV cell
func cellKind(cell string) string {
	if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return "INT64"
	}
	if _, err := strconv.ParseFloat(cell, 64); err == nil {
		return "FLOAT64"
	}
	if _, err := strconv.ParseBool(cell); err == nil {
		return "BOOLEAN"
	}
	return "STRING"
}

// widen combines the kinds seen so far in a column
func widen(current, next string) string {
	switch {
	case current == "" || current == next:
		return next
	case (current == "INT64" && next == "FLOAT64") || (current == "FLOAT64" && next == "INT64"):
		return "FLOAT64"
	default:
		return "STRING"
	}
}
