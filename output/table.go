package output

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrNotStruct is returned by FromRecords for non-struct record types
var ErrNotStruct = errors.New("record type is not a struct")

// Table is a rectangular result ready for formatting. Every row has one
// cell per column.
type Table struct {
	Columns []string
	Rows    [][]any
}

// FromRecords builds a table from struct records. Columns follow struct
// field order and are named by the csv tag; fields without one are left out.
func FromRecords[T any](records []T) (*Table, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	var (
		columns []string
		fields  []int
	)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("csv"), ",")[0]
		if name == "" || name == "-" || !f.IsExported() {
			continue
		}
		columns = append(columns, name)
		fields = append(fields, i)
	}

	rows := make([][]any, len(records))
	for i := range records {
		v := reflect.ValueOf(&records[i]).Elem()
		row := make([]any, len(fields))
		for j, field := range fields {
			row[j] = v.Field(field).Interface()
		}
		rows[i] = row
	}

	return &Table{Columns: columns, Rows: rows}, nil
}
