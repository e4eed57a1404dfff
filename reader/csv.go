package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// csvColumn maps one header column to a struct field
type csvColumn struct {
	name  string
	field int // index into the struct, -1 when the column is ignored
}

// csvColumns resolves header names against the csv tags of t
func csvColumns(t reflect.Type, header []string) ([]csvColumn, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrUnsupportedField, t)
	}

	byTag := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := strings.Split(f.Tag.Get("csv"), ",")[0]
		if tag == "" || tag == "-" || !f.IsExported() {
			continue
		}
		switch f.Type.Kind() {
		case reflect.String, reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
		default:
			return nil, fmt.Errorf("%w: %s.%s has kind %s", ErrUnsupportedField, t.Name(), f.Name, f.Type.Kind())
		}
		byTag[tag] = i
	}

	columns := make([]csvColumn, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		field, ok := byTag[name]
		if !ok {
			field = -1
		}
		columns[i] = csvColumn{name: name, field: field}
	}
	return columns, nil
}

// setField parses cell into v. Empty cells leave the zero value.
func setField(v reflect.Value, cell string) error {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(cell)
	case reflect.Bool:
		b, err := strconv.ParseBool(cell)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(cell, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(cell, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(cell, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	}
	return nil
}

// ReadCSV decodes CSV with a header row into T using the csv struct tags.
// Header columns without a matching field are ignored. Rows with the wrong
// number of fields or a cell that does not parse are skipped and logged at
// debug level.
func ReadCSV[T any](r io.Reader, log logrus.FieldLogger) ([]T, error) {
	log = orDiscard(log)
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := csvColumns(reflect.TypeOf((*T)(nil)).Elem(), header)
	if err != nil {
		return nil, err
	}

	var rows []T
	skipped := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) && errors.Is(err, csv.ErrFieldCount) {
				log.WithField("line", pe.StartLine).Debug("skipping row with wrong number of fields")
				skipped++
				continue
			}
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)

		var row T
		v := reflect.ValueOf(&row).Elem()
		if err := decodeRecord(v, columns, record); err != nil {
			log.WithError(err).WithField("line", line).Debug("skipping malformed row")
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	if skipped > 0 {
		log.WithField("skipped", skipped).Debug("finished reading CSV")
	}
	return rows, nil
}

func decodeRecord(v reflect.Value, columns []csvColumn, record []string) error {
	for i, cell := range record {
		col := columns[i]
		if col.field < 0 {
			continue
		}
		if err := setField(v.Field(col.field), cell); err != nil {
			return fmt.Errorf("column %s: %w", col.name, err)
		}
	}
	return nil
}
