// Package reader loads baseball statistics files into typed records.
//
// Two formats are supported. Files ending in .parquet are decoded with
// parquet-go, matching columns to fields by their parquet struct tag. Every
// other file is read as CSV with a header row, matching header names to
// fields by their csv struct tag.
//
// # Basic Usage
//
// Reading a single file:
//
//	games, err := reader.ReadFile[record.BattingGamelog]("batting.csv", log)
//	if err != nil {
//	    return err
//	}
//
// Reading several files, in sorted path order:
//
//	seasons, err := reader.ReadFiles[record.Batting]([]string{"lahman/*.parquet"}, log)
//
// # CSV Decoding
//
// Header columns without a matching field are ignored and fields without a
// column stay zero. Empty cells leave the zero value. Rows with the wrong
// number of fields, or with a cell that does not parse as the field's type,
// are skipped and logged at debug level.
//
// # Schema Introspection
//
// ExtractSchemaInfo lists the columns of a file. Parquet files report their
// physical and logical types; CSV column types are guessed from a sample of
// rows.
//
// # Resource Management
//
// A Reader opened with NewReader must be closed:
//
//	r, err := reader.NewReader("pitching.parquet")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	rows, err := reader.ReadRows[record.Pitching](r)
package reader
