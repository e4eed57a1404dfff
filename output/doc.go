// Package output renders search results.
//
// Records are first turned into a Table with FromRecords, which names the
// columns after the records' csv struct tags. A Formatter then writes the
// table in one of three formats:
//
//   - csv: header row plus one line per record, with values that could be
//     read as spreadsheet formulas prefixed by a quote
//   - json: JSON Lines, one object per record with keys in column order
//   - table: aligned text for terminals
//
// # Basic Usage
//
//	t, err := output.FromRecords(games)
//	if err != nil {
//	    return err
//	}
//	f, err := output.NewFormatter(output.DefaultFormat(os.Stdout), os.Stdout)
//	if err != nil {
//	    return err
//	}
//	return f.Format(t)
//
// # Writing to Different Destinations
//
// SetOutput redirects a formatter, for example to dump the full result to a
// file while the terminal only shows the first rows:
//
//	f := output.NewCSVFormatter(os.Stdout)
//	f.SetOutput(file)
package output
