package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// Reader holds an open parquet file.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader opens and validates the parquet file at path.
//
// Example:
//
//	r, err := reader.NewReader("batting.parquet")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %v", ErrInvalidParquet, err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Schema returns the parquet file schema
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// NumRows returns the number of rows stored in the file
func (r *Reader) NumRows() int64 {
	return r.pqFile.NumRows()
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// readBatchSize is the number of rows decoded per Read call
const readBatchSize = 1024

// maxPrealloc caps the capacity reserved from the row count in the file
// footer; larger files grow the slice as rows are decoded.
const maxPrealloc = readBatchSize * 64

// ReadRows decodes every row into T. Columns are matched to fields by their
// parquet struct tag; columns T does not declare are ignored and fields the
// file lacks stay zero.
func ReadRows[T any](r *Reader) ([]T, error) {
	rows := make([]T, 0, preallocRows(r.NumRows()))

	pr := parquet.NewGenericReader[T](r.pqFile)
	defer func() { _ = pr.Close() }()

	buf := make([]T, readBatchSize)
	for {
		n, err := pr.Read(buf)
		rows = append(rows, buf[:n]...)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows), err)
		}
	}

	return rows, nil
}

func preallocRows(n int64) int {
	return int(max(0, min(n, maxPrealloc)))
}

func readParquet[T any](path string) ([]T, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return ReadRows[T](r)
}
