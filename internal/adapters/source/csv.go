package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tmcrae/batstat/internal/domain/model"
)

// CSVLoader reads a comma-separated batting table.
type CSVLoader struct {
	path string
}

// NewCSVLoader creates a loader for a CSV file.
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Load reads the whole table into raw rows.
func (l *CSVLoader) Load(ctx context.Context) ([]model.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Ragged rows are a data problem, not a parse error; short rows
	// read as missing cells downstream.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", l.path, ErrMissingHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("read header %s: %w", l.path, err)
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}
	return decode(header, records), nil
}
