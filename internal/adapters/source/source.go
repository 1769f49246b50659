// Package source loads batting tables from tabular files. It is the
// external-collaborator boundary of the pipeline: it maps header names
// onto the fixed schema, discards incidental index columns, and coerces
// cells into missing-capable values. Data problems never error here;
// they surface as missing values and fall out during cleaning.
package source

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/tmcrae/batstat/internal/domain/model"
	"github.com/tmcrae/batstat/internal/domain/schema"
	"github.com/tmcrae/batstat/internal/domain/stat"
)

// Loader supplies the raw table for one pipeline run.
type Loader interface {
	Load(ctx context.Context) ([]model.RawRow, error)
}

// Format identifies a supported table encoding.
type Format string

const (
	// FormatAuto picks a decoder from the file extension.
	FormatAuto Format = "auto"
	// FormatCSV decodes comma-separated tables.
	FormatCSV Format = "csv"
	// FormatXLSX decodes spreadsheet workbooks.
	FormatXLSX Format = "xlsx"
)

// Open resolves a Loader for path.
func Open(path string, opts ...Option) (Loader, error) {
	o := options{format: FormatAuto}
	for _, opt := range opts {
		opt(&o)
	}

	format := o.format
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".xlsx", ".xlsm":
			format = FormatXLSX
		default:
			format = FormatCSV
		}
	}

	switch format {
	case FormatCSV:
		return &CSVLoader{path: path}, nil
	case FormatXLSX:
		return &XLSXLoader{path: path, sheet: o.sheet}, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// decode maps header names onto the schema and converts records into
// raw rows. Index-like columns are dropped; columns outside the schema
// are ignored; absent schema columns read as missing for every row.
func decode(header []string, records [][]string) []model.RawRow {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if schema.IsIndexColumn(name) {
			continue
		}
		lower := strings.ToLower(name)
		if schema.Required(lower) {
			idx[lower] = i
		}
	}

	cell := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	rows := make([]model.RawRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, model.RawRow{
			ID:     cell(rec, "id"),
			Team:   cell(rec, "team"),
			League: cell(rec, "lg"),
			Year:   stat.Parse(cell(rec, "year")),
			G:      stat.Parse(cell(rec, "g")),
			AB:     stat.Parse(cell(rec, "ab")),
			H:      stat.Parse(cell(rec, "h")),
			HR:     stat.Parse(cell(rec, "hr")),
			RBI:    stat.Parse(cell(rec, "rbi")),
			SB:     stat.Parse(cell(rec, "sb")),
			SO:     stat.Parse(cell(rec, "so")),
			BB:     stat.Parse(cell(rec, "bb")),
			HBP:    stat.Parse(cell(rec, "hbp")),
			SH:     stat.Parse(cell(rec, "sh")),
			SF:     stat.Parse(cell(rec, "sf")),
		})
	}
	return rows
}
