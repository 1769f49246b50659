// Package schema fixes the batting table column contract: the ordered
// set of required columns, their kinds, and the pattern for incidental
// index columns that loaders must discard.
package schema

import (
	"regexp"
	"strings"
)

// Kind classifies a column for load-time coercion.
type Kind int

const (
	// KindString holds an opaque identifier or code.
	KindString Kind = iota
	// KindInt holds the season year.
	KindInt
	// KindCount holds a counting statistic.
	KindCount
)

// Column describes one required column.
type Column struct {
	Name string
	Kind Kind
}

// columns is the fixed schema in source order.
var columns = []Column{
	{Name: "id", Kind: KindString},
	{Name: "team", Kind: KindString},
	{Name: "lg", Kind: KindString},
	{Name: "year", Kind: KindInt},
	{Name: "g", Kind: KindCount},
	{Name: "ab", Kind: KindCount},
	{Name: "h", Kind: KindCount},
	{Name: "hr", Kind: KindCount},
	{Name: "rbi", Kind: KindCount},
	{Name: "sb", Kind: KindCount},
	{Name: "so", Kind: KindCount},
	{Name: "bb", Kind: KindCount},
	{Name: "hbp", Kind: KindCount},
	{Name: "sh", Kind: KindCount},
	{Name: "sf", Kind: KindCount},
}

var required = func() map[string]struct{} {
	m := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		m[c.Name] = struct{}{}
	}
	return m
}()

// autoIndexPattern matches column names produced by round-tripping a
// table through CSV with the index written out.
var autoIndexPattern = regexp.MustCompile(`^Unnamed:`)

// Columns returns the required columns in contract order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// Required reports whether name (lowercase) is part of the schema.
func Required(name string) bool {
	_, ok := required[name]
	return ok
}

// IsIndexColumn reports whether a header cell names an incidental
// positional-index column to be discarded at load.
func IsIndexColumn(name string) bool {
	name = strings.TrimSpace(name)
	return autoIndexPattern.MatchString(name) || strings.ToLower(name) == "index"
}
