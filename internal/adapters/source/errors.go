package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrUnknownFormat = errors.New("unknown source format")
	ErrMissingHeader = errors.New("source has no header row")
	ErrNoSheet       = errors.New("workbook sheet not found")
)
