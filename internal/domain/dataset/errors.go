package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	// ErrIncompleteAfterClean means a non-derived field was still
	// missing after the complete-case filter. Downstream stages rely on
	// full completeness, so report generation must halt.
	ErrIncompleteAfterClean = errors.New("incomplete row survived cleaning")
)
