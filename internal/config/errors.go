package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyInputPath    = errors.New("input_path must not be empty")
	ErrNegativeThreshold = errors.New("min_at_bats must not be negative")
)
