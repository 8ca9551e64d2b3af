package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// required configuration groups are incomplete.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
