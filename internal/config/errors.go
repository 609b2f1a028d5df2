package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrUnsupportedDriver indicates that the configured database driver is
	// neither "pgx" nor "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	// ErrInvalidAuthConfigs indicates invalid session or hashing settings
	// (for example, a negative bcrypt cost).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
