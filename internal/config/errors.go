package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrVaultPathRequired indicates that no vault database path was
	// supplied by any configuration source (-d flag, ENPASS_VAULT_PATH,
	// or the JSON config).
	ErrVaultPathRequired = errors.New("vault database path is required")
)
