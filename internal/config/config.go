// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for enpass-cli.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level.
	App App `envPrefix:"ENPASS_"`

	// Vault holds everything needed to locate and unlock the vault file.
	Vault Vault `envPrefix:"ENPASS_VAULT_"`

	// Export holds output and failure-policy settings for the export run.
	Export Export `envPrefix:"ENPASS_EXPORT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the ENPASS_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"ENPASS_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	// Empty means "info".
	// Env: ENPASS_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Vault holds the vault location and unlock settings.
type Vault struct {
	// Path is the filesystem path to the Enpass 5 wallet database
	// (typically walletx.db).
	// Env: ENPASS_VAULT_PATH
	Path string `env:"PATH"`

	// Password is the master password that keys the SQLCipher container.
	// Never logged. When empty, the CLI prompts for it on the terminal
	// without echo.
	// Env: ENPASS_VAULT_PASSWORD
	Password string `env:"PASSWORD"`

	// FormatV6 marks the vault as an Enpass 6 database. The Enpass 6 data
	// scheme is not supported; setting this produces a clear rejection
	// instead of garbage output.
	// Env: ENPASS_VAULT_FORMAT_V6
	FormatV6 bool `env:"FORMAT_V6"`
}

// Export holds output destination, filtering, and failure-policy settings.
type Export struct {
	// OutputPath is the file the JSON lines are written to. Empty means
	// stdout.
	// Env: ENPASS_EXPORT_OUTPUT
	OutputPath string `env:"OUTPUT"`

	// SkipErrors selects the per-record failure policy: when true, cards
	// that fail to decrypt or parse are logged and skipped; when false the
	// run aborts on the first failure.
	// Env: ENPASS_EXPORT_SKIP_ERRORS
	SkipErrors bool `env:"SKIP_ERRORS"`

	// Category, when non-empty, exports only cards of this category.
	// Env: ENPASS_EXPORT_CATEGORY
	Category string `env:"CATEGORY"`

	// IncludeTrashed also exports cards moved to the trash.
	// Env: ENPASS_EXPORT_INCLUDE_TRASHED
	IncludeTrashed bool `env:"INCLUDE_TRASHED"`

	// IncludeDeleted also exports cards marked deleted.
	// Env: ENPASS_EXPORT_INCLUDE_DELETED
	IncludeDeleted bool `env:"INCLUDE_DELETED"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first non-zero
// value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
