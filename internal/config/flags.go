package config

import (
	"flag"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d vault database path (walletx.db)
//	-p master password (prompted without echo when omitted)
//	-6 treat the vault as an Enpass 6 database (rejected with a clear error)
//	-o output file for JSON lines (default stdout)
//	-skip-errors skip cards that fail to decrypt or parse instead of aborting
//	-category export only cards of this category
//	-include-trashed include trashed cards
//	-include-deleted include deleted cards
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var vaultPath string
	var password string
	var formatV6 bool
	var outputPath string
	var skipErrors bool
	var category string
	var includeTrashed bool
	var includeDeleted bool
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&vaultPath, "d", "", "Vault database path")
	flag.StringVar(&password, "p", "", "Master password")
	flag.BoolVar(&formatV6, "6", false, "Vault is an Enpass 6 database")
	flag.StringVar(&outputPath, "o", "", "Output file path (default stdout)")
	flag.BoolVar(&skipErrors, "skip-errors", false, "Skip undecryptable cards instead of aborting")
	flag.StringVar(&category, "category", "", "Export only this card category")
	flag.BoolVar(&includeTrashed, "include-trashed", false, "Include trashed cards")
	flag.BoolVar(&includeDeleted, "include-deleted", false, "Include deleted cards")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Vault: Vault{
			Path:     vaultPath,
			Password: password,
			FormatV6: formatV6,
		},
		Export: Export{
			OutputPath:     outputPath,
			SkipErrors:     skipErrors,
			Category:       category,
			IncludeTrashed: includeTrashed,
			IncludeDeleted: includeDeleted,
		},
		JSONFilePath: jsonConfigPath,
	}
}
