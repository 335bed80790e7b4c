package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional configuration file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Vault struct {
		Path     string `json:"path"`
		Password string `json:"password"`
		FormatV6 bool   `json:"format_v6"`
	} `json:"vault,omitempty"`

	Export struct {
		OutputPath     string `json:"output"`
		SkipErrors     bool   `json:"skip_errors"`
		Category       string `json:"category"`
		IncludeTrashed bool   `json:"include_trashed"`
		IncludeDeleted bool   `json:"include_deleted"`
	} `json:"export,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
		},
		Vault: Vault{
			Path:     jsonCfg.Vault.Path,
			Password: jsonCfg.Vault.Password,
			FormatV6: jsonCfg.Vault.FormatV6,
		},
		Export: Export{
			OutputPath:     jsonCfg.Export.OutputPath,
			SkipErrors:     jsonCfg.Export.SkipErrors,
			Category:       jsonCfg.Export.Category,
			IncludeTrashed: jsonCfg.Export.IncludeTrashed,
			IncludeDeleted: jsonCfg.Export.IncludeDeleted,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
