// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The password is deliberately not required here: when absent the CLI
// prompts for it interactively without echo.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Vault.Path == "" {
		return ErrVaultPathRequired
	}

	return nil
}
