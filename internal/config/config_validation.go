// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. A failure here aborts
// the process immediately instead of surfacing lazily at first use.
//
// Returns nil if the configuration is valid, or a descriptive sentinel error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	// HMAC-SHA256 is the only wired signing method.
	if cfg.App.TokenAlgorithm != "" && cfg.App.TokenAlgorithm != "HS256" {
		return ErrUnsupportedTokenAlgorithm
	}

	return nil
}
