// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration: database DSN is required")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration: HTTP address is required")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or non-positive token TTL).
	ErrInvalidAppConfigs = errors.New("invalid app configuration: token sign key and positive token duration are required")
	// ErrUnsupportedTokenAlgorithm indicates that the configured JWT signing
	// algorithm is not supported; only HS256 is wired.
	ErrUnsupportedTokenAlgorithm = errors.New("invalid app configuration: unsupported token algorithm")
)
