package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// inconsistent.
var (
	// ErrInvalidServerConfigs indicates an unusable listen address, port or
	// timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSecurityConfigs indicates an unknown password scheme or
	// out-of-range hashing parameters.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidBlogConfigs indicates non-positive limits or a default
	// limit above the maximum.
	ErrInvalidBlogConfigs = errors.New("invalid blog configuration")
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidClientConfigs indicates a missing server URL or timeout for
	// the client.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrUnsupportedConfigFormat is returned for config files that are
	// neither JSON nor YAML.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
