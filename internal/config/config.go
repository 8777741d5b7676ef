// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-saas-backend server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application name, version and log level.
	App App `envPrefix:"APP_"`

	// Database holds the document store connection settings.
	Database Database `envPrefix:"DATABASE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Security holds password hashing parameters.
	Security Security `envPrefix:"SECURITY_"`

	// Blog holds the limits applied to the public blog listing.
	Blog Blog `envPrefix:"BLOG_"`

	// Client holds the settings of the command-line API client.
	Client Client `envPrefix:"CLIENT_"`

	// Port is the TCP port the server binds on all interfaces when
	// Server.Address is not set.
	// Env: PORT
	Port int `env:"PORT"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// The format is picked by the file extension.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Name is reported in logs.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Database holds connection settings for the document store.
type Database struct {
	// URL selects and configures the backend by its scheme:
	// mongodb://, postgres://, sqlite:// (or a *.db path).
	// An empty URL starts the server with an unavailable store.
	// Env: DATABASE_URL
	URL string `env:"URL"`

	// Name is the MongoDB database name. SQL backends ignore it.
	// Env: DATABASE_NAME
	Name string `env:"NAME"`

	// ConnectTimeout bounds the initial connect and ping.
	// Env: DATABASE_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000"). Takes precedence over PORT.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Security holds password hashing settings.
type Security struct {
	// PasswordScheme is the scheme new digests are produced with:
	// "bcrypt" or "argon2id".
	// Env: SECURITY_PASSWORD_SCHEME
	PasswordScheme string `env:"PASSWORD_SCHEME"`

	// BcryptCost is the bcrypt work factor.
	// Env: SECURITY_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Argon2Time is the argon2id iteration count.
	// Env: SECURITY_ARGON2_TIME
	Argon2Time uint32 `env:"ARGON2_TIME"`

	// Argon2Memory is the argon2id memory cost in KiB.
	// Env: SECURITY_ARGON2_MEMORY
	Argon2Memory uint32 `env:"ARGON2_MEMORY"`

	// Argon2Threads is the argon2id parallelism.
	// Env: SECURITY_ARGON2_THREADS
	Argon2Threads uint8 `env:"ARGON2_THREADS"`

	// LegacyHMACKey verifies digests written by the old HMAC-SHA256 scheme.
	// Must be kept confidential.
	// Env: SECURITY_LEGACY_HMAC_KEY
	LegacyHMACKey string `env:"LEGACY_HMAC_KEY"`
}

// Blog holds the listing limits.
type Blog struct {
	// Env: BLOG_DEFAULT_LIMIT
	DefaultLimit int64 `env:"DEFAULT_LIMIT"`
	// MaxLimit rejects larger limits when positive. Zero leaves the limit
	// uncapped.
	// Env: BLOG_MAX_LIMIT
	MaxLimit int64 `env:"MAX_LIMIT"`
}

// Client holds the settings of the API client.
type Client struct {
	// Address is the base URL of the server (e.g. "http://localhost:8000").
	// Env: CLIENT_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the timeout of each outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. Config file (path resolved from sources 1 and 2)
//
// Defaults are applied to whatever is still unset before validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
