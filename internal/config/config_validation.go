// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied to fields that no source has set.
const (
	DefaultAppName         = "go-saas-backend"
	DefaultLogLevel        = "debug"
	DefaultPort            = 8000
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultConnectTimeout  = 5 * time.Second
	DefaultPasswordScheme  = "bcrypt"
	DefaultBcryptCost      = 12
	DefaultArgon2Time      = 1
	DefaultArgon2Memory    = 64 * 1024
	DefaultArgon2Threads   = 4
	DefaultBlogLimit       = 10
	DefaultClientAddress   = "http://localhost:8000"
	DefaultClientTimeout   = 10 * time.Second
)

var supportedPasswordSchemes = map[string]struct{}{
	"bcrypt":   {},
	"argon2id": {},
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Name == "" {
		cfg.App.Name = DefaultAppName
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.Port))
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if cfg.Database.ConnectTimeout == 0 {
		cfg.Database.ConnectTimeout = DefaultConnectTimeout
	}

	cfg.Security.PasswordScheme = strings.ToLower(strings.TrimSpace(cfg.Security.PasswordScheme))
	if cfg.Security.PasswordScheme == "" {
		cfg.Security.PasswordScheme = DefaultPasswordScheme
	}
	if cfg.Security.BcryptCost == 0 {
		cfg.Security.BcryptCost = DefaultBcryptCost
	}
	if cfg.Security.Argon2Time == 0 {
		cfg.Security.Argon2Time = DefaultArgon2Time
	}
	if cfg.Security.Argon2Memory == 0 {
		cfg.Security.Argon2Memory = DefaultArgon2Memory
	}
	if cfg.Security.Argon2Threads == 0 {
		cfg.Security.Argon2Threads = DefaultArgon2Threads
	}

	if cfg.Blog.DefaultLimit == 0 {
		cfg.Blog.DefaultLimit = DefaultBlogLimit
		if cfg.Blog.MaxLimit > 0 {
			cfg.Blog.DefaultLimit = min(DefaultBlogLimit, cfg.Blog.MaxLimit)
		}
	}

	if cfg.Client.Address == "" {
		cfg.Client.Address = DefaultClientAddress
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = DefaultClientTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// applyDefaults, so only values that were set explicitly can fail.
func (cfg *StructuredConfig) validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel)); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfigs, cfg.Port)
	}
	if _, _, err := net.SplitHostPort(cfg.Server.Address); err != nil {
		return fmt.Errorf("%w: address %q", ErrInvalidServerConfigs, cfg.Server.Address)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if _, ok := supportedPasswordSchemes[cfg.Security.PasswordScheme]; !ok {
		return fmt.Errorf("%w: password scheme %q", ErrInvalidSecurityConfigs, cfg.Security.PasswordScheme)
	}
	if cfg.Security.BcryptCost < 0 {
		return fmt.Errorf("%w: bcrypt cost %d", ErrInvalidSecurityConfigs, cfg.Security.BcryptCost)
	}

	if cfg.Blog.DefaultLimit < 1 || cfg.Blog.MaxLimit < 0 ||
		(cfg.Blog.MaxLimit > 0 && cfg.Blog.DefaultLimit > cfg.Blog.MaxLimit) {
		return fmt.Errorf("%w: default %d, max %d", ErrInvalidBlogConfigs, cfg.Blog.DefaultLimit, cfg.Blog.MaxLimit)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Address == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
