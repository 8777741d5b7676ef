package config

import (
	"errors"
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line API client,
// assembled from [StructuredConfig].
type ClientConfig struct {
	// Address is the server base URL.
	Address string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// LogLevel is the zerolog level of the client's console logger.
	LogLevel string
	// Args holds the command and its arguments left after flag parsing.
	Args []string
}

// GetClientConfig builds and validates the client configuration from the
// environment, the client's global flags in args and the optional config
// file, then maps only the fields relevant to the client.
func GetClientConfig(args []string) (*ClientConfig, error) {
	b := newConfigBuilder().withEnv()

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
	} else {
		b.configs = append(b.configs, flagCfg)
	}

	cfg, err := b.withFile().build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Address:        cfg.Client.Address,
		RequestTimeout: cfg.Client.RequestTimeout,
		LogLevel:       cfg.App.LogLevel,
		Args:           rest,
	}

	return clientCfg, clientCfg.validate()
}
