package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags found in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-port port to bind on all interfaces when -a is not given
//	-d database URL
//	-db-name database name
//	-c/-config JSON or YAML config file path
//	-log-level log level
//	-password-scheme password hashing scheme (bcrypt, argon2id)
//	-bcrypt-cost bcrypt work factor
//	-legacy-hmac-key key of legacy HMAC-SHA256 password digests
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress   NetAddress
		port            int
		databaseURL     string
		databaseName    string
		configPath      string
		logLevel        string
		passwordScheme  string
		bcryptCost      int
		legacyHMACKey   string
		requestTimeout  time.Duration
		shutdownTimeout time.Duration
	)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "port", 0, "Port to bind on all interfaces")
	fs.StringVar(&databaseURL, "d", "", "Database URL")
	fs.StringVar(&databaseName, "db-name", "", "Database name")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&passwordScheme, "password-scheme", "", "Password hashing scheme")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	fs.StringVar(&legacyHMACKey, "legacy-hmac-key", "", "Legacy HMAC password key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Database: Database{
			URL:  databaseURL,
			Name: databaseName,
		},
		Server: Server{
			Address:         serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Security: Security{
			PasswordScheme: passwordScheme,
			BcryptCost:     bcryptCost,
			LegacyHMACKey:  legacyHMACKey,
		},
		Port:     port,
		FilePath: configPath,
	}, nil
}

// parseClientFlags parses the client's global flags and returns the
// remaining positional arguments (the command and its own arguments).
//
// Flags:
//
//	-s server base URL
//	-t request timeout
//	-c/-config JSON or YAML config file path
func parseClientFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		address    string
		timeout    time.Duration
		configPath string
	)

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "s", "", "Server base URL")
	fs.DurationVar(&timeout, "t", 0, "Request timeout")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Client: Client{
			Address:        address,
			RequestTimeout: timeout,
		},
		FilePath: configPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
