package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the layout of the optional config file. The same
// layout is accepted as JSON (.json) and YAML (.yaml, .yml).
type StructuredFileConfig struct {
	App struct {
		Name     string `json:"name" yaml:"name"`
		Version  string `json:"version" yaml:"version"`
		LogLevel string `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Database struct {
		URL            string   `json:"url" yaml:"url"`
		Name           string   `json:"name" yaml:"name"`
		ConnectTimeout Duration `json:"connect_timeout" yaml:"connect_timeout"`
	} `json:"database,omitempty" yaml:"database,omitempty"`

	Server struct {
		Address         string   `json:"address" yaml:"address"`
		Port            int      `json:"port" yaml:"port"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Security struct {
		PasswordScheme string `json:"password_scheme" yaml:"password_scheme"`
		BcryptCost     int    `json:"bcrypt_cost" yaml:"bcrypt_cost"`
		Argon2Time     uint32 `json:"argon2_time" yaml:"argon2_time"`
		Argon2Memory   uint32 `json:"argon2_memory" yaml:"argon2_memory"`
		Argon2Threads  uint8  `json:"argon2_threads" yaml:"argon2_threads"`
		LegacyHMACKey  string `json:"legacy_hmac_key" yaml:"legacy_hmac_key"`
	} `json:"security,omitempty" yaml:"security,omitempty"`

	Blog struct {
		DefaultLimit int64 `json:"default_limit" yaml:"default_limit"`
		MaxLimit     int64 `json:"max_limit" yaml:"max_limit"`
	} `json:"blog,omitempty" yaml:"blog,omitempty"`

	Client struct {
		Address        string   `json:"address" yaml:"address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"client,omitempty" yaml:"client,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:     f.App.Name,
			Version:  f.App.Version,
			LogLevel: f.App.LogLevel,
		},
		Database: Database{
			URL:            f.Database.URL,
			Name:           f.Database.Name,
			ConnectTimeout: time.Duration(f.Database.ConnectTimeout),
		},
		Server: Server{
			Address:         f.Server.Address,
			RequestTimeout:  time.Duration(f.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(f.Server.ShutdownTimeout),
		},
		Security: Security{
			PasswordScheme: f.Security.PasswordScheme,
			BcryptCost:     f.Security.BcryptCost,
			Argon2Time:     f.Security.Argon2Time,
			Argon2Memory:   f.Security.Argon2Memory,
			Argon2Threads:  f.Security.Argon2Threads,
			LegacyHMACKey:  f.Security.LegacyHMACKey,
		},
		Blog: Blog{
			DefaultLimit: f.Blog.DefaultLimit,
			MaxLimit:     f.Blog.MaxLimit,
		},
		Client: Client{
			Address:        f.Client.Address,
			RequestTimeout: time.Duration(f.Client.RequestTimeout),
		},
		Port: f.Server.Port,
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	if n, err := time.ParseDuration(raw); err == nil {
		*d = Duration(n)
		return nil
	}

	var nanos int64
	if err := node.Decode(&nanos); err != nil {
		return fmt.Errorf("invalid duration %q", raw)
	}
	*d = Duration(time.Duration(nanos))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) parse(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}
