// Package config loads party settings from .party.toml, PARTY_* environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// FileName is the conventional configuration file name.
const FileName = ".party.toml"

// EnvPrefix prefixes every environment override, e.g. PARTY_VAM_DIRECTORY.
const EnvPrefix = "PARTY"

// DefaultRegistryURL is the community registry used when none is configured.
const DefaultRegistryURL = "https://raw.githubusercontent.com/vam-community/vam-registry/master/v1/index.json"

// RegistryConfig lists registry sources and the domains trusted for
// downloads.
type RegistryConfig struct {
	URLs           []string `mapstructure:"urls" toml:"urls"`
	TrustedDomains []string `mapstructure:"trusted_domains" toml:"trusted_domains"`
	S3Region       string   `mapstructure:"s3_region" toml:"s3_region,omitempty"`
	S3Endpoint     string   `mapstructure:"s3_endpoint" toml:"s3_endpoint,omitempty"`
}

// ScanningConfig tunes the saves resolver.
type ScanningConfig struct {
	Ignore         []string `mapstructure:"ignore" toml:"ignore"`
	PackagesFolder string   `mapstructure:"packages_folder" toml:"packages_folder"`
	// Concurrency bounds the resolver worker pool; 0 means unbounded.
	Concurrency int `mapstructure:"concurrency" toml:"concurrency"`
}

// Config holds all runtime configuration.
type Config struct {
	VamDirectory string         `mapstructure:"vam_directory" toml:"vam_directory"`
	Registry     RegistryConfig `mapstructure:"registry" toml:"registry"`
	Scanning     ScanningConfig `mapstructure:"scanning" toml:"scanning"`
	Verbose      bool           `mapstructure:"verbose" toml:"verbose"`
	MetricsFile  string         `mapstructure:"metrics_file" toml:"metrics_file,omitempty"`
	TraceFile    string         `mapstructure:"trace_file" toml:"trace_file,omitempty"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("vam_directory", ".")
	v.SetDefault("registry.urls", []string{DefaultRegistryURL})
	v.SetDefault("registry.trusted_domains", []string{
		"https://raw.githubusercontent.com/",
		"https://github.com/",
	})
	v.SetDefault("registry.s3_region", "")
	v.SetDefault("registry.s3_endpoint", "")
	v.SetDefault("scanning.ignore", []string{})
	v.SetDefault("scanning.packages_folder", filepath.Join("Saves", "party"))
	v.SetDefault("scanning.concurrency", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("metrics_file", "")
	v.SetDefault("trace_file", "")
}

// Prepare points v at the configuration file and environment. An explicit
// file wins over .party.toml in the working or home directory.
func Prepare(v *viper.Viper, file string) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("toml")
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration into a Config. A missing configuration file
// is not an error; an unreadable one is.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading configuration: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}

	return cfg, nil
}

// Marshal renders cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}

	return data, nil
}

// Write saves cfg as TOML at path. An existing file is not replaced.
func Write(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration file already exists: %s", path)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
