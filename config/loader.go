package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kbukum/neto/logger"
)

// LoaderConfig holds the file system and optional explicit file paths.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// LoaderOption configures Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom file system for resolution and .env loading.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load decodes the section named key into out. An empty key decodes the
// whole document. Precedence, lowest first: config file, .env file,
// process environment. Missing files are not an error.
func Load(serviceName, key string, out any, opts ...LoaderOption) error {
	lc := LoaderConfig{FileSystem: OSFileSystem{}}
	for _, opt := range opts {
		opt(&lc)
	}

	files := (&Resolver{FileSystem: lc.FileSystem}).Resolve(serviceName, lc)
	log := logger.Get("config")

	v := viper.New()
	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			log.Warn("failed to read config file", logger.Fields("file", files.ConfigFile, logger.FieldError, err.Error()))
		}
	}

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			log.Warn("failed to load env file", logger.Fields("file", files.EnvFile, logger.FieldError, err.Error()))
		}
	}
	bindEnv(v)

	if key == "" {
		if err := v.Unmarshal(out); err != nil {
			return fmt.Errorf("decoding config for service %s: %w", serviceName, err)
		}
		return nil
	}

	// Flatten overrides and file values first so a section read sees both.
	merged := viper.New()
	if err := merged.MergeConfigMap(v.AllSettings()); err != nil {
		return fmt.Errorf("merging config for service %s: %w", serviceName, err)
	}
	if err := merged.UnmarshalKey(key, out); err != nil {
		return fmt.Errorf("decoding config key %q for service %s: %w", key, serviceName, err)
	}
	return nil
}
