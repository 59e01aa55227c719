package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mhalicki/tritonkit/errors"
)

// FileSystem abstracts file probing so tests can inject fixtures.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem against the OS.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderOption customizes Load.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	fs         FileSystem
	configFile string
	envFile    string
}

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *loaderConfig) { lc.fs = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

var configSearchPaths = []string{
	"./triton.yml",
	"./triton.yaml",
	"./config/triton.yml",
	"./config/triton.yaml",
}

var envSearchPaths = []string{
	"./.env.triton",
	"./.env",
}

// Load reads the client configuration. Precedence, lowest to highest:
// YAML file, .env file, process environment (TRITON_* variables). The result
// has defaults applied and is validated.
func Load(opts ...LoaderOption) (*ClientConfig, error) {
	lc := loaderConfig{fs: RealFileSystem{}}
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.configFile == "" {
		lc.configFile = firstExisting(lc.fs, configSearchPaths)
	}
	if lc.envFile == "" {
		lc.envFile = firstExisting(lc.fs, envSearchPaths)
	}

	// .env populates the process environment before viper reads it.
	if lc.envFile != "" && lc.fs.Exists(lc.envFile) {
		if err := lc.fs.LoadEnv(lc.envFile); err != nil {
			return nil, errors.Config("loading env file " + lc.envFile).WithCause(err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("TRITON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	if lc.configFile != "" && lc.fs.Exists(lc.configFile) {
		v.SetConfigFile(lc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Config("reading config file " + lc.configFile).WithCause(err)
		}
	}

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Config("unmarshalling client configuration").WithCause(err)
	}

	// Explicit enabled=false and retry_attempts=0 must survive ApplyDefaults.
	if v.IsSet("discovery.enabled") {
		cfg.Discovery.SetEnabled(v.GetBool("discovery.enabled"))
	}
	if v.IsSet("discovery.retry_attempts") {
		cfg.Discovery.SetRetryAttempts(v.GetInt("discovery.retry_attempts"))
	}

	cfg.ApplyDefaults()
	if cfg.UFDS != nil {
		cfg.UFDS.ApplyDefaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindKeys registers the known keys so AutomaticEnv resolves TRITON_*
// variables even when no config file mentions them.
func bindKeys(v *viper.Viper) {
	keys := []string{
		"sapi_url", "sapi_key", "tls_skip_verify", "tls_ca_cert",
		"request_timeout", "max_retries",
		"discovery.enabled", "discovery.cache_ttl", "discovery.timeout",
		"discovery.retry_attempts",
		"ufds.url", "ufds.bind_dn", "ufds.bind_password", "ufds.base_dn",
		"logging.level", "logging.format", "logging.output",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

func firstExisting(fs FileSystem, paths []string) string {
	for _, path := range paths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
