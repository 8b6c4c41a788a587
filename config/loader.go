package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads seqkit instrumentation settings. It searches for seqkit.yml
// and .env files in standard locations unless explicit paths are given,
// binds SEQKIT_-prefixed environment variables, applies defaults, and
// validates the result.
func Load(opts ...LoaderOption) (*Settings, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.ConfigFile == "" {
		lc.ConfigFile = findFirst(
			"./seqkit.yml",
			"./config/seqkit.yml",
			"../config/seqkit.yml",
		)
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFirst("./.env.seqkit", "./.env")
	}

	v := viper.New()

	// 1. YAML file first (base configuration).
	if lc.ConfigFile != "" && fileExists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", lc.ConfigFile, err)
		}
	}

	// 2. .env file, then environment variables on top.
	if lc.EnvFile != "" && fileExists(lc.EnvFile) {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", lc.EnvFile, err)
		}
	}
	v.SetEnvPrefix("SEQKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindSettingsKeys(v)

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshaling settings: %w", err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// bindSettingsKeys registers every settings key with viper so AutomaticEnv
// can resolve them even when they are absent from the config file.
func bindSettingsKeys(v *viper.Viper) {
	keys := []string{
		"name",
		"environment",
		"logging.level",
		"logging.format",
		"logging.output",
		"logging.no_color",
		"logging.timestamp",
		"telemetry.enabled",
		"telemetry.endpoint",
		"telemetry.insecure",
		"telemetry.sample_rate",
		"telemetry.interval_seconds",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

func findFirst(paths ...string) string {
	for _, p := range paths {
		if fileExists(p) {
			return p
		}
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
