// Package config provides configuration loading and validation for seqkit's
// instrumentation (logging and telemetry).
//
// It uses Viper to load settings from a YAML file and environment variables,
// with .env file support via godotenv. The core sequence operators take no
// configuration; this package only feeds the optional wrappers.
//
// # Usage
//
//	settings, err := config.Load()
//
// Environment variables override file values using the SEQKIT_ prefix with
// underscore-separated paths (e.g., SEQKIT_LOGGING_LEVEL).
package config
