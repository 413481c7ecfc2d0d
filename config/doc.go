// Package config loads client settings from YAML files, .env files and
// environment variables.
//
// It uses Viper for file and environment layering and godotenv for .env
// files. Values are decoded through mapstructure tags, so any struct that
// carries them can be loaded.
//
// # Usage
//
//	var settings httpclient.Settings
//	err := config.Load("billing", "client", &settings)
//
// Environment variables override file values. CLIENT_BASE_URL binds to
// client.base_url, among other nesting variants.
package config
