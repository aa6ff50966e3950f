// Package config loads settings for both binaries from an optional
// config.yaml and INVENTORY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings shared by the console and the dev API server.
type Config struct {
	APIBaseURL  string
	APITimeout  time.Duration
	LogFile     string
	LogLevel    string
	ServerAddr  string
	DatabaseURL string
}

// Load reads config.yaml from the working directory or
// ~/.config/inventory-console, then applies INVENTORY_* environment
// variables on top. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/inventory-console")

	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database_url", "")

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("api.timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid api.timeout: %w", err)
	}

	return Config{
		APIBaseURL:  v.GetString("api.base_url"),
		APITimeout:  timeout,
		LogFile:     v.GetString("log.file"),
		LogLevel:    v.GetString("log.level"),
		ServerAddr:  v.GetString("server.addr"),
		DatabaseURL: v.GetString("database_url"),
	}, nil
}
