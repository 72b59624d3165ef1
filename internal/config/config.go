package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	HTTPTimeout     time.Duration
	LogLevel        slog.Level
	RecordsCSV      string
	RecordsURL      string
	SelectN         int
	ChartAssetsHost string
}

// FromEnv reads the configuration from the environment, falling back to defaults.
func FromEnv() Config {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("log_level", "info")
	v.SetDefault("records_csv", "")
	v.SetDefault("records_url", "")
	v.SetDefault("select_n", 2)
	v.SetDefault("chart_assets_host", "")
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) Config {
	to := time.Duration(v.GetInt("http_timeout_seconds")) * time.Second
	if to <= 0 {
		to = 15 * time.Second
	}
	n := v.GetInt("select_n")
	if n <= 0 {
		n = 2
	}
	return Config{
		Port:            v.GetString("port"),
		HTTPTimeout:     to,
		LogLevel:        parseLevel(v.GetString("log_level")),
		RecordsCSV:      strings.TrimSpace(v.GetString("records_csv")),
		RecordsURL:      strings.TrimSpace(v.GetString("records_url")),
		SelectN:         n,
		ChartAssetsHost: v.GetString("chart_assets_host"),
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
