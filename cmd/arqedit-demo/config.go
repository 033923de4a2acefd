package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ARQEDIT"

type config struct {
	File         string `mapstructure:"file"`
	Placeholder  string `mapstructure:"placeholder"`
	Disabled     bool   `mapstructure:"disabled"`
	HistoryLimit int    `mapstructure:"history-limit"`
	Color        bool   `mapstructure:"color"`
	LogFile      string `mapstructure:"log-file"`
	LogLevel     string `mapstructure:"log-level"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("arqedit-demo", pflag.ContinueOnError)
	fs.String("config", "", "YAML config file")
	fs.String("file", "notes.html", "markup file to edit")
	fs.String("placeholder", "Write a note…", "text shown while the note is empty")
	fs.Bool("disabled", false, "open the note read-only")
	fs.Int("history-limit", 0, "maximum undo entries (0 keeps all)")
	fs.Bool("color", true, "render with colors")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	return fs
}

// loadConfig resolves settings with precedence flag > env > file > default.
func loadConfig(args []string) (config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
}
