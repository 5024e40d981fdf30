// Package config loads manpower settings from an optional YAML file and
// MANPOWER_* environment variables, on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/me/manpower/internal/dataset"
	"github.com/spf13/viper"
)

// Config holds configuration for the manpower CLI and server.
type Config struct {
	DataDir   string            // Directory holding the reference CSV files
	Files     dataset.Locations // Reference file names, relative to DataDir
	Tasks     string            // Task list CSV, relative to DataDir unless absolute
	Dataset   string            // Single YAML/JSON dataset; replaces the CSV layout when set
	Output    string            // Schedule CSV output path (empty to skip)
	DBPath    string            // SQLite database path (":memory:" for testing)
	Addr      string            // HTTP listen address
	LogLevel  string            // Log level: debug, info, warn, error
	LogFormat string            // Log format: text, json
}

// Default returns sensible defaults.
func Default() Config {
	return Config{
		DataDir:   ".",
		Files:     dataset.DefaultLocations(),
		Tasks:     "tasks.csv",
		DBPath:    "manpower.db",
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration. An explicit path must exist; with an empty path
// ./manpower.yaml is used when present. Environment variables such as
// MANPOWER_DATA_DIR or MANPOWER_LOG_LEVEL override file values.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("manpower")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("files.skills", cfg.Files.Skills)
	v.SetDefault("files.people", cfg.Files.People)
	v.SetDefault("files.skill_matrix", cfg.Files.SkillMatrix)
	v.SetDefault("tasks", cfg.Tasks)
	v.SetDefault("dataset", cfg.Dataset)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("addr", cfg.Addr)
	v.SetDefault("log.level", cfg.LogLevel)
	v.SetDefault("log.format", cfg.LogFormat)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return cfg, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("manpower")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.DataDir = v.GetString("data_dir")
	cfg.Files = dataset.Locations{
		Skills:      v.GetString("files.skills"),
		People:      v.GetString("files.people"),
		SkillMatrix: v.GetString("files.skill_matrix"),
	}
	cfg.Tasks = v.GetString("tasks")
	cfg.Dataset = v.GetString("dataset")
	cfg.Output = v.GetString("output")
	cfg.DBPath = v.GetString("db_path")
	cfg.Addr = v.GetString("addr")
	cfg.LogLevel = v.GetString("log.level")
	cfg.LogFormat = v.GetString("log.format")
	return cfg, nil
}

// Source returns the data source described by the configuration.
func (c Config) Source() dataset.Source {
	if c.Dataset != "" {
		return &dataset.FileSource{Path: c.Dataset}
	}
	return &dataset.CSVSource{Dir: c.DataDir, Locations: c.Files, TaskList: c.Tasks}
}
