package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/me/manpower/internal/dataset"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Files != dataset.DefaultLocations() {
		t.Errorf("Files = %+v", cfg.Files)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log = %s/%s, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manpower.yaml")
	doc := `
data_dir: /srv/crew
files:
  skills: Skills.csv
tasks: week-12.csv
output: out/schedule.csv
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/srv/crew" || cfg.Tasks != "week-12.csv" || cfg.Output != "out/schedule.csv" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Files.Skills != "Skills.csv" || cfg.Files.People != "people.csv" {
		t.Errorf("Files = %+v, want overridden skills and default people", cfg.Files)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "text" {
		t.Errorf("log = %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MANPOWER_DATA_DIR", "/from/env")
	t.Setenv("MANPOWER_LOG_FORMAT", "json")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/from/env" || cfg.LogFormat != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.DBPath != "manpower.db" {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestConfig_Source(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/data"
	if _, ok := cfg.Source().(*dataset.CSVSource); !ok {
		t.Errorf("Source() = %T, want *dataset.CSVSource", cfg.Source())
	}
	cfg.Dataset = "/data/crew.yaml"
	src, ok := cfg.Source().(*dataset.FileSource)
	if !ok || src.Path != "/data/crew.yaml" {
		t.Errorf("Source() = %#v, want FileSource", cfg.Source())
	}
}
