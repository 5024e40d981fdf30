package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/me/manpower/pkg/model"
	"gopkg.in/yaml.v3"
)

// FileSource loads a dataset from a single YAML or JSON document holding
// all four record sets.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string {
	return "file:" + s.Path
}

func (s *FileSource) Load(ctx context.Context) (*model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	rec, err := ParseRecords(data, filepath.Ext(s.Path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return Resolve(*rec)
}

// ParseRecords decodes a dataset document. ext selects the format: ".json"
// for JSON, anything else is read as YAML.
func ParseRecords(data []byte, ext string) (*Records, error) {
	var rec Records
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, err
		}
	}
	return &rec, nil
}
