package orchestrator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// PersistBundle is the on-disk form of one run's table.
type PersistBundle struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Inputs      []string  `json:"inputs" yaml:"inputs"`
	Metrics     []string  `json:"metrics" yaml:"metrics"`
	Rows        []Row     `json:"rows" yaml:"rows"`
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// persist writes t to path as YAML (.yaml, .yml) or JSON (anything else) and
// returns the run id stored in the bundle.
func persist(path string, inputs []string, t *Table) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	bundle := PersistBundle{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Inputs:      inputs,
		Metrics:     t.Metrics,
		Rows:        t.Rows,
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = writeYAML(path, bundle)
	default:
		err = writeJSON(path, bundle)
	}
	if err != nil {
		return "", fmt.Errorf("write table %s: %w", path, err)
	}
	return bundle.RunID, nil
}

// LoadBundle reads a bundle written by persist.
func LoadBundle(path string) (*PersistBundle, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out PersistBundle
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &out)
	default:
		err = json.Unmarshal(b, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("decode table %s: %w", path, err)
	}
	return &out, nil
}
