package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// FileName is looked up in the review root when no explicit path is given.
const FileName = ".e2elint.yaml"

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds run options. It selects files and output, never rules.
type Config struct {
	IncludeJS bool     `yaml:"include_js"`
	Exclude   []string `yaml:"exclude"`
	Workers   int      `yaml:"workers"`
	Output    string   `yaml:"output"`
	MinScore  int      `yaml:"min_score"`
}

func Default() *Config {
	return &Config{
		Workers: 1,
		Output:  OutputText,
	}
}

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "include_js": { "type": "boolean" },
    "exclude": { "type": "array", "items": { "type": "string" } },
    "workers": { "type": "integer", "minimum": 1, "maximum": 64 },
    "output": { "type": "string", "enum": ["text", "json", "yaml"] },
    "min_score": { "type": "integer", "minimum": 0, "maximum": 10 }
  }
}`

// IsOutputFormat reports whether format names a supported report format.
func IsOutputFormat(format string) bool {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Load reads the config for root. An explicit path must exist; the default
// file is optional and its absence yields Default().
func Load(root, explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = filepath.Join(configDir(root), FileName)
	}

	// #nosec G304 -- config path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && explicit == "" {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse validates data against the config schema and decodes it.
func Parse(data []byte) (*Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// configDir returns root, or its directory when root names a file.
func configDir(root string) string {
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return filepath.Dir(root)
	}
	return root
}
