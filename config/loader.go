package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/linearkit/errors"
)

// maxConfigSize caps config file reads; anything larger is misconfigured.
const maxConfigSize = 1 << 20

// LoadFile loads configuration from a JSON or YAML file, chosen by
// extension (.yaml/.yml for YAML, anything else parses as JSON). Defaults
// are applied to unset fields; the result is validated.
func LoadFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "LoadFile", "stat config file")
	}
	if info.Size() > maxConfigSize {
		return nil, errors.WrapInvalid(errors.ErrInvalidConfig,
			"Loader", "LoadFile", "config file too large")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "LoadFile", "read config file")
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.WrapInvalid(err, "Loader", "LoadFile", "parse YAML config")
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, errors.WrapInvalid(err, "Loader", "LoadFile", "parse JSON config")
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
