package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cratefit/costmatrix"
	"github.com/katalvlaran/cratefit/report"
)

// ConfigEnv names the environment variable holding a config file path.
const ConfigEnv = "CRATEFIT_CONFIG"

// ErrConfig reports an unreadable or invalid configuration.
var ErrConfig = errors.New("cli: invalid configuration")

// Config is the effective configuration of a command.
type Config struct {
	// Format is the output encoding: text, json, yaml or cbor.
	Format string `yaml:"format" json:"format"`

	// Label prefixes the box count line.
	Label string `yaml:"label" json:"label"`

	// LogLevel is a slog level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// MaxDoublings bounds cost normalisation (crate-assign only).
	MaxDoublings int `yaml:"max_doublings" json:"max_doublings"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Format:       string(report.FormatText),
		Label:        report.DefaultLabel,
		LogLevel:     "warn",
		MaxDoublings: costmatrix.DefaultMaxDoublings,
	}
}

// LoadFile overlays the file at path onto base. Keys absent from the file
// keep their base values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}

	cfg := base
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
		if errors.Is(err, io.EOF) {
			err = nil // empty file
		}
	}
	if err != nil {
		return base, fmt.Errorf("%w: parsing %s: %v", ErrConfig, path, err)
	}
	if err = cfg.Validate(); err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if c.MaxDoublings < 0 {
		return fmt.Errorf("%w: max_doublings %d is negative", ErrConfig, c.MaxDoublings)
	}
	if strings.ContainsAny(c.Label, "\n\r") {
		return fmt.Errorf("%w: label must be a single line", ErrConfig)
	}

	return nil
}
