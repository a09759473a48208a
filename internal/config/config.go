// Package config loads the optional YAML configuration file and applies
// SALMONOMETER_* environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shreeramghimire/salmonometer/internal/catalog"
	"github.com/shreeramghimire/salmonometer/internal/constants"
	"github.com/shreeramghimire/salmonometer/internal/export"
	"github.com/shreeramghimire/salmonometer/internal/models"
	"github.com/shreeramghimire/salmonometer/internal/storage"
)

// S3Config holds the non-secret S3 settings
type S3Config struct {
	Bucket      string `yaml:"bucket"`
	Region      string `yaml:"region"`
	Endpoint    string `yaml:"endpoint"`
	Prefix      string `yaml:"prefix"`
	PathStyle   bool   `yaml:"path_style"`
	AccessKeyID string `yaml:"access_key_id"`
}

// OutputConfig selects where and how exports are written
type OutputConfig struct {
	Driver  string   `yaml:"driver"`
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats"`
	S3      S3Config `yaml:"s3"`
}

// Defaults pre-fill the configuration form
type Defaults struct {
	FishCount     int                  `yaml:"fish_count"`
	LocationCount int                  `yaml:"location_count"`
	LengthUnit    constants.LengthUnit `yaml:"length_unit"`
	WeightUnit    constants.WeightUnit `yaml:"weight_unit"`
	AttachImages  bool                 `yaml:"attach_images"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// Config is the application configuration
type Config struct {
	Output        OutputConfig `yaml:"output"`
	GuidelinesDir string       `yaml:"guidelines_dir"`
	// Parameters is the upstream sub-parameter override, keyed by category id
	Parameters        map[catalog.ID][]string `yaml:"parameters"`
	WelfareIndicators []string                `yaml:"welfare_indicators"`
	Defaults          Defaults                `yaml:"defaults"`
	Log               LogConfig               `yaml:"log"`

	// Path is the file the configuration was read from, empty when none existed
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		Output: OutputConfig{
			Driver:  string(storage.DriverFS),
			Dir:     constants.DefaultOutputDir,
			Formats: []string{string(export.FormatCSV), string(export.FormatXLSX)},
		},
		Defaults: Defaults{
			FishCount:     constants.DefaultFishCount,
			LocationCount: constants.DefaultLocationCount,
			LengthUnit:    constants.LengthCM,
			WeightUnit:    constants.WeightGram,
		},
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(constants.DefaultConfigDir, constants.ConfigFileName)
}

// ExpandPath expands a leading "~" to the user's home directory
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Load reads the file at path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := ExpandPath(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(expanded)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", expanded, err)
		}
		cfg.Path = expanded
	}

	cfg.LoadFromEnv(strings.TrimSuffix(constants.EnvPrefix, "_"))
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFromEnv applies PREFIX_* environment overrides
func (c *Config) LoadFromEnv(prefix string) {
	if v := os.Getenv(prefix + "_OUTPUT_DRIVER"); v != "" {
		c.Output.Driver = v
	}
	if v := os.Getenv(prefix + "_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv(prefix + "_GUIDELINES_DIR"); v != "" {
		c.GuidelinesDir = v
	}
	if v := os.Getenv(prefix + "_S3_BUCKET"); v != "" {
		c.Output.S3.Bucket = v
	}
	if v := os.Getenv(prefix + "_S3_REGION"); v != "" {
		c.Output.S3.Region = v
	}
	if v := os.Getenv(prefix + "_S3_ENDPOINT"); v != "" {
		c.Output.S3.Endpoint = v
	}
	if v := os.Getenv(prefix + "_S3_PREFIX"); v != "" {
		c.Output.S3.Prefix = v
	}
	if v := os.Getenv(prefix + "_S3_PATH_STYLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Output.S3.PathStyle = b
		}
	}
	if v := os.Getenv(prefix + "_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Debug = b
		}
	}
}

// Validate checks the settings that can be checked without a session
func (c *Config) Validate() error {
	if _, err := storage.ParseDriver(c.Output.Driver); err != nil {
		return err
	}
	if _, err := c.ExportFormats(); err != nil {
		return err
	}
	for id := range c.Parameters {
		if _, err := catalog.ParseID(string(id)); err != nil {
			return fmt.Errorf("config: unknown category %q under parameters", id)
		}
	}
	return nil
}

// ExportFormats parses output.formats; an empty list means csv
func (c *Config) ExportFormats() ([]export.Format, error) {
	if len(c.Output.Formats) == 0 {
		return []export.Format{export.FormatCSV}, nil
	}
	out := make([]export.Format, 0, len(c.Output.Formats))
	seen := make(map[export.Format]bool)
	for _, s := range c.Output.Formats {
		f, err := export.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// SessionDraft builds the pre-filled configuration for a new session
func (c *Config) SessionDraft(now time.Time) models.SessionConfig {
	draft := models.DefaultSessionConfig(now)
	if c.Defaults.FishCount > 0 {
		draft.FishCount = c.Defaults.FishCount
	}
	if c.Defaults.LocationCount > 0 {
		draft.LocationCount = c.Defaults.LocationCount
	}
	if c.Defaults.LengthUnit != "" {
		draft.LengthUnit = c.Defaults.LengthUnit
	}
	if c.Defaults.WeightUnit != "" {
		draft.WeightUnit = c.Defaults.WeightUnit
	}
	draft.AttachImages = c.Defaults.AttachImages
	if c.WelfareIndicators != nil {
		draft.WelfareIndicators = normalizeKeys(c.WelfareIndicators)
	}
	if c.Parameters != nil {
		draft.SubParams = make(map[catalog.ID][]string, len(c.Parameters))
		for id, params := range c.Parameters {
			if parsed, err := catalog.ParseID(string(id)); err == nil {
				id = parsed
			}
			draft.SubParams[id] = normalizeKeys(params)
		}
	}
	return draft
}

// normalizeKeys accepts display names ("Fin Condition") as well as ids ("fin_condition")
func normalizeKeys(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = catalog.Key(name)
	}
	return out
}

// SecretFunc resolves the S3 secret access key
type SecretFunc func() (string, error)

// StorageOptions builds the artifact sink options. The secret comes from
// AWS_SECRET_ACCESS_KEY when set, else from secret; a failing lookup leaves
// the default AWS credentials chain in charge.
func (c *Config) StorageOptions(secret SecretFunc) (storage.Options, error) {
	dir, err := ExpandPath(c.Output.Dir)
	if err != nil {
		return storage.Options{}, err
	}
	opts := storage.Options{
		Driver: c.Output.Driver,
		Dir:    dir,
		S3: storage.S3Config{
			Bucket:      c.Output.S3.Bucket,
			Region:      c.Output.S3.Region,
			Endpoint:    c.Output.S3.Endpoint,
			Prefix:      c.Output.S3.Prefix,
			PathStyle:   c.Output.S3.PathStyle,
			AccessKeyID: c.Output.S3.AccessKeyID,
		},
	}
	if opts.S3.AccessKeyID == "" {
		return opts, nil
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		opts.S3.SecretAccessKey = v
	} else if secret != nil {
		if v, err := secret(); err == nil {
			opts.S3.SecretAccessKey = v
		}
	}
	return opts, nil
}

// Guidelines returns the guideline image lookup, or nil when no directory is configured
func (c *Config) Guidelines() (*catalog.Guidelines, error) {
	if c.GuidelinesDir == "" {
		return nil, nil
	}
	dir, err := ExpandPath(c.GuidelinesDir)
	if err != nil {
		return nil, err
	}
	return catalog.GuidelinesDir(dir), nil
}

// Save writes the configuration as YAML, creating the parent directory
func (c *Config) Save(path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(expanded, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	c.Path = expanded
	return nil
}
