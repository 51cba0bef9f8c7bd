// Package config holds run settings. Values are layered: defaults, then an
// optional YAML file, then GRAPH_LOADER_* environment variables; the CLI
// applies its flags last.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"graph-loader/internal/xref"
)

// Environment variable names.
const (
	EnvLogMode       = "GRAPH_LOADER_LOG_MODE"
	EnvDuplicates    = "GRAPH_LOADER_DUPLICATES"
	EnvSeed          = "GRAPH_LOADER_SEED"
	EnvSequentialIDs = "GRAPH_LOADER_SEQUENTIAL_IDS"
)

// Data formats.
const (
	FormatAuto     = "auto"
	FormatXLSX     = "xlsx"
	FormatSQLite   = "sqlite"
	FormatPostgres = "postgres"
)

// Config is the full set of run settings.
type Config struct {
	// Mapping is the path of the YAML mapping file.
	Mapping string `yaml:"mapping,omitempty"`
	// Data is a workbook path, a SQLite file or a Postgres DSN.
	Data string `yaml:"data,omitempty"`
	// Format selects how Data is read; auto guesses from Data.
	Format string `yaml:"format,omitempty"`
	// Out is the script path; empty means stdout.
	Out string `yaml:"out,omitempty"`
	// LogMode is dev, prod or quiet.
	LogMode string `yaml:"log_mode,omitempty"`
	// Duplicates is overwrite or reject.
	Duplicates string `yaml:"duplicates,omitempty"`
	// Seed seeds deferred lookup ids; 0 picks a random seed.
	Seed uint64 `yaml:"seed,omitempty"`
	// SequentialIDs numbers deferred lookups 1, 2, ... instead.
	SequentialIDs bool `yaml:"sequential_ids,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format:     FormatAuto,
		LogMode:    "dev",
		Duplicates: xref.Overwrite.String(),
	}
}

// Load returns the defaults overlaid with the file at path (if not empty)
// and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := cfg.merge(data); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// merge decodes YAML over the current values. Unknown keys are rejected.
func (c *Config) merge(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(name)
		v = strings.TrimSpace(v)

		return v, ok && v != ""
	}

	if v, ok := get(EnvLogMode); ok {
		c.LogMode = v
	}

	if v, ok := get(EnvDuplicates); ok {
		c.Duplicates = v
	}

	if v, ok := get(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSeed, err)
		}

		c.Seed = seed
	}

	if v, ok := get(EnvSequentialIDs); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvSequentialIDs, err)
		}

		c.SequentialIDs = b
	}

	return nil
}

// Validate checks that every setting has an accepted value and that the
// inputs are set.
func (c *Config) Validate() error {
	var errs []error

	if c.Mapping == "" {
		errs = append(errs, errors.New("mapping file is required"))
	}

	if c.Data == "" {
		errs = append(errs, errors.New("data source is required"))
	}

	if _, err := c.DuplicatePolicy(); err != nil {
		errs = append(errs, err)
	}

	switch c.Format {
	case FormatAuto, FormatXLSX, FormatSQLite, FormatPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown data format %q", c.Format))
	}

	switch strings.ToLower(c.LogMode) {
	case "dev", "development", "prod", "production", "quiet":
	default:
		errs = append(errs, fmt.Errorf("unknown log mode %q", c.LogMode))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// DuplicatePolicy parses Duplicates.
func (c *Config) DuplicatePolicy() (xref.DuplicatePolicy, error) {
	return xref.ParseDuplicatePolicy(c.Duplicates)
}

// IDSource returns the deferred lookup id source the settings ask for.
func (c *Config) IDSource() xref.IDSource {
	if c.SequentialIDs {
		return xref.NewSequentialIDs(1)
	}

	return xref.NewRandomIDs(c.Seed)
}

// DataFormat resolves FormatAuto: Postgres URLs, .xlsx/.xlsm workbooks, and
// SQLite for anything else.
func (c *Config) DataFormat() string {
	if c.Format != FormatAuto && c.Format != "" {
		return c.Format
	}

	lower := strings.ToLower(c.Data)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return FormatPostgres
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xlsm"):
		return FormatXLSX
	default:
		return FormatSQLite
	}
}
