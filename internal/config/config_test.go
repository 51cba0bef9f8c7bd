package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graph-loader/internal/xref"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph-loader.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mapping: m.yaml
data: people.xlsx
duplicates: reject
seed: 9
log_mode: prod
`), 0o644))

	t.Setenv(EnvLogMode, "quiet")
	t.Setenv(EnvSequentialIDs, "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "m.yaml", cfg.Mapping)
	assert.Equal(t, "people.xlsx", cfg.Data)
	assert.Equal(t, "reject", cfg.Duplicates)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, "quiet", cfg.LogMode, "environment wins over file")
	assert.True(t, cfg.SequentialIDs)
	require.NoError(t, cfg.Validate())

	p, err := cfg.DuplicatePolicy()
	require.NoError(t, err)
	assert.Equal(t, xref.RejectDuplicates, p)

	assert.IsType(t, &xref.SequentialIDs{}, cfg.IDSource())
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "c.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dupes: reject\n"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dupes")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("bad seed", func(t *testing.T) {
		t.Setenv(EnvSeed, "-1")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvSeed)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Setenv(EnvSequentialIDs, "maybe")

		_, err := Load("")
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Duplicates = "merge"
	cfg.Format = "csv"
	cfg.LogMode = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	for _, want := range []string{"mapping file is required", "data source is required", "merge", "csv", "loud"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestDataFormat(t *testing.T) {
	tests := []struct {
		data, format, expected string
	}{
		{"people.xlsx", FormatAuto, FormatXLSX},
		{"People.XLSM", FormatAuto, FormatXLSX},
		{"postgres://u@localhost/db", FormatAuto, FormatPostgres},
		{"data.db", FormatAuto, FormatSQLite},
		{"data.bin", FormatXLSX, FormatXLSX},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			cfg := &Config{Data: tt.data, Format: tt.format}
			assert.Equal(t, tt.expected, cfg.DataFormat())
		})
	}
}
