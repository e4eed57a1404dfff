package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/statcat/output"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statcat.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[defaults]
sort_order = "desc"
limit = 25
format = "table"
workers = 8
log_level = "info"

[queries.sluggers]
description = "forty home run seasons"
filter = "HR >= 40"
sort_key = "HR"
sort_order = "desc"

[queries.aces]
filter = "GS >= 30"
sort_key = "ERA"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Defaults{SortOrder: "desc", Limit: 25, Format: "table", Workers: 8, LogLevel: "info"}, cfg.Defaults)
	assert.Equal(t, []string{"aces", "sluggers"}, cfg.QueryNames())

	q, err := cfg.Query("sluggers")
	require.NoError(t, err)
	assert.Equal(t, Query{Description: "forty home run seasons", Filter: "HR >= 40", SortKey: "HR", SortOrder: "desc"}, q)
}

func TestLoad_KeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[defaults]\nlimit = 10\n"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Defaults.Limit)
	assert.Equal(t, "asc", cfg.Defaults.SortOrder)
	assert.Equal(t, "info", cfg.Defaults.LogLevel)
	assert.Empty(t, cfg.Defaults.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		msg     string
	}{
		{"bad sort order", "[defaults]\nsort_order = \"sideways\"\n", ErrInvalidConfig, "defaults.sort_order"},
		{"negative limit", "[defaults]\nlimit = -1\n", ErrInvalidConfig, "defaults.limit"},
		{"bad format", "[defaults]\nformat = \"xml\"\n", output.ErrUnknownFormat, "defaults.format"},
		{"negative workers", "[defaults]\nworkers = -2\n", ErrInvalidConfig, "defaults.workers"},
		{"bad log level", "[defaults]\nlog_level = \"loud\"\n", ErrInvalidConfig, "defaults.log_level"},
		{"bad query order", "[queries.q]\nsort_order = \"up\"\n", ErrInvalidConfig, "queries.q.sort_order"},
		{"unknown key", "[defaults]\nlimt = 3\n", ErrInvalidConfig, "defaults.limt"},
		{"syntax", "[defaults\n", nil, "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_ReportsEveryProblem(t *testing.T) {
	_, err := Load(writeConfig(t, "[defaults]\nlimit = -1\nworkers = -1\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "defaults.limit")
	assert.Contains(t, err.Error(), "defaults.workers")
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadDefault(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		cfg, err := LoadDefault("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvVar, writeConfig(t, "[defaults]\nlimit = 7\n"))
		cfg, err := LoadDefault("")
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Defaults.Limit)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(EnvVar, writeConfig(t, "[defaults]\nlimit = 7\n"))
		cfg, err := LoadDefault(writeConfig(t, "[defaults]\nlimit = 3\n"))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Defaults.Limit)
	})
}

func TestQuery_Unknown(t *testing.T) {
	_, err := Default().Query("sluggers")
	require.ErrorIs(t, err, ErrUnknownQuery)
	assert.Contains(t, err.Error(), "available: none")

	cfg := &Config{Queries: map[string]Query{"b": {}, "a": {}}}
	_, err = cfg.Query("c")
	assert.Contains(t, err.Error(), "available: a, b")
}
