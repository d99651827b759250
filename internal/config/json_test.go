package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/topup/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"users_file":     "in/users.json",
		"companies_file": "in/companies.json",
		"output_file":    "out/report.txt",
		"reference_file": "expected.txt",
		"ledger_dsn":     "ledger.db",
		"progress":       "auto",
		"log_level":      "info",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJSON(cfg, []string{"-config", pathFlag}))

		assert.Equal(t, "in/users.json", cfg.UsersFile)
		assert.Equal(t, "in/companies.json", cfg.CompaniesFile)
		assert.Equal(t, "out/report.txt", cfg.OutputFile)
		assert.Equal(t, "expected.txt", cfg.ReferenceFile)
		assert.Equal(t, "ledger.db", cfg.LedgerDSN)
		assert.Equal(t, ProgressAuto, cfg.Progress)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(cfg, []string{"-users", "x.json"}))

		assert.Equal(t, "users.json", cfg.UsersFile)
		assert.Equal(t, ProgressAlways, cfg.Progress)
	})

	t.Run("partial file keeps earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"output_file": "only.txt"})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(cfg, []string{"-c", partial}))

		assert.Equal(t, "only.txt", cfg.OutputFile)
		assert.Equal(t, "users.json", cfg.UsersFile)
		assert.Equal(t, "example_output.txt", cfg.ReferenceFile)
	})

	t.Run("empty value clears earlier one", func(t *testing.T) {
		cleared := writeTempJSON(t, dir, "cleared.json", map[string]any{
			"reference_file": "",
			"ledger_dsn":     "",
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		cfg.LedgerDSN = "ledger.db"
		require.NoError(t, parseJSON(cfg, []string{"-c", cleared}))

		assert.Equal(t, "", cfg.ReferenceFile)
		assert.Equal(t, "", cfg.LedgerDSN)
		assert.Equal(t, "output.txt", cfg.OutputFile)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		err := parseJSON(&Config{}, []string{"-config", bad})
		require.ErrorIs(t, err, common.ErrInvalidConfig)
	})

	t.Run("missing file → error", func(t *testing.T) {
		err := parseJSON(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")})
		require.ErrorIs(t, err, common.ErrInvalidConfig)
	})
}
