package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "people.csv", c.InputPath)
	assert.Equal(t, "dbschema.db", c.DBPath)
	assert.Equal(t, "Staff", c.TableName)
	assert.EqualValues(t, 3500, c.SalaryFloor)
	assert.Equal(t, "Sloan", c.LastName)
	assert.Equal(t, DefaultExtraRecord, c.ExtraRecord)
	assert.EqualValues(t, 1, c.UpdateID)
	assert.Equal(t, "666-55-4444", c.UpdatePhone)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "auto", c.LogFormat)
	assert.NoError(t, c.Validate())
}

func TestLoad_NoSourcesGivesDefaults(t *testing.T) {
	cfg, err := Load(nil, noEnv)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoad_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staffdb.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"input": "from-file.csv",
		"db_path": "file.db",
		"table": "FileStaff",
		"last_name": "FileName"
	}`), 0o600))

	env := envMap(map[string]string{
		"STAFFDB_DB_PATH": "env.db",
		"STAFFDB_TABLE":   "EnvStaff",
	})
	args := []string{"-c", path, "-t", "FlagStaff"}

	cfg, err := Load(args, env)
	require.NoError(t, err)

	want := defaults()
	want.InputPath = "from-file.csv"
	want.DBPath = "env.db"
	want.TableName = "FlagStaff"
	want.LastName = "FileName"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"empty input", []string{"-i="}},
		{"empty db path", []string{"-d="}},
		{"table with spaces", []string{"-t", "Staff; DROP TABLE x"}},
		{"zero update id", []string{"-n", "0"}},
		{"bad log format", []string{"-o", "xml"}},
		{"bad log level", []string{"-v", "verbose"}},
		{"non-numeric floor", []string{"-f", "lots"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, noEnv)
			require.Error(t, err)
		})
	}
}

func TestValidate_AcceptsKnownLogLevels(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", "warn", "warning", "Error"} {
		c := defaults()
		c.LogLevel = lvl
		assert.NoError(t, c.Validate(), lvl)
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "nope.json")}, noEnv)
	require.Error(t, err)
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STAFFDB_LAST_NAME=FromDotEnv\nSTAFFDB_UPDATE_PHONE=000\n"), 0o600))

	t.Setenv("STAFFDB_LAST_NAME", "FromEnv")
	t.Setenv("STAFFDB_UPDATE_PHONE", "")
	require.NoError(t, os.Unsetenv("STAFFDB_UPDATE_PHONE"))

	loadDotEnv(path)

	cfg, err := Load(nil, os.LookupEnv)
	require.NoError(t, err)
	assert.Equal(t, "FromEnv", cfg.LastName)
	assert.Equal(t, "000", cfg.UpdatePhone)
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	require.NotPanics(t, func() { loadDotEnv(filepath.Join(t.TempDir(), ".env")) })
}
