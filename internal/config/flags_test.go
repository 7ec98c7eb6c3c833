package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(*Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-i", "in.csv", "-d", "x.db", "-t", "People", "-f", "100", "-l", "Doe",
				"-x", "'a','b'", "-n", "2", "-p", "123", "-v", "debug", "-o", "text"},
			want: func(c *Config) {
				c.InputPath, c.DBPath, c.TableName = "in.csv", "x.db", "People"
				c.SalaryFloor, c.LastName, c.ExtraRecord = 100, "Doe", "'a','b'"
				c.UpdateID, c.UpdatePhone = 2, "123"
				c.LogLevel, c.LogFormat = "debug", "text"
			},
		},
		{
			name: "equals form and unknown flags ignored",
			args: []string{"-c", "cfg.json", "-i=s3://b/k", "-unknown", "v"},
			want: func(c *Config) { c.InputPath = "s3://b/k" },
		},
		{
			name:    "bad number",
			args:    []string{"-n", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}
