package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAMLContent_Example(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	require.NoError(t, err)

	assert.Equal(t, "./horas.csv", cfg.Data.File)
	assert.Equal(t, ',', cfg.Data.DelimiterRune())
	assert.Equal(t, "horas", cfg.Data.SQLiteTable)
	assert.Equal(t, 30*time.Second, cfg.Watch.Interval)
	assert.Equal(t, 8501, cfg.Serve.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidateYAMLContent_DefaultsApplyToPartialFile(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte("data:\n  file: \"/tmp/log.xlsx\"\n  delimiter: \";\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/log.xlsx", cfg.Data.File)
	assert.Equal(t, ';', cfg.Data.DelimiterRune())
	assert.Equal(t, 30*time.Second, cfg.Watch.Interval)
}

func TestValidateYAMLContent_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"empty data file", "data:\n  file: \"  \"\n"},
		{"unknown format", "data:\n  format: \"parquet\"\n"},
		{"multi character delimiter", "data:\n  delimiter: \";;\"\n"},
		{"quote delimiter", "data:\n  delimiter: '\"'\n"},
		{"unsafe sqlite table", "data:\n  sqlite_table: \"horas; drop\"\n"},
		{"watch interval below one second", "watch:\n  interval: 100ms\n"},
		{"port out of range", "serve:\n  port: 70000\n"},
		{"unknown log level", "log:\n  level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateYAMLContent([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}
