package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"horas/config"
	"horas/importer"
)

func TestDetectExportFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"./horas_totais.csv": "csv",
		"./diario.XLSX":      "excel",
		"./diario.xlsm":      "excel",
		"./diario.out":       "csv",
		"":                   "csv",
	}
	for path, want := range tests {
		assert.Equal(t, want, detectExportFormat(path), path)
	}
}

func TestExportCommand_RawRoundTrips(t *testing.T) {
	resetViper(t)

	source := writeWorklog(t, juneWorklog+"not-a-date,Coding,1\n")
	viper.Set(config.KeyDataFile, source)
	target := filepath.Join(t.TempDir(), "horas_totais.csv")
	setExportFlags(t, "raw", "", target)

	var out bytes.Buffer
	exportCmd.SetOut(&out)
	t.Cleanup(func() { exportCmd.SetOut(nil) })

	require.NoError(t, exportCmd.RunE(exportCmd, nil))
	assert.Contains(t, out.String(), "Rows: 3, Mode: raw, Format: csv")

	exported, err := importer.Load(target)
	require.NoError(t, err)
	original, err := importer.Load(source)
	require.NoError(t, err)
	assert.Equal(t, original, exported)
}

func TestExportCommand_DailyCSV(t *testing.T) {
	resetViper(t)

	viper.Set(config.KeyDataFile, writeWorklog(t, juneWorklog+"2024-06-01,Review,1.5\n"))
	target := filepath.Join(t.TempDir(), "diario.csv")
	setExportFlags(t, "daily", "", target)

	var out bytes.Buffer
	exportCmd.SetOut(&out)
	t.Cleanup(func() { exportCmd.SetOut(nil) })

	require.NoError(t, exportCmd.RunE(exportCmd, nil))
	assert.Contains(t, out.String(), "Days: 3, Mode: daily")

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Data,Horas Totais\n2024-06-01,4.50\n2024-06-02,2.00\n2024-06-08,4.00\n", string(content))
}

func TestExportCommand_RefusesToOverwriteSource(t *testing.T) {
	resetViper(t)

	source := writeWorklog(t, juneWorklog)
	viper.Set(config.KeyDataFile, source)
	setExportFlags(t, "raw", "", filepath.Join(filepath.Dir(source), ".", "horas.csv"))

	err := exportCmd.RunE(exportCmd, nil)
	require.ErrorIs(t, err, errExportOverwritesSource)

	content, readErr := os.ReadFile(source)
	require.NoError(t, readErr)
	assert.Equal(t, juneWorklog, string(content))
}

func TestSamePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "horas.csv")
	require.NoError(t, os.WriteFile(file, []byte(juneWorklog), 0o644))
	t.Chdir(dir)

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"identical", file, file, true},
		{"relative and absolute", "horas.csv", file, true},
		{"unclean", filepath.Join(dir, "sub", "..", "horas.csv"), file, true},
		{"different file", filepath.Join(dir, "horas_totais.csv"), file, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := samePath(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportCommand_RejectsUnknownMode(t *testing.T) {
	resetViper(t)

	viper.Set(config.KeyDataFile, writeWorklog(t, juneWorklog))
	setExportFlags(t, "weekly", "", filepath.Join(t.TempDir(), "x.csv"))

	err := exportCmd.RunE(exportCmd, nil)
	assert.ErrorContains(t, err, "unsupported export mode")
}

func setExportFlags(t *testing.T, mode, format, target string) {
	t.Helper()
	exportMode, exportFormat, exportOutput = mode, format, target
	t.Cleanup(func() {
		exportMode, exportFormat, exportOutput = "raw", "", "./horas_totais.csv"
	})
}
