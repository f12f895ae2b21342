package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"horas/config"
)

// resetViper gives a test a fresh global viper with defaults and restores it
// afterwards. Tests using it must not run in parallel.
func resetViper(t *testing.T) {
	t.Helper()

	reset := func() {
		cfgFile = ""
		viper.Reset()
		config.SetDefaults()
	}
	reset()
	t.Cleanup(reset)
}

func writeWorklog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "horas.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const juneWorklog = "Data,Atividade,Horas Totais\n" +
	"2024-06-01,Coding,3.0\n" +
	"2024-06-02,Coding,2.0\n" +
	"2024-06-08,Review,4.0\n"
