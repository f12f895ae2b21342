package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage horas configuration file values.",
	Long: `Create, edit, display, and delete the horas configuration file.

The configuration stores application-wide values:
- data.file / data.format / data.delimiter / data.sqlite_table
- watch.interval
- serve.port
- log.level

Every key can also be set through the environment with the HORAS_ prefix,
e.g. HORAS_DATA_FILE, including from a .env file in the working directory.`,
	Example: `
  # Create default config in $HOME/.horas.yaml
  horas config create

  # Show active config and source file
  horas config show

  # Open active config in editor (creates example if missing)
  horas config edit

  # Delete active config file
  horas config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
