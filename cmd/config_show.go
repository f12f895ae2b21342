package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"horas/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  horas config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		out := cmd.OutOrStdout()
		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Fprintln(out, "Config file loaded from:", configPath)
		} else {
			fmt.Fprintln(out, "No config file loaded, using defaults and environment.")
		}
		printConfig(cmd, cfg)
		return nil
	},
}

func printConfig(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration:")
	fmt.Fprintf(out, "%s: %s\n", config.KeyDataFile, cfg.Data.File)
	fmt.Fprintf(out, "%s: %s\n", config.KeyDataFormat, cfg.Data.Format)
	fmt.Fprintf(out, "%s: %q\n", config.KeyDataDelimiter, string(cfg.Data.DelimiterRune()))
	fmt.Fprintf(out, "%s: %s\n", config.KeyDataSQLiteTable, cfg.Data.SQLiteTable)
	fmt.Fprintf(out, "%s: %s\n", config.KeyWatchInterval, cfg.Watch.Interval)
	fmt.Fprintf(out, "%s: %d\n", config.KeyServePort, cfg.Serve.Port)
	fmt.Fprintf(out, "%s: %s\n", config.KeyLogLevel, cfg.Log.Level)
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
