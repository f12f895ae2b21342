package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNoConfigFile = errors.New("no configuration file found")

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the configuration file currently selected by horas.

The worklog file itself is never touched. If no configuration file is
active, the command returns an error.`,
	Example: `
  # Delete active config
  horas config delete

  # Delete config at a custom path
  horas --configFile ./custom-horas.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := deleteConfigFile(viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file successfully deleted: %s\n", configPath)
		return nil
	},
}

func deleteConfigFile(configPath string) (string, error) {
	if configPath == "" {
		return "", errNoConfigFile
	}
	if err := os.Remove(configPath); err != nil {
		return "", fmt.Errorf("error deleting configuration file: %w", err)
	}
	return configPath, nil
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
