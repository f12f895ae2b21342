/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"horas/config"
	"horas/internal/logging"
)

var (
	cfgFile  string
	dataFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "horas",
	Short: "Track and summarize the hours dedicated to a project.",
	Long: `
**********************************************
*               HORAS TOTAIS                 *
**********************************************

This CLI reads a worklog file with the columns "Data", "Atividade" and
"Horas Totais", prints the current month and week totals together with the
daily, weekly and monthly averages, exports the data and serves a local
dashboard that reloads whenever the file changes.

Supported input formats:
- CSV: .csv, .tsv
- Excel: .xlsx, .xlsm, .xls
- SQLite: .db, .sqlite, .sqlite3 (read-only, table from data.sqlite_table)
`,
	Example: `
  # Create configuration file
  horas config create

  # Print the summary of ./horas.csv
  horas summary

  # Keep printing the summary whenever the file changes
  horas summary --watch --file ./horas.csv

  # Export daily totals
  horas export --mode daily --output ./diario.xlsx

  # Start the dashboard
  horas serve --port 8501
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := logging.Setup(viper.GetString(config.KeyLogLevel))
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.horas.yaml, then ./.horas.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "Worklog file to read (overrides data.file)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error (overrides log.level)")

	_ = viper.BindPFlag(config.KeyDataFile, rootCmd.PersistentFlags().Lookup("file"))
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".horas" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".horas")
	}

	viper.SetEnvPrefix("HORAS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in. Defaults cover every key.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintf(os.Stderr, "Config file %s could not be read: %v\n", cfgFile, err)
	}
}
