package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"horas/config"
)

const (
	defaultConfigName = ".horas.yaml"
	defaultEditor     = "vi"
)

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor.",
	Long: `Open the active horas config file in your editor ($VISUAL, then $EDITOR, then vi).

A missing config file is first created from the example template. Once the
editor exits the file is validated and the resulting values are printed.`,
	Example: `
  # Edit active config
  horas config edit

  # Edit with a specific editor
  EDITOR="code --wait" horas config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		configPath, err := resolveConfigEditPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}
		created, err := ensureConfigFileWithTemplate(configPath)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(out, "No config file found. Created example config at: %s\n", configPath)
		}

		editor, err := buildEditorCommand(resolveEditorValue(os.Getenv("VISUAL"), os.Getenv("EDITOR")), configPath)
		if err != nil {
			return err
		}
		editor.Stdin, editor.Stdout, editor.Stderr = os.Stdin, os.Stdout, os.Stderr
		if err := editor.Run(); err != nil {
			return fmt.Errorf("run editor %s: %w", editor.Path, err)
		}

		cfg, err := validateConfigFile(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Configuration saved and validated: %s\n", configPath)
		printConfig(cmd, cfg)
		return nil
	},
}

// resolveConfigEditPath prefers --configFile, then the file viper loaded,
// then $HOME/.horas.yaml.
func resolveConfigEditPath(configFileFlag, configFileUsed string) (string, error) {
	for _, candidate := range []string{configFileFlag, configFileUsed} {
		if strings.TrimSpace(candidate) != "" {
			return candidate, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigName), nil
}

// ensureConfigFileWithTemplate writes the example config to path unless a
// file already exists there. It reports whether a file was written.
func ensureConfigFileWithTemplate(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("stat config file %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o600); err != nil {
		return false, fmt.Errorf("write example config %s: %w", path, err)
	}
	return true, nil
}

func validateConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := config.ValidateYAMLContent(content)
	if err != nil {
		return nil, fmt.Errorf("config validation failed in %s: %w", path, err)
	}
	return cfg, nil
}

func resolveEditorValue(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return defaultEditor
}

// buildEditorCommand splits an editor value such as "code --wait" and
// appends the config path as the last argument.
func buildEditorCommand(editorValue, configPath string) (*exec.Cmd, error) {
	fields := strings.Fields(editorValue)
	if len(fields) == 0 {
		return nil, errors.New("editor command is empty")
	}
	return exec.Command(fields[0], append(fields[1:], configPath)...), nil
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
