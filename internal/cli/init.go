package cli

import (
	"fmt"
	"path/filepath"

	"github.com/collurgy/collurgy/internal/config"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/spf13/cobra"
)

var (
	initForce     bool
	configDirFunc = config.Dir
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing files")
}

type initStepResult struct {
	Step    string `json:"step"`
	Status  string `json:"status"` // done, skipped, failed
	Message string `json:"message"`
}

const configTemplate = `# Collurgy Configuration File
#
# Every key can be overridden with a COLLURGY_ environment variable,
# e.g. COLLURGY_LOGGING_LEVEL=debug.

# Theme document used when --theme is not given.
theme: %s

# Extra exporter directories, searched after
# /usr/share/collurgy/exporters and the exporters/ directory next to this file.
exporter_dirs: []

# SQLite database for "collurgy library".
library_path: %s

logging:
  level: warn
  format: console

preview:
  # Color drawn for out-of-gamut cells in "collurgy preview plane".
  marker: "808080"
  columns: 48
  rows: 12
`

func createConfigFile() initStepResult {
	dir := configDirFunc()
	path := filepath.Join(dir, "config.yaml")

	if fileExists(path) && !initForce {
		return initStepResult{Step: "config", Status: "skipped", Message: path + " already exists"}
	}

	body := fmt.Sprintf(configTemplate, filepath.Join(dir, "theme.toml"), filepath.Join(dir, "library.db"))
	if err := writeFile(path, []byte(body)); err != nil {
		return initStepResult{Step: "config", Status: "failed", Message: err.Error()}
	}
	return initStepResult{Step: "config", Status: "done", Message: "created " + path}
}

func createThemeFile() initStepResult {
	path := filepath.Join(configDirFunc(), "theme.toml")

	if fileExists(path) && !initForce {
		return initStepResult{Step: "theme", Status: "skipped", Message: path + " already exists"}
	}
	if err := theme.Save(path, theme.Default()); err != nil {
		return initStepResult{Step: "theme", Status: "failed", Message: err.Error()}
	}
	return initStepResult{Step: "theme", Status: "done", Message: "created " + path}
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and a default theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		results := []initStepResult{createConfigFile(), createThemeFile()}

		if IsJSONOutput() {
			if err := WriteOutput(cmd.OutOrStdout(), results); err != nil {
				return err
			}
		} else {
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s %-7s %s\n", r.Step, r.Status, r.Message)
			}
		}

		for _, r := range results {
			if r.Status == "failed" {
				return fmt.Errorf("init %s failed: %s", r.Step, r.Message)
			}
		}
		return nil
	},
}
