package cli

import (
	"fmt"
	"strings"

	"github.com/collurgy/collurgy/internal/colorspace"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/spf13/cobra"
)

var (
	themeInitForce bool
	themeInitModel string
	themeShowFmt   string
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeInitCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeConvertCmd)
	themeCmd.AddCommand(themeValidateCmd)

	themeInitCmd.Flags().BoolVarP(&themeInitForce, "force", "f", false, "overwrite an existing file")
	themeInitCmd.Flags().StringVar(&themeInitModel, "model", colorspace.CIELCH.String(), "color model (CIELCH, HSV, OKLCH, JZCZHZ)")
	themeShowCmd.Flags().StringVar(&themeShowFmt, "format", string(theme.FormatTOML), "document format (toml, json, yaml)")
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Create, inspect and convert theme documents",
}

var themeInitCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write the default theme",
	Long:  "Write the default theme to a file. Without an argument the configured theme path is used.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := currentConfig().Theme
		if len(args) == 1 {
			path = args[0]
		}

		model, err := colorspace.ParseModel(themeInitModel)
		if err != nil {
			return err
		}

		if fileExists(path) && !themeInitForce {
			return &PreflightError{
				Message:  fmt.Sprintf("%s already exists", path),
				Hint:     "Pass --force to overwrite it",
				NextStep: fmt.Sprintf("collurgy theme init --force %s", path),
			}
		}

		t := theme.Default()
		t.Model = model
		if err := theme.Save(path, t); err != nil {
			return err
		}
		logger.Info().Str("path", path).Str("model", model.String()).Msg("theme created")

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]string{"path": path, "model": model.String()})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current theme document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := loadTheme()
		if err != nil {
			return err
		}

		format := theme.Format(strings.ToLower(themeShowFmt))
		if IsJSONOutput() {
			format = theme.FormatJSON
		}
		data, err := theme.Marshal(t, format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var themeConvertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a theme between TOML, JSON and YAML",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := theme.Load(args[0])
		if err != nil {
			return err
		}
		if err := theme.Save(args[1], t); err != nil {
			return err
		}
		if !IsJSONOutput() {
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %s -> %s\n", args[0], args[1])
			return nil
		}
		return WriteOutput(cmd.OutOrStdout(), map[string]string{"from": args[0], "to": args[1]})
	},
}

// ValidationResult reports the outcome for one theme document.
type ValidationResult struct {
	Path     string           `json:"path"`
	Status   validationStatus `json:"status"`
	Error    string           `json:"error,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
}

func validateThemeFile(path string) ValidationResult {
	result := ValidationResult{Path: path, Status: validationOK}
	t, err := theme.Load(path)
	if err != nil {
		result.Status = validationFailed
		result.Error = err.Error()
		return result
	}
	for _, invalid := range t.InvalidExtras() {
		result.Warnings = append(result.Warnings, fmt.Sprintf("extras %s is not a palette slot and will be ignored", invalid))
	}
	if len(result.Warnings) > 0 {
		result.Status = validationWarning
	}
	return result
}

var themeValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check theme documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]ValidationResult, 0, len(args))
		failed := 0
		for _, path := range args {
			result := validateThemeFile(path)
			if result.Status == validationFailed {
				failed++
			}
			results = append(results, result)
		}

		if IsJSONOutput() {
			if err := WriteOutput(cmd.OutOrStdout(), results); err != nil {
				return err
			}
		} else {
			out := cmd.OutOrStdout()
			for _, result := range results {
				detail := result.Path
				if result.Error != "" {
					detail += ": " + result.Error
				}
				fmt.Fprintln(out, formatValidationStatus(result.Status, detail))
				for _, warning := range result.Warnings {
					fmt.Fprintf(out, "  %s\n", warning)
				}
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d theme documents are invalid", failed, len(args))
		}
		return nil
	},
}
