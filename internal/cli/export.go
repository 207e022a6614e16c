package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/collurgy/collurgy/internal/config"
	"github.com/collurgy/collurgy/internal/exporters"
	"github.com/collurgy/collurgy/internal/logging"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/collurgy/collurgy/internal/watch"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportWrite  bool
	exportWatch  bool
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to this file instead of stdout")
	exportCmd.Flags().BoolVar(&exportWrite, "write", false, "write to the exporter's default path")
	exportCmd.Flags().BoolVar(&exportWatch, "watch", false, "re-export whenever the theme file changes")
}

// ExportResult is printed with --json when output goes to a file.
type ExportResult struct {
	Exporter string `json:"exporter"`
	Path     string `json:"path,omitempty"`
	Bytes    int    `json:"bytes"`
	Content  string `json:"content,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export <exporter>",
	Short: "Render the palette through an exporter",
	Long:  "Render the current theme's palette through a named exporter template and print or write the result.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		exp, err := catalog.Get(args[0])
		if err != nil {
			return &PreflightError{
				Message:  err.Error(),
				Hint:     "List the available exporters",
				NextStep: "collurgy exporters list",
			}
		}

		dest, err := exportDestination(exp)
		if err != nil {
			return err
		}

		t, path, err := loadTheme()
		if err != nil {
			return err
		}

		if !exportWatch {
			return writeExport(cmd.OutOrStdout(), cmd.ErrOrStderr(), exp, t, dest)
		}

		if path == "" {
			return &PreflightError{
				Message:  "--watch needs a theme file",
				Hint:     "Create a theme file or pass --theme",
				NextStep: "collurgy theme init",
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := watch.New(path, func(_ context.Context, t *theme.Theme) error {
			return writeExport(cmd.OutOrStdout(), cmd.ErrOrStderr(), exp, t, dest)
		}, watch.DefaultConfig(), logging.Component("watch"))
		return w.Run(ctx)
	},
}

func loadCatalog() (*exporters.Catalog, error) {
	cfg := currentConfig()
	paths := exporters.ExporterSearchPaths(config.Dir(), cfg.ExporterDirs...)
	return exporters.LoadCatalog(paths, logging.Component("exporters"))
}

// exportDestination resolves where rendered text goes; "" means stdout.
func exportDestination(exp *exporters.Exporter) (string, error) {
	if exportOutput != "" {
		return config.ExpandPath(exportOutput), nil
	}
	if !exportWrite {
		return "", nil
	}
	path, err := exp.OutputPath()
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", &PreflightError{
			Message: fmt.Sprintf("exporter %s has no default path", exp.Name),
			Hint:    "Choose a destination with -o",
		}
	}
	return path, nil
}

func writeExport(out, progressOut io.Writer, exp *exporters.Exporter, t *theme.Theme, dest string) error {
	rendered := exporters.Export(t, exp)

	if dest == "" {
		if IsJSONOutput() {
			return WriteOutput(out, ExportResult{Exporter: exp.Name, Bytes: len(rendered), Content: rendered})
		}
		_, err := io.WriteString(out, rendered)
		return err
	}

	status := beginExport(progressOut, exp.Name, dest)
	if err := writeFile(dest, []byte(rendered)); err != nil {
		status.fail(err)
		return err
	}
	status.finish(len(rendered))
	logger.Info().Str("exporter", exp.Name).Str("path", dest).Int("bytes", len(rendered)).Msg("exported")

	if IsJSONOutput() {
		return WriteOutput(out, ExportResult{Exporter: exp.Name, Path: dest, Bytes: len(rendered)})
	}
	return nil
}
