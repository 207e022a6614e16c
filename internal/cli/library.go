package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/collurgy/collurgy/internal/db"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/spf13/cobra"
)

var (
	libraryFrom   string
	libraryOutput string
	libraryYes    bool
)

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(librarySaveCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryLoadCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)

	librarySaveCmd.Flags().StringVar(&libraryFrom, "from", "", "theme document to save (default: current theme)")
	libraryLoadCmd.Flags().StringVarP(&libraryOutput, "output", "o", "", "write the theme to this file instead of stdout")
	libraryDeleteCmd.Flags().BoolVarP(&libraryYes, "yes", "y", false, "skip confirmation")
}

func openDatabase() (*db.DB, error) {
	database, err := db.Open(currentConfig().LibraryPath)
	if err != nil {
		return nil, err
	}
	if _, err := database.MigrateUp(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate library: %w", err)
	}
	return database, nil
}

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Keep named themes in a local library",
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a theme under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			t   *theme.Theme
			err error
		)
		if libraryFrom != "" {
			t, err = theme.Load(libraryFrom)
		} else {
			t, _, err = loadTheme()
		}
		if err != nil {
			return err
		}

		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		saved, err := db.NewThemeRepository(database).Save(cmd.Context(), args[0], t)
		if err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
		logger.Info().Str("name", saved.Name).Str("id", saved.ID).Msg("theme saved")

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), saved)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", saved.Name)
		return nil
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		summaries, err := db.NewThemeRepository(database).List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list themes: %w", err)
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), summaries)
		}
		if len(summaries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved themes.")
			return nil
		}

		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{s.Name, s.Model, s.UpdatedAt.Local().Format(time.DateTime), s.ID})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "MODEL", "UPDATED", "ID"}, rows)
	},
}

var libraryLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Print or write a saved theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		saved, err := db.NewThemeRepository(database).GetByName(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load %q: %w", args[0], err)
		}

		if libraryOutput != "" {
			if err := theme.Save(libraryOutput, saved.Theme); err != nil {
				return err
			}
			if IsJSONOutput() {
				return WriteOutput(cmd.OutOrStdout(), map[string]string{"name": saved.Name, "path": libraryOutput})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", saved.Name, libraryOutput)
			return nil
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), saved)
		}
		data, err := theme.Marshal(saved.Theme, theme.FormatTOML)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a saved theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !libraryYes && IsInteractive() {
			if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete %s?", args[0]), false) {
				fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
				return nil
			}
		}

		database, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close()

		if err := db.NewThemeRepository(database).Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete %q: %w", args[0], err)
		}
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]string{"deleted": args[0]})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}
