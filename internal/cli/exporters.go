package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/collurgy/collurgy/internal/exporters"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportersCmd)
	exportersCmd.AddCommand(exportersListCmd)
	exportersCmd.AddCommand(exportersShowCmd)
}

// ExporterView is the JSON form of an exporter record.
type ExporterView struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Source      string         `json:"source"`
	Path        string         `json:"path,omitempty"`
	Extras      map[string]int `json:"extras,omitempty"`
	Formatter   string         `json:"formatter,omitempty"`
}

func newExporterView(exp *exporters.Exporter, withFormatter bool) ExporterView {
	view := ExporterView{
		Name:        exp.Name,
		Description: exp.Description,
		Source:      exp.Source,
		Path:        exp.Path,
		Extras:      exp.Extras,
	}
	if withFormatter {
		view.Formatter = exp.Formatter
	}
	return view
}

var exportersCmd = &cobra.Command{
	Use:     "exporters",
	Aliases: []string{"exporter"},
	Short:   "Inspect available exporters",
}

var exportersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exporters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		list := catalog.List()
		if IsJSONOutput() {
			views := make([]ExporterView, 0, len(list))
			for _, exp := range list {
				views = append(views, newExporterView(exp, false))
			}
			return WriteOutput(cmd.OutOrStdout(), views)
		}

		rows := make([][]string, 0, len(list))
		for _, exp := range list {
			rows = append(rows, []string{exp.Name, exp.Source, exp.Path, exp.Description})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "SOURCE", "PATH", "DESCRIPTION"}, rows)
	},
}

var exportersShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show an exporter's template and bindings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		exp, err := catalog.Get(args[0])
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), newExporterView(exp, true))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name:        %s\n", exp.Name)
		if exp.Description != "" {
			fmt.Fprintf(out, "Description: %s\n", exp.Description)
		}
		fmt.Fprintf(out, "Source:      %s\n", exp.Source)
		if exp.Path != "" {
			fmt.Fprintf(out, "Path:        %s\n", exp.Path)
		}
		if len(exp.Extras) > 0 {
			names := make([]string, 0, len(exp.Extras))
			for name := range exp.Extras {
				names = append(names, name)
			}
			sort.Strings(names)
			bindings := make([]string, 0, len(names))
			for _, name := range names {
				bindings = append(bindings, fmt.Sprintf("%s=%d", name, exp.Extras[name]))
			}
			fmt.Fprintf(out, "Extras:      %s\n", strings.Join(bindings, ", "))
		}
		fmt.Fprintln(out, "Formatter:")
		fmt.Fprint(out, exp.Formatter)
		if !strings.HasSuffix(exp.Formatter, "\n") {
			fmt.Fprintln(out)
		}
		return nil
	},
}
