package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/collurgy/collurgy/internal/palette"
	"github.com/collurgy/collurgy/internal/preview"
	"github.com/spf13/cobra"
)

var (
	previewColumns int
	previewRows    int
)

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.AddCommand(previewPlaneCmd)
	previewPlaneCmd.Flags().IntVar(&previewColumns, "columns", 0, "hue samples (default from config)")
	previewPlaneCmd.Flags().IntVar(&previewRows, "rows", 0, "chroma samples (default from config)")
}

func previewStyles(cmd *cobra.Command, p palette.Palette, accent int) preview.Styles {
	return preview.BuildStyles(lipgloss.NewRenderer(cmd.OutOrStdout()), preview.TokensFromPalette(p, accent))
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the palette as terminal swatches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := loadTheme()
		if err != nil {
			return err
		}
		p := palette.Compute(t)
		fmt.Fprintln(cmd.OutOrStdout(), preview.Render(previewStyles(cmd, p, t.Accent), p))
		return nil
	},
}

// parseSlot accepts a slot name such as "bright-red" or an index.
func parseSlot(value string) (int, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if slot, ok := palette.SlotByName(value); ok {
		return slot, nil
	}
	if slot, err := strconv.Atoi(value); err == nil && palette.ValidSlot(slot) {
		return slot, nil
	}
	return 0, fmt.Errorf("unknown slot %q (use a name like bright-red or an index 0-15)", value)
}

var previewPlaneCmd = &cobra.Command{
	Use:   "plane <slot-name>",
	Short: "Show the hue/chroma plane around a palette slot",
	Long:  "Sweep hue and chroma at the lightness of a palette slot. Cells outside the sRGB gamut are drawn in the configured marker color.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlot(args[0])
		if err != nil {
			return err
		}
		t, _, err := loadTheme()
		if err != nil {
			return err
		}

		cfg := currentConfig()
		marker, err := cfg.Preview.MarkerColor()
		if err != nil {
			return err
		}
		columns, rows := cfg.Preview.Columns, cfg.Preview.Rows
		if previewColumns > 0 {
			columns = previewColumns
		}
		if previewRows > 0 {
			rows = previewRows
		}

		plane, err := preview.BuildPlane(t, slot, columns, rows, marker)
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			cells := make([]string, 0, len(plane.Cells))
			for _, c := range plane.Cells {
				cells = append(cells, strings.TrimPrefix(strings.ToUpper(c.Clamped().Hex()), "#"))
			}
			return WriteOutput(cmd.OutOrStdout(), map[string]any{
				"slot":       palette.SlotName(slot),
				"base":       plane.Base,
				"columns":    plane.Columns,
				"rows":       plane.Rows,
				"max_chroma": plane.MaxChroma,
				"clipped":    plane.Clipped,
				"cells":      cells,
			})
		}

		styles := previewStyles(cmd, palette.Compute(t), t.Accent)
		fmt.Fprintln(cmd.OutOrStdout(), preview.RenderPlane(styles, plane))
		return nil
	},
}
