package cli

import (
	"strconv"

	"github.com/collurgy/collurgy/internal/colorspace"
	"github.com/collurgy/collurgy/internal/palette"
	"github.com/spf13/cobra"
)

var paletteLinear bool

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.Flags().BoolVar(&paletteLinear, "linear", false, "report linear-light RGB instead of gamma-encoded sRGB")
}

// PaletteEntry is one slot of `collurgy palette --json`.
type PaletteEntry struct {
	Slot       int                   `json:"slot"`
	Name       string                `json:"name"`
	Perceptual colorspace.Perceptual `json:"perceptual"`
	Hex        string                `json:"hex"`
	RGB        [3]uint8              `json:"rgb"`
	Float      [3]float64            `json:"float"`
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the computed palette",
	Long:  "Compute the 16-slot palette of the current theme and print it as a table or JSON.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := loadTheme()
		if err != nil {
			return err
		}

		target := colorspace.SRGB
		if paletteLinear {
			target = colorspace.LRGB
		}
		perceptual := palette.Perceptual(t)
		computed := palette.ComputeTarget(t, target)

		entries := make([]PaletteEntry, 0, palette.Size)
		for slot, c := range computed {
			r, g, b := colorspace.RGB255(c)
			entries = append(entries, PaletteEntry{
				Slot:       slot,
				Name:       palette.SlotName(slot),
				Perceptual: perceptual[slot],
				Hex:        colorspace.Hex(c),
				RGB:        [3]uint8{r, g, b},
				Float:      [3]float64{c.R, c.G, c.B},
			})
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), entries)
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			row := []string{strconv.Itoa(e.Slot), e.Name}
			row = append(row, formatTriple(e.Perceptual)...)
			row = append(row, e.Hex)
			if e.Slot == t.Accent {
				row = append(row, "accent")
			}
			rows = append(rows, row)
		}
		return writeTable(cmd.OutOrStdout(), []string{"SLOT", "NAME", "L", "C", "H", "HEX"}, rows)
	},
}
