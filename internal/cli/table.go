package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/collurgy/collurgy/internal/colorspace"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// formatComponent prints a perceptual component with at most two decimals.
func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatTriple(p colorspace.Perceptual) []string {
	return []string{formatComponent(p.L()), formatComponent(p.C()), formatComponent(p.H())}
}
