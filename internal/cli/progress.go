package cli

import (
	"fmt"
	"io"
	"os"
	"time"
)

// exportStatus reports a single rendered export being written to disk.
// A nil status is valid and silent.
type exportStatus struct {
	out      io.Writer
	exporter string
	dest     string
	started  time.Time
}

func beginExport(out io.Writer, exporter, dest string) *exportStatus {
	if !statusEnabled() {
		return nil
	}
	fmt.Fprintf(out, "Exporting %s to %s... ", exporter, dest)
	return &exportStatus{
		out:      out,
		exporter: exporter,
		dest:     dest,
		started:  time.Now(),
	}
}

func (s *exportStatus) finish(size int) {
	if s == nil {
		return
	}
	fmt.Fprintf(s.out, "wrote %s in %s\n", formatSize(size), formatElapsed(time.Since(s.started)))
}

func (s *exportStatus) fail(err error) {
	if s == nil {
		return
	}
	if err == nil {
		fmt.Fprintln(s.out, "failed")
		return
	}
	fmt.Fprintf(s.out, "failed: %v\n", err)
}

// statusEnabled is false for JSON output, --no-progress, or when
// COLLURGY_NO_PROGRESS / NO_PROGRESS is set.
func statusEnabled() bool {
	if IsJSONOutput() || noProgress {
		return false
	}
	for _, key := range []string{"COLLURGY_NO_PROGRESS", "NO_PROGRESS"} {
		if _, ok := os.LookupEnv(key); ok {
			return false
		}
	}
	return true
}

func formatSize(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KiB", float64(n)/1024)
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(100 * time.Millisecond).String()
	}
}
