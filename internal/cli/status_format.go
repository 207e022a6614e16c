package cli

import (
	"fmt"
	"os"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

func colorEnabled() bool {
	if noColor || IsJSONOutput() {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return stdoutIsTerminal()
}

func colorize(text, color string) string {
	if !colorEnabled() || color == "" {
		return text
	}
	return color + text + colorReset
}

// validationStatus is the outcome of checking one theme document.
type validationStatus string

const (
	validationOK      validationStatus = "ok"
	validationWarning validationStatus = "warning"
	validationFailed  validationStatus = "failed"
)

func statusLabel(status validationStatus) (string, string) {
	switch status {
	case validationOK:
		return "OK", colorGreen
	case validationFailed:
		return "ERR", colorRed
	default:
		return "WARN", colorYellow
	}
}

func formatValidationStatus(status validationStatus, detail string) string {
	label, color := statusLabel(status)
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return colorize(label, color)
	}
	return fmt.Sprintf("%s %s", colorize(label, color), detail)
}
