package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/collurgy/collurgy/internal/exporters"
	"github.com/collurgy/collurgy/internal/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCLI isolates config, library and exporter lookups in temp dirs and
// returns the collurgy config directory.
func setupCLI(t *testing.T) string {
	t.Helper()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("COLLURGY_NON_INTERACTIVE", "1")
	t.Setenv("NO_COLOR", "1")
	return filepath.Join(xdg, "collurgy")
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(""))

	err := rootCmd.Execute()
	return stdout.String(), err
}

func writeTheme(t *testing.T, dir string, mutate func(*theme.Theme)) string {
	t.Helper()
	th := theme.Default()
	if mutate != nil {
		mutate(th)
	}
	path := filepath.Join(dir, "theme.toml")
	require.NoError(t, theme.Save(path, th))
	return path
}

func TestPaletteJSON(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "palette", "--json")
	require.NoError(t, err)

	var entries []PaletteEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 16)
	assert.Equal(t, "000000", entries[0].Hex)
	assert.Equal(t, "FFFFFF", entries[15].Hex)
	assert.Equal(t, "red", entries[1].Name)
	assert.Equal(t, [3]uint8{255, 255, 255}, entries[15].RGB)
}

func TestPaletteTable(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "palette")
	require.NoError(t, err)
	assert.Contains(t, out, "SLOT")
	assert.Contains(t, out, "bright-white")
	assert.Contains(t, out, "accent")
}

func TestExportToStdout(t *testing.T) {
	setupCLI(t)
	path := writeTheme(t, t.TempDir(), nil)

	out, err := runCLI(t, "export", "css", "--theme", path)
	require.NoError(t, err)
	assert.Contains(t, out, "--color0: #000000;")
	assert.Contains(t, out, "--color15: #FFFFFF;")
}

func TestExportToFile(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()
	path := writeTheme(t, dir, func(th *theme.Theme) { th.Accent = 4 })
	dest := filepath.Join(dir, "out", "kitty.conf")

	_, err := runCLI(t, "export", "kitty", "--theme", path, "-o", dest, "--no-progress")
	require.NoError(t, err)

	catalog, err := loadCatalog()
	require.NoError(t, err)
	exp, err := catalog.Get("kitty")
	require.NoError(t, err)
	th, err := theme.Load(path)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, exporters.Export(th, exp), string(data))
}

func TestExportReportsWrite(t *testing.T) {
	setupCLI(t)
	dest := filepath.Join(t.TempDir(), "theme.css")

	var stderr bytes.Buffer
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"export", "css", "-o", dest})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&stderr)
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, stderr.String(), "Exporting css to "+dest+"... wrote ")

	t.Setenv("COLLURGY_NO_PROGRESS", "1")
	stderr.Reset()
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"export", "css", "-o", dest})
	require.NoError(t, rootCmd.Execute())
	assert.NotContains(t, stderr.String(), "Exporting")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KiB", formatSize(1536))
}

func TestExportStatusNilIsSilent(t *testing.T) {
	var status *exportStatus
	status.finish(10)
	status.fail(errors.New("boom"))
}

func TestExportUserExporterAndWrite(t *testing.T) {
	configDir := setupCLI(t)
	target := filepath.Join(t.TempDir(), "mine.txt")

	exporterDir := filepath.Join(configDir, "exporters")
	require.NoError(t, os.MkdirAll(exporterDir, 0o755))
	doc := "name = \"mine\"\npath = \"" + target + "\"\nformatter = \"{HEX0}-{HEX15}\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(exporterDir, "mine.toml"), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(exporterDir, "nopath.toml"), []byte("name = \"nopath\"\nformatter = \"x\"\n"), 0o644))

	_, err := runCLI(t, "export", "mine", "--write")
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "000000-FFFFFF", string(data))

	_, err = runCLI(t, "export", "nopath", "--write")
	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight), "got %v", err)
}

func TestExportUnknownExporter(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "export", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collurgy exporters list")
}

func TestExportersListAndShow(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "exporters", "list", "--json")
	require.NoError(t, err)
	var views []ExporterView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.NotEmpty(t, views)
	assert.Equal(t, "alacritty", views[0].Name)
	assert.Equal(t, "builtin", views[0].Source)
	assert.Empty(t, views[0].Formatter)

	out, err = runCLI(t, "exporters", "show", "kitty")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:        kitty")
	assert.Contains(t, out, "color15 #{HEX15}")
	assert.Contains(t, out, "cursor=15")
}

func TestThemeMissingExplicitFile(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "palette", "--theme", filepath.Join(t.TempDir(), "nope.toml"))
	var preflight *PreflightError
	require.True(t, errors.As(err, &preflight), "got %v", err)
	assert.Contains(t, preflight.NextStep, "theme init")
}

func TestThemeInitShowConvertValidate(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "dark.toml")
	yamlPath := filepath.Join(dir, "dark.yaml")

	_, err := runCLI(t, "theme", "init", tomlPath, "--model", "oklch")
	require.NoError(t, err)

	_, err = runCLI(t, "theme", "init", tomlPath)
	require.Error(t, err, "existing file needs --force")

	out, err := runCLI(t, "theme", "show", "--theme", tomlPath, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "model: OKLCH")

	_, err = runCLI(t, "theme", "convert", tomlPath, yamlPath)
	require.NoError(t, err)
	converted, err := theme.Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "OKLCH", converted.Model.String())

	out, err = runCLI(t, "theme", "validate", tomlPath, yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "OK "))
}

func TestThemeValidateReportsProblems(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("accent = 99\n"), 0o644))

	warn := writeTheme(t, dir, func(th *theme.Theme) { th.SetExtra("kitty", "cursor", 40) })

	out, err := runCLI(t, "theme", "validate", "--json", bad, warn)
	require.Error(t, err)

	var results []ValidationResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, validationFailed, results[0].Status)
	assert.Equal(t, validationWarning, results[1].Status)
	assert.Contains(t, results[1].Warnings[0], "kitty.cursor")
}

func TestLibraryRoundTrip(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()
	path := writeTheme(t, dir, func(th *theme.Theme) { th.Accent = 3 })

	_, err := runCLI(t, "library", "save", "dusk", "--from", path)
	require.NoError(t, err)

	out, err := runCLI(t, "library", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "dusk")
	assert.Contains(t, out, "CIELCH")

	dest := filepath.Join(dir, "restored.json")
	_, err = runCLI(t, "library", "load", "dusk", "-o", dest)
	require.NoError(t, err)
	restored, err := theme.Load(dest)
	require.NoError(t, err)
	assert.Equal(t, 3, restored.Accent)

	_, err = runCLI(t, "library", "delete", "dusk", "--yes")
	require.NoError(t, err)

	_, err = runCLI(t, "library", "load", "dusk")
	require.Error(t, err)
}

func TestPreview(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "preview")
	require.NoError(t, err)
	assert.Contains(t, out, "FFFFFF")
	assert.Contains(t, out, "make test")

	out, err = runCLI(t, "preview", "plane", "bright-red", "--columns", "12", "--rows", "4", "--json")
	require.NoError(t, err)
	var plane struct {
		Slot  string   `json:"slot"`
		Cells []string `json:"cells"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &plane))
	assert.Equal(t, "bright-red", plane.Slot)
	assert.Len(t, plane.Cells, 48)

	_, err = runCLI(t, "preview", "plane", "octarine")
	assert.Error(t, err)
}

func TestParseSlot(t *testing.T) {
	slot, err := parseSlot("Bright-Blue")
	require.NoError(t, err)
	assert.Equal(t, 12, slot)

	slot, err = parseSlot("7")
	require.NoError(t, err)
	assert.Equal(t, 7, slot)

	_, err = parseSlot("16")
	assert.Error(t, err)
}

func TestInitCreatesFiles(t *testing.T) {
	configDir := setupCLI(t)

	out, err := runCLI(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "done")

	content, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Collurgy Configuration File")
	_, err = theme.Load(filepath.Join(configDir, "theme.toml"))
	require.NoError(t, err)

	out, err = runCLI(t, "init")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "skipped"))
}

func TestCreateConfigFileExistingNoForce(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("existing"), 0o644))

	original := configDirFunc
	configDirFunc = func() string { return tempDir }
	defer func() { configDirFunc = original }()

	originalForce := initForce
	initForce = false
	defer func() { initForce = originalForce }()

	result := createConfigFile()
	assert.Equal(t, "skipped", result.Status)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content))
}

func TestPreflightErrorFormat(t *testing.T) {
	err := &PreflightError{Message: "boom", Hint: "fix it", NextStep: "collurgy init"}
	assert.Equal(t, "boom\n  hint: fix it\n  try:  collurgy init", err.Error())
}
