package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "collurgy"), Dir())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(nil, "")
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Theme, cfg.Theme)
	assert.Equal(t, def.LibraryPath, cfg.LibraryPath)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 48, cfg.Preview.Columns)

	marker, err := cfg.Preview.MarkerColor()
	require.NoError(t, err)
	assert.Equal(t, "#808080", marker.Hex())
}

func TestLoadFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COLLURGY_LOGGING_LEVEL", "debug")

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "theme: ~/themes/dark.toml\nexporter_dirs:\n  - ~/exporters\nlogging:\n  level: info\n  format: json\npreview:\n  marker: \"#ff00ff\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(nil, path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "themes", "dark.toml"), cfg.Theme)
	assert.Equal(t, []string{filepath.Join(home, "exporters")}, cfg.ExporterDirs)
	assert.Equal(t, "debug", cfg.Logging.Level, "environment overrides the file")
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 12, cfg.Preview.Rows)
}

func TestLoadReadsDefaultLocation(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "collurgy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "collurgy", "config.yaml"), []byte("library_path: /var/lib/themes.db\n"), 0o644))

	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/themes.db", cfg.LibraryPath)
}

func TestLoadExplicitOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	v := viper.New()
	v.Set("theme", "/etc/collurgy/theme.yaml")

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "/etc/collurgy/theme.yaml", cfg.Theme)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preview:\n  marker: nothex\n"), 0o644))
	_, err = Load(nil, path)
	assert.ErrorContains(t, err, "preview.marker")

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o644))
	_, err = Load(nil, path)
	assert.ErrorContains(t, err, "logging.format")
}
