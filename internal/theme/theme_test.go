package theme

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/collurgy/collurgy/internal/colorspace"
	"github.com/stretchr/testify/require"
)

func randomTheme(r *rand.Rand) *Theme {
	models := colorspace.Models()
	color := func() colorspace.Perceptual {
		return colorspace.Perceptual{r.Float64() * 100, r.Float64() * 100, r.Float64() * 360}
	}

	t := Default()
	t.Model = models[r.IntN(len(models))]
	t.High2023 = r.Float64()*3 - 1
	t.Foreground = color()
	t.Background = color()
	t.Spectrum = color()
	t.SpectrumBright = color()
	t.Accent = r.IntN(Slots)
	exporters := r.IntN(3)
	for i := 0; i < exporters; i++ {
		exporter := fmt.Sprintf("exporter%d", i)
		t.SetExtra(exporter, "cursor", r.IntN(Slots))
		t.SetExtra(exporter, "selection", r.IntN(Slots))
	}
	return t
}

func requireThemesEqual(t *testing.T, want, got *Theme) {
	t.Helper()
	require.Equal(t, want.Model, got.Model)
	require.InDelta(t, want.High2023, got.High2023, 1e-9)
	pairs := [][2]colorspace.Perceptual{
		{want.Foreground, got.Foreground},
		{want.Background, got.Background},
		{want.Spectrum, got.Spectrum},
		{want.SpectrumBright, got.SpectrumBright},
	}
	for _, p := range pairs {
		for i := range p[0] {
			require.InDelta(t, p[0][i], p[1][i], 1e-9)
		}
	}
	require.Equal(t, want.Accent, got.Accent)
	require.Equal(t, want.Extras, got.Extras)
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			for i := 0; i < 50; i++ {
				original := randomTheme(r)
				data, err := Marshal(original, format)
				require.NoError(t, err)

				decoded, err := Unmarshal(data, format)
				require.NoError(t, err, string(data))
				requireThemesEqual(t, original, decoded)
			}
		})
	}
}

func TestMarshalWritesModelTag(t *testing.T) {
	th := Default()
	th.Model = colorspace.OKLCH
	for _, format := range Formats() {
		data, err := Marshal(th, format)
		require.NoError(t, err)
		require.Contains(t, string(data), "OKLCH", format)
		require.NotContains(t, string(data), "SRGB", format)
	}
}

func TestUnmarshalLegacyDocument(t *testing.T) {
	doc := `
foreground = [90.0, 5.0, 40.0]
background = [10.0, 5.0, 220.0]
spectrum = [40.0, 40.0, 10.0]
spectrum_bright = [70.0, 60.0, 10.0]
accent = 4
`
	th, err := Unmarshal([]byte(doc), FormatTOML)
	require.NoError(t, err)
	require.Equal(t, colorspace.CIELCH, th.Model)
	require.Zero(t, th.High2023)
	require.Equal(t, colorspace.Perceptual{90, 5, 40}, th.Foreground)
	require.Equal(t, 4, th.Accent)
	require.NotNil(t, th.Extras)
}

func TestUnmarshalRejectsMalformed(t *testing.T) {
	cases := map[string]struct {
		format Format
		doc    string
	}{
		"syntax":        {FormatTOML, "model = "},
		"unknown model": {FormatJSON, `{"model": "SRGB"}`},
		"accent range":  {FormatYAML, "accent: 16\n"},
		"negative":      {FormatJSON, `{"accent": -1}`},
		"bad triple":    {FormatJSON, `{"foreground": "white"}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tc.doc), tc.format)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidTheme)
		})
	}
}

func TestUnmarshalKeepsOutOfRangeExtras(t *testing.T) {
	th, err := Unmarshal([]byte(`{"extras": {"kitty": {"cursor": 42, "url": 4}}}`), FormatJSON)
	require.NoError(t, err)
	require.Equal(t, 42, th.Extras["kitty"]["cursor"])
	require.Equal(t, []string{"kitty.cursor"}, th.InvalidExtras())
}

func TestValidate(t *testing.T) {
	th := Default()
	require.NoError(t, th.Validate())

	th.Spectrum[1] = math.NaN()
	var verr *ValidationError
	require.ErrorAs(t, th.Validate(), &verr)
	require.Equal(t, "spectrum", verr.Field)

	th = Default()
	th.Model = colorspace.Model(9)
	require.ErrorIs(t, th.Validate(), ErrInvalidTheme)
}

func TestClone(t *testing.T) {
	th := Default()
	th.SetExtra("kitty", "cursor", 5)

	clone := th.Clone()
	clone.SetExtra("kitty", "cursor", 9)
	clone.Foreground[0] = 50

	require.Equal(t, 5, th.Extras["kitty"]["cursor"])
	require.Equal(t, 100.0, th.Foreground[0])
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	th := Default()
	th.Model = colorspace.JZCZHZ
	th.High2023 = 0.5
	th.SetExtra("foot", "cursor", 3)

	for _, name := range []string{"theme.toml", "theme.json", "theme.yml", "nested/theme.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, th))

		loaded, err := Load(path)
		require.NoError(t, err)
		requireThemesEqual(t, th, loaded)
	}

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)

	require.Error(t, Save(filepath.Join(dir, "theme.ini"), th))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrInvalidTheme)
	require.True(t, strings.Contains(err.Error(), bad))
}
