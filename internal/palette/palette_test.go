package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pico.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultPalette(t *testing.T) {
	assert.Equal(t, 17, Default.Len())
	assert.Equal(t, "empty", Default.ColorName(Empty))
	assert.Equal(t, "red", Default.ColorName(4))
	assert.Len(t, Default.Labels(), 16)
	assert.Equal(t, Default.Colors[Empty], Default.Color(99), "unknown index draws empty")
}

func TestNameFallsBackToHex(t *testing.T) {
	p := &Palette{Colors: []tcell.Color{tcell.ColorBlack, tcell.NewHexColor(0x12ab34)}}
	assert.Equal(t, "#12ab34", p.ColorName(1))
	assert.Equal(t, "#5?", p.ColorName(5))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" #FF8000 ")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewHexColor(0xff8000), c)

	for _, bad := range []string{"ff8000", "#ff80", "#gg0000", "red"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `
name = "Pico"
empty = "#000000"
colors = ["#1d2b53", "#7e2553"]
names = ["navy", "plum"]
`)
	p, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Pico", p.Name)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, tcell.NewHexColor(0x000000), p.Colors[Empty])
	assert.Equal(t, "plum", p.ColorName(2))
}

func TestLoadFromFileDefaults(t *testing.T) {
	path := writeFile(t, `colors = ["#1d2b53"]`)
	p, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "pico", p.Name, "name from file name")
	assert.Equal(t, Default.Colors[Empty], p.Colors[Empty])
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(writeFile(t, `colors = ["#1d2b53", "blue"]`))
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = LoadFromFile(writeFile(t, `name = "none"`))
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	assert.Same(t, &Default, Load(""))
	assert.Same(t, &Default, Load("/nonexistent/palette.toml"))
}

func TestLoadFromFileLimitsColors(t *testing.T) {
	colors := func(n int) string {
		return "colors = [" + strings.TrimSuffix(strings.Repeat(`"#1d2b53", `, n), ", ") + "]"
	}

	p, err := LoadFromFile(writeFile(t, colors(MaxColors)))
	require.NoError(t, err)
	assert.Equal(t, MaxColors+1, p.Len())

	_, err = LoadFromFile(writeFile(t, colors(MaxColors+1)))
	assert.ErrorIs(t, err, ErrTooManyColors)
}

func TestBlendAndHue(t *testing.T) {
	black, white := tcell.NewHexColor(0x000000), tcell.NewHexColor(0xffffff)
	assert.Equal(t, black, Blend(black, white, 0))
	assert.Equal(t, white, Blend(black, white, 1))
	assert.Equal(t, tcell.ColorDefault, Blend(tcell.ColorDefault, white, 0.5))

	r, g, b := Hue(0).RGB()
	assert.Greater(t, r, g, "hue 0 leans red")
	assert.Equal(t, g, b)
}
