// internal/palette/palette.go
package palette

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// Empty is the palette index of an unpainted cell.
const Empty = 0

// Palette maps cell values to colours. Index 0 is the empty cell and is
// drawn with the canvas background.
type Palette struct {
	Name   string
	Colors []tcell.Color // Colors[0] is the empty colour
	Names  []string      // Optional display names, parallel to Colors
}

// Len is the number of indices, including the empty one.
func (p *Palette) Len() int { return len(p.Colors) }

// Valid reports whether i is a palette index.
func (p *Palette) Valid(i int) bool { return i >= 0 && i < len(p.Colors) }

// Color returns the colour for index i. Unknown indices are drawn empty.
func (p *Palette) Color(i int) tcell.Color {
	if !p.Valid(i) {
		return p.Colors[Empty]
	}
	return p.Colors[i]
}

// Style returns a style painting the cell background with index i.
func (p *Palette) Style(i int) tcell.Style {
	return tcell.StyleDefault.Background(p.Color(i))
}

// DimStyle is Style blended toward the empty colour, used for inactive layers.
func (p *Palette) DimStyle(i int) tcell.Style {
	return tcell.StyleDefault.Background(Blend(p.Color(i), p.Colors[Empty], 0.6))
}

// ColorName returns a display name for index i.
func (p *Palette) ColorName(i int) string {
	if i == Empty {
		return "empty"
	}
	if i >= 0 && i < len(p.Names) && p.Names[i] != "" {
		return p.Names[i]
	}
	if !p.Valid(i) {
		return fmt.Sprintf("#%d?", i)
	}
	r, g, b := p.Colors[i].RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Labels lists the names of the paintable indices (1..Len-1).
func (p *Palette) Labels() []string {
	return lo.Map(lo.Range(p.Len()-1), func(i int, _ int) string { return p.ColorName(i + 1) })
}

// Blend mixes a toward b by t in [0,1]. Colours without an RGB value are
// returned unchanged.
func Blend(a, b tcell.Color, t float64) tcell.Color {
	ca, okA := toColorful(a)
	cb, okB := toColorful(b)
	if !okA || !okB {
		return a
	}
	return fromColorful(ca.BlendRgb(cb, t))
}

// Hue returns the muted grid colour for a hue in degrees.
func Hue(degrees float64) tcell.Color {
	return fromColorful(colorful.Hsv(degrees, 0.25, 0.56))
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Default is the built-in 16-colour palette.
var Default = Palette{
	Name: "Default",
	Colors: []tcell.Color{
		tcell.NewHexColor(0x1e2127), // empty
		tcell.NewHexColor(0x000000),
		tcell.NewHexColor(0xffffff),
		tcell.NewHexColor(0x9d9d9d),
		tcell.NewHexColor(0xbe2633),
		tcell.NewHexColor(0xe06f8b),
		tcell.NewHexColor(0x493c2b),
		tcell.NewHexColor(0xa46422),
		tcell.NewHexColor(0xeb8931),
		tcell.NewHexColor(0xf7e26b),
		tcell.NewHexColor(0x2f484e),
		tcell.NewHexColor(0x44891a),
		tcell.NewHexColor(0xa3ce27),
		tcell.NewHexColor(0x1b2632),
		tcell.NewHexColor(0x005784),
		tcell.NewHexColor(0x31a2f2),
		tcell.NewHexColor(0xb2dcef),
	},
	Names: []string{
		"empty", "black", "white", "grey", "red", "pink", "dark brown", "brown",
		"orange", "yellow", "dark teal", "green", "lime", "night", "sea", "sky", "cloud",
	},
}
