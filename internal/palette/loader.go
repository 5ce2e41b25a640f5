// internal/palette/loader.go
package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/daub/internal/logger"
)

// ErrInvalidColor is returned for colour strings that are not #rrggbb.
var ErrInvalidColor = errors.New("invalid color")

// ErrTooManyColors is returned for palette files with more than MaxColors colours.
var ErrTooManyColors = errors.New("too many colors")

// MaxColors is the largest number of paintable colours. Yanked layers store
// one base-36 digit per cell.
const MaxColors = 35

// tomlPalette is the structure of a palette file.
type tomlPalette struct {
	Name   string   `toml:"name"`
	Empty  *string  `toml:"empty"` // Defaults to the built-in empty colour
	Colors []string `toml:"colors"`
	Names  []string `toml:"names"`
}

// LoadFromFile parses a TOML palette file.
//
//	name   = "pico"
//	empty  = "#000000"
//	colors = ["#1d2b53", "#7e2553"]
//	names  = ["navy", "plum"]
func LoadFromFile(filePath string) (*Palette, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file '%s': %w", filePath, err)
	}

	var tp tomlPalette
	metadata, err := toml.Decode(string(data), &tp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML palette file '%s': %w", filePath, err)
	}

	// Check for undecoded keys (potential typos in palette file)
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Palette '%s': Unrecognized keys in file '%s': %v", tp.Name, filePath, metadata.Undecoded())
	}

	if tp.Name == "" {
		tp.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		logger.Debugf("Palette file '%s' missing 'name', using filename '%s'", filePath, tp.Name)
	}
	if len(tp.Colors) == 0 {
		return nil, fmt.Errorf("palette '%s' has no colors", tp.Name)
	}
	if len(tp.Colors) > MaxColors {
		return nil, fmt.Errorf("palette '%s' has %d colors, at most %d: %w", tp.Name, len(tp.Colors), MaxColors, ErrTooManyColors)
	}

	p := &Palette{Name: tp.Name, Colors: make([]tcell.Color, 0, len(tp.Colors)+1)}

	empty := Default.Colors[Empty]
	if tp.Empty != nil {
		if empty, err = ParseColor(*tp.Empty); err != nil {
			return nil, fmt.Errorf("palette '%s' empty color: %w", tp.Name, err)
		}
	}
	p.Colors = append(p.Colors, empty)

	for i, s := range tp.Colors {
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("palette '%s' color %d: %w", tp.Name, i+1, err)
		}
		p.Colors = append(p.Colors, c)
	}

	if len(tp.Names) > 0 {
		p.Names = append([]string{"empty"}, tp.Names...)
		if len(tp.Names) != len(tp.Colors) {
			logger.Warnf("Palette '%s': %d names for %d colors", tp.Name, len(tp.Names), len(tp.Colors))
		}
	}

	logger.Debugf("Successfully loaded palette '%s' (%d colors) from '%s'", p.Name, len(tp.Colors), filePath)
	return p, nil
}

// ParseColor converts a #rrggbb string to a tcell colour.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return tcell.ColorDefault, fmt.Errorf("%w '%s', must be #rrggbb", ErrInvalidColor, s)
	}
	val, err := strconv.ParseInt(s[1:], 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("%w '%s': %v", ErrInvalidColor, s, err)
	}
	return tcell.NewHexColor(int32(val)), nil
}

// Load returns the palette at filePath, or the default palette when
// filePath is empty or cannot be loaded.
func Load(filePath string) *Palette {
	if filePath == "" {
		return &Default
	}
	p, err := LoadFromFile(filePath)
	if err != nil {
		logger.Warnf("Palette: %v. Using default palette.", err)
		return &Default
	}
	return p
}
