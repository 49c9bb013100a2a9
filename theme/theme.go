// Package theme loads annotation panel styles from YAML files.
//
// A theme file looks like:
//
//	background: "#ffffffcc"
//	border: "#404040"
//	font_color: "#000000"
//	padding: 8
//	font_size: 13
//	font_file: fonts/Inter-Regular.ttf   # optional, Go Regular otherwise
//
// Missing keys keep the values of ggchart.DefaultPanelStyle.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/text"
)

// DefaultFontSize is the font size used when a theme does not set one.
const DefaultFontSize = 12

// Theme is the YAML representation of a panel style.
type Theme struct {
	Background string   `yaml:"background"`
	Border     string   `yaml:"border"`
	FontColor  string   `yaml:"font_color"`
	Padding    *float64 `yaml:"padding"`
	FontSize   float64  `yaml:"font_size"`
	FontFile   string   `yaml:"font_file"`

	// dir resolves a relative FontFile; set by LoadFile.
	dir string
}

// ColorError reports a color value that is not #rgb, #rrggbb or #rrggbbaa.
type ColorError struct {
	Field string
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("theme: invalid %s color %q", e.Field, e.Value)
}

// Load decodes a theme from r. Unknown keys are rejected.
func Load(r io.Reader) (*Theme, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Theme
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return &t, nil
		}
		return nil, fmt.Errorf("theme: decode: %w", err)
	}
	if t.FontSize < 0 {
		return nil, fmt.Errorf("theme: font_size must not be negative, got %g", t.FontSize)
	}
	if t.Padding != nil && *t.Padding < 0 {
		return nil, fmt.Errorf("theme: padding must not be negative, got %g", *t.Padding)
	}
	return &t, nil
}

// LoadFile reads a theme from path. A relative font_file is resolved
// against the directory of path.
func LoadFile(path string) (*Theme, error) {
	// #nosec G304 -- theme path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	t, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w (in %s)", err, path)
	}
	t.dir = filepath.Dir(path)
	return t, nil
}

// PanelStyle builds the panel style described by the theme.
func (t *Theme) PanelStyle() (ggchart.PanelStyle, error) {
	size := t.FontSize
	if size == 0 {
		size = DefaultFontSize
	}

	source := text.DefaultSource()
	if t.FontFile != "" {
		path := t.FontFile
		if !filepath.IsAbs(path) && t.dir != "" {
			path = filepath.Join(t.dir, path)
		}
		var err error
		source, err = text.NewFontSourceFromFile(path)
		if err != nil {
			return ggchart.PanelStyle{}, fmt.Errorf("theme: font_file: %w", err)
		}
	}

	style := ggchart.DefaultPanelStyle(source.Face(size))
	if t.Padding != nil {
		style.Padding = *t.Padding
	}

	for _, f := range []struct {
		name  string
		value string
		dst   *color.Color
	}{
		{"background", t.Background, &style.Background},
		{"border", t.Border, &style.Border},
		{"font", t.FontColor, &style.FontColor},
	} {
		if f.value == "" {
			continue
		}
		c, err := ParseHexColor(f.value)
		if err != nil {
			return ggchart.PanelStyle{}, &ColorError{Field: f.name, Value: f.value}
		}
		*f.dst = c
	}

	return style, nil
}

// ParseHexColor parses #rgb, #rrggbb or #rrggbbaa. The leading # is optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, &ColorError{Value: s}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, &ColorError{Value: s}
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
