package ggchart

import (
	"fmt"
	"image/color"

	"github.com/gogpu/ggchart/text"
)

// PanelStyle holds the styling of an annotation text panel. It is passed
// explicitly to every panel operation.
type PanelStyle struct {
	// Background fills the panel box.
	Background color.Color

	// Border strokes the panel box outline.
	Border color.Color

	// FontColor fills the glyph outlines.
	FontColor color.Color

	// Face is the font used to measure and draw lines.
	Face *text.Face

	// Padding is the space between the box edge and the text, in pixels.
	Padding float64
}

// DefaultPanelStyle returns the default annotation panel style with the
// given face. A nil face selects Go Regular at 12 points.
func DefaultPanelStyle(face *text.Face) PanelStyle {
	if face == nil {
		face = text.DefaultSource().Face(12)
	}
	return PanelStyle{
		Background: color.RGBA{255, 255, 255, 255},
		Border:     color.RGBA{64, 64, 64, 255},
		FontColor:  color.RGBA{0, 0, 0, 255},
		Face:       face,
		Padding:    10,
	}
}

// Validate reports whether the style can be painted.
func (s PanelStyle) Validate() error {
	if s.Face == nil {
		return ErrNoFace
	}
	switch {
	case s.Background == nil:
		return fmt.Errorf("%w: background", ErrNoColor)
	case s.Border == nil:
		return fmt.Errorf("%w: border", ErrNoColor)
	case s.FontColor == nil:
		return fmt.Errorf("%w: font", ErrNoColor)
	}
	return nil
}
