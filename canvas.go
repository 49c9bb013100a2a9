package ggchart

import (
	"image/color"

	"github.com/gogpu/ggchart/text"
)

// Stroke describes how rectangle outlines are drawn. Only solid strokes
// are supported.
type Stroke struct {
	Width float64
}

// SolidStroke is the one pixel solid stroke used for panel borders.
var SolidStroke = Stroke{Width: 1}

// Canvas is the 2D drawing surface annotations paint onto.
//
// Geometry passed to FillRect, StrokeRect and FillOutline is mapped through
// the current transform. Implementations are not required to be safe for
// concurrent use.
type Canvas interface {
	// SetColor sets the color for subsequent fill and stroke operations.
	SetColor(c color.Color)

	// SetStroke sets the stroke used by StrokeRect.
	SetStroke(s Stroke)

	// FillRect fills a rectangle.
	FillRect(r Rect) error

	// StrokeRect strokes the outline of a rectangle.
	StrokeRect(r Rect) error

	// FillOutline fills a glyph outline using the non-zero winding rule.
	FillOutline(o *text.Outline) error

	// Transform returns the current transform.
	Transform() Matrix

	// SetTransform replaces the current transform.
	SetTransform(m Matrix)

	// Translate post-multiplies the current transform by a translation.
	Translate(dx, dy float64)

	// Antialias reports the antialiasing rendering hint.
	Antialias() bool

	// SetAntialias sets the antialiasing rendering hint.
	SetAntialias(on bool)
}

// WithAntialias sets the antialiasing hint of c to on and returns a
// function that restores the previous value. Call it with defer:
//
//	defer ggchart.WithAntialias(c, true)()
func WithAntialias(c Canvas, on bool) (restore func()) {
	prev := c.Antialias()
	c.SetAntialias(on)
	return func() {
		c.SetAntialias(prev)
	}
}
