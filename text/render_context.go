package text

import "math"

// RenderContext describes how glyph metrics are quantized during layout.
// It plays the role of a font render context: two layouts of the same
// string with the same Face and RenderContext produce identical outlines.
type RenderContext struct {
	// Antialias records whether the outline is meant for antialiased
	// rendering. Layout geometry does not depend on it.
	Antialias bool

	// FractionalMetrics keeps sub-pixel advances and kerning. When false,
	// both are rounded to whole pixels.
	FractionalMetrics bool
}

// DefaultRenderContext returns antialiasing on and fractional metrics off.
func DefaultRenderContext() RenderContext {
	return RenderContext{
		Antialias:         true,
		FractionalMetrics: false,
	}
}

// quantize applies the fractional metrics setting to an advance or kern value.
func (rc RenderContext) quantize(v float64) float64 {
	if rc.FractionalMetrics {
		return v
	}
	return math.Round(v)
}
