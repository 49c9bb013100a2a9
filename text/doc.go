// Package text lays out single lines of text as filled glyph outlines.
//
// The pipeline mirrors the split used across gogpu:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific size
//   - Shaper: converts a string into positioned glyphs
//   - Outline: the vector shape of a laid-out line, in pixels
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	face := source.Face(14)
//	outline := face.Outline("Peak: 42.0", text.DefaultRenderContext())
//	bounds := outline.Bounds()
//
// Outlines use image coordinates: the baseline sits at y=0 and y grows
// downward, so glyph ascenders have negative y values.
//
// # Render context
//
// A RenderContext selects how glyph metrics are quantized. With
// FractionalMetrics disabled, advances and kerning are rounded to whole
// pixels before glyphs are placed, which is what the chart annotations use
// so that measuring and painting always agree.
//
// # Shaping
//
// BuiltinShaper handles scripts without contextual forms and applies kern
// table adjustments. GoTextShaper runs HarfBuzz shaping through
// github.com/go-text/typesetting for ligatures and right-to-left text.
package text
