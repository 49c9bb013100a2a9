package text

// ShapedGlyph is a glyph positioned on a line.
type ShapedGlyph struct {
	// GID is the glyph index in the face's font.
	GID GlyphID

	// Cluster is the byte offset of the source text this glyph maps to.
	Cluster int

	// X, Y is the glyph origin relative to the start of the line.
	X, Y float64

	// XAdvance is the horizontal pen advance after this glyph.
	XAdvance float64
}

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: sfnt cmap lookup, advances and kern table
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// Advances and offsets are quantized according to rc.
	Shape(text string, face *Face, rc RenderContext) []ShapedGlyph
}

var builtin Shaper = &BuiltinShaper{}
