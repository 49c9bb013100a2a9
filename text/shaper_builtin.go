package text

import "unicode/utf8"

// BuiltinShaper provides text shaping using golang.org/x/image/font/sfnt.
// It supports Latin, Cyrillic, Greek, CJK, and other scripts that don't
// require contextual forms or reordering.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
// Glyphs are placed left to right; kern table pairs are applied between
// consecutive glyphs.
func (s *BuiltinShaper) Shape(text string, face *Face, rc RenderContext) []ShapedGlyph {
	if text == "" || face == nil || face.source == nil {
		return nil
	}

	source := face.source
	size := face.size
	result := make([]ShapedGlyph, 0, utf8.RuneCountInString(text))

	var (
		x    float64
		prev GlyphID
	)
	for i, r := range text {
		gid := source.glyphIndex(r)
		if len(result) > 0 {
			x += rc.quantize(source.kern(prev, gid, size))
		}

		advance := rc.quantize(source.glyphAdvance(gid, size))
		result = append(result, ShapedGlyph{
			GID:      gid,
			Cluster:  i,
			X:        x,
			XAdvance: advance,
		})

		x += advance
		prev = gid
	}

	return result
}
