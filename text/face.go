package text

// Face is a font at a specific size.
// This is a lightweight object that can be created from a FontSource.
// Face is safe for concurrent use when its Shaper is.
type Face struct {
	source    *FontSource
	size      float64
	direction Direction
	shaper    Shaper
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the size of this face in points.
func (f *Face) Size() float64 {
	return f.size
}

// Direction returns the configured text direction.
func (f *Face) Direction() Direction {
	return f.direction
}

// Shaper returns the shaper used to lay out text with this face.
func (f *Face) Shaper() Shaper {
	if f.shaper == nil {
		return builtin
	}
	return f.shaper
}

// Advance returns the total advance width of s under rc.
func (f *Face) Advance(s string, rc RenderContext) float64 {
	var w float64
	for _, g := range f.Shaper().Shape(s, f, rc) {
		if end := g.X + g.XAdvance; end > w {
			w = end
		}
	}
	return w
}

// Outline lays out s on a single line and returns the combined glyph
// outline. The pen starts at (0, 0) on the baseline.
//
// A nil face or an empty string yields an empty outline.
func (f *Face) Outline(s string, rc RenderContext) *Outline {
	o := &Outline{}
	if f == nil || f.source == nil || s == "" {
		return o
	}

	for _, g := range f.Shaper().Shape(s, f, rc) {
		o.appendGlyph(f.source.glyphSegments(g.GID, f.size), g.X, g.Y)
		if end := g.X + g.XAdvance; end > o.Advance {
			o.Advance = end
		}
	}
	return o
}
