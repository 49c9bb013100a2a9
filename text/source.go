package text

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use: every lookup uses its own
// sfnt.Buffer.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data []byte
	font *sfnt.Font
	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &FontError{Reason: "failed to parse font", Err: err}
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data: dataCopy,
		font: f,
	}
	s.addr = s

	s.name = config.name
	if s.name == "" {
		s.name = extractFontName(f)
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

var (
	defaultOnce   sync.Once
	defaultSource *FontSource
)

// DefaultSource returns the Go Regular font bundled with golang.org/x/image.
// The source is parsed once and shared.
func DefaultSource() *FontSource {
	defaultOnce.Do(func() {
		s, err := NewFontSource(goregular.TTF)
		if err != nil {
			panic("text: bundled Go Regular font failed to parse: " + err.Error())
		}
		defaultSource = s
	})
	return defaultSource
}

// Face creates a Face at the specified size (in points at 72 DPI, so one
// point is one pixel).
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) *Face {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Face{
		source:    s,
		size:      size,
		direction: config.direction,
		shaper:    config.shaper,
	}
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// NumGlyphs returns the number of glyphs in the font.
func (s *FontSource) NumGlyphs() int {
	s.copyCheck()
	return s.font.NumGlyphs()
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// glyphIndex maps a rune to a glyph. Missing runes map to glyph 0 (.notdef).
func (s *FontSource) glyphIndex(r rune) GlyphID {
	var buf sfnt.Buffer
	idx, err := s.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// glyphAdvance returns the unhinted advance width of a glyph in pixels.
func (s *FontSource) glyphAdvance(gid GlyphID, size float64) float64 {
	var buf sfnt.Buffer
	adv, err := s.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), floatToFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// kern returns the kerning adjustment between two glyphs in pixels.
// Fonts without a kern table report zero.
func (s *FontSource) kern(left, right GlyphID, size float64) float64 {
	var buf sfnt.Buffer
	k, err := s.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), floatToFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// glyphSegments loads the outline of a glyph scaled to size, with the
// glyph origin at (0, 0) and y pointing down.
// Glyphs without an outline (space) or without vector data return nil.
func (s *FontSource) glyphSegments(gid GlyphID, size float64) []Segment {
	var buf sfnt.Buffer
	segs, err := s.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), floatToFixed(size), nil)
	if err != nil || len(segs) == 0 {
		return nil
	}

	out := make([]Segment, 0, len(segs))
	for _, seg := range segs {
		var o Segment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			o.Op = OpMoveTo
			o.Points[0] = fixedPointToPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			o.Op = OpLineTo
			o.Points[0] = fixedPointToPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			o.Op = OpQuadTo
			o.Points[0] = fixedPointToPoint(seg.Args[0])
			o.Points[1] = fixedPointToPoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			o.Op = OpCubicTo
			o.Points[0] = fixedPointToPoint(seg.Args[0])
			o.Points[1] = fixedPointToPoint(seg.Args[1])
			o.Points[2] = fixedPointToPoint(seg.Args[2])
		default:
			continue
		}
		out = append(out, o)
	}
	return out
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(f *sfnt.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func fixedPointToPoint(p fixed.Point26_6) Point {
	return Point{X: fixedToFloat(p.X), Y: fixedToFloat(p.Y)}
}
