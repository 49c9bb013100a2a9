package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It supports ligatures, GPOS kerning, and right-to-left text.
//
//	shaper := text.NewGoTextShaper()
//	face := source.Face(14, text.WithShaper(shaper))
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// Shape() call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects the font cache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements the Shaper interface.
// A face with DirectionAuto gets the base direction of the text's first
// bidi run.
func (s *GoTextShaper) Shape(text string, face *Face, rc RenderContext) []ShapedGlyph {
	if text == "" || face == nil || face.source == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(face.source)
	if err != nil {
		// Fall back to the builtin shaper; the sfnt parser already accepted the font.
		return builtin.Shape(text, face, rc)
	}

	// font.Face is NOT safe for concurrent use, so each Shape() call
	// gets its own instance.
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(text)
	dir := face.direction
	if dir == DirectionAuto {
		dir = resolveDirection(text)
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      goTextFace,
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return convertGlyphs(output.Glyphs, runes, rc)
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, &FontError{Reason: "go-text failed to parse font", Err: err}
	}

	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// resolveDirection returns the direction of the first bidi run of text.
func resolveDirection(text string) Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return DirectionLTR
	}

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}

	if run := ordering.Run(0); run.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// mapDirection converts our text.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text/typesetting output glyphs to ShapedGlyphs.
// Output glyphs arrive in visual order, so the pen always moves right.
func convertGlyphs(glyphs []shaping.Glyph, runes []rune, rc RenderContext) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	// Cluster is reported as a byte offset like BuiltinShaper.
	byteOffsets := make([]int, len(runes)+1)
	for i, r := range runes {
		byteOffsets[i+1] = byteOffsets[i] + len(string(r))
	}

	result := make([]ShapedGlyph, len(glyphs))

	var x float64
	for i, g := range glyphs {
		cluster := g.TextIndex()
		if cluster >= 0 && cluster < len(byteOffsets) {
			cluster = byteOffsets[cluster]
		}

		adv := rc.quantize(fixedToFloat(g.Advance))
		result[i] = ShapedGlyph{
			GID:     GlyphID(uint16(g.GlyphID)), //nolint:gosec // sfnt glyph indices are uint16
			Cluster: cluster,
			X:       x + rc.quantize(fixedToFloat(g.XOffset)),
			// go-text offsets are y-up; outlines are y-down.
			Y:        -rc.quantize(fixedToFloat(g.YOffset)),
			XAdvance: adv,
		}
		x += adv
	}

	return result
}
