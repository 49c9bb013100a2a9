package text

import (
	"math"
	"reflect"
	"testing"
)

func TestBuiltinShaper_Clusters(t *testing.T) {
	face := DefaultSource().Face(12)
	glyphs := (&BuiltinShaper{}).Shape("aé b", face, DefaultRenderContext())

	want := []int{0, 1, 3, 4}
	if len(glyphs) != len(want) {
		t.Fatalf("Shape() returned %d glyphs, want %d", len(glyphs), len(want))
	}
	for i, g := range glyphs {
		if g.Cluster != want[i] {
			t.Errorf("glyph[%d].Cluster = %d, want %d", i, g.Cluster, want[i])
		}
	}
}

func TestBuiltinShaper_Quantize(t *testing.T) {
	face := DefaultSource().Face(13.3)

	tests := []struct {
		name       string
		fractional bool
	}{
		{"whole pixels", false},
		{"fractional", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := RenderContext{Antialias: true, FractionalMetrics: tt.fractional}
			glyphs := (&BuiltinShaper{}).Shape("Wavy text", face, rc)
			if len(glyphs) == 0 {
				t.Fatal("Shape() returned no glyphs")
			}
			allWhole := true
			for _, g := range glyphs {
				if g.X != math.Round(g.X) || g.XAdvance != math.Round(g.XAdvance) {
					allWhole = false
				}
			}
			if !tt.fractional && !allWhole {
				t.Error("positions not whole pixels with FractionalMetrics off")
			}
		})
	}
}

func TestBuiltinShaper_NilFace(t *testing.T) {
	if got := (&BuiltinShaper{}).Shape("x", nil, DefaultRenderContext()); got != nil {
		t.Errorf("Shape(nil face) = %v, want nil", got)
	}
}

func TestGoTextShaper_MatchesGlyphs(t *testing.T) {
	shaper := NewGoTextShaper()
	face := DefaultSource().Face(14, WithShaper(shaper))
	if face.Shaper() != shaper {
		t.Fatal("Face.Shaper() did not return the configured shaper")
	}

	got := face.Shaper().Shape("Hello", face, DefaultRenderContext())
	want := (&BuiltinShaper{}).Shape("Hello", face, DefaultRenderContext())
	if len(got) != len(want) {
		t.Fatalf("GoTextShaper returned %d glyphs, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].GID != want[i].GID {
			t.Errorf("glyph[%d].GID = %d, want %d", i, got[i].GID, want[i].GID)
		}
		if got[i].XAdvance != math.Round(got[i].XAdvance) {
			t.Errorf("glyph[%d].XAdvance = %v, want whole pixels", i, got[i].XAdvance)
		}
	}

	if o := face.Outline("Hello", DefaultRenderContext()); o.IsEmpty() {
		t.Error("Outline() through GoTextShaper is empty")
	}

	shaper.ClearCache()
	if again := face.Shaper().Shape("Hello", face, DefaultRenderContext()); len(again) != len(got) {
		t.Errorf("after ClearCache got %d glyphs, want %d", len(again), len(got))
	}
}

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		text string
		want Direction
	}{
		{"Peak load", DirectionLTR},
		{"שלום", DirectionRTL},
		{"123", DirectionLTR},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := resolveDirection(tt.text); got != tt.want {
				t.Errorf("resolveDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestGoTextShaper_Direction(t *testing.T) {
	shaper := NewGoTextShaper()
	rc := DefaultRenderContext()

	tests := []struct {
		name         string
		text         string
		dir          Direction
		wantReversed bool
	}{
		{"auto latin", "abc", DirectionAuto, false},
		{"auto hebrew", "שלום", DirectionAuto, true},
		{"forced rtl latin", "abc", DirectionRTL, true},
		{"forced ltr hebrew", "שלום", DirectionLTR, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face := DefaultSource().Face(14, WithShaper(shaper), WithDirection(tt.dir))
			if face.Direction() != tt.dir {
				t.Fatalf("Face.Direction() = %v, want %v", face.Direction(), tt.dir)
			}

			glyphs := face.Shaper().Shape(tt.text, face, rc)
			if len(glyphs) < 2 {
				t.Fatalf("Shape(%q) returned %d glyphs, want at least 2", tt.text, len(glyphs))
			}
			first, last := glyphs[0].Cluster, glyphs[len(glyphs)-1].Cluster
			if reversed := first > last; reversed != tt.wantReversed {
				t.Errorf("clusters run %d..%d, reversed = %v, want %v", first, last, reversed, tt.wantReversed)
			}
			for i := 1; i < len(glyphs); i++ {
				if glyphs[i].X < glyphs[i-1].X {
					t.Errorf("glyph[%d].X = %v moves left of glyph[%d].X = %v", i, glyphs[i].X, i-1, glyphs[i-1].X)
				}
			}
		})
	}
}

func TestFace_OutlineRTL(t *testing.T) {
	shaper := NewGoTextShaper()
	ltr := DefaultSource().Face(20, WithShaper(shaper), WithDirection(DirectionLTR))
	rtl := DefaultSource().Face(20, WithShaper(shaper), WithDirection(DirectionRTL))

	a := ltr.Outline("ab", DefaultRenderContext())
	b := rtl.Outline("ab", DefaultRenderContext())
	if a.IsEmpty() || b.IsEmpty() {
		t.Fatal("Outline() is empty")
	}
	if a.Advance != b.Advance {
		t.Errorf("RTL advance = %v, want LTR advance %v", b.Advance, a.Advance)
	}
	if reflect.DeepEqual(a.Segments, b.Segments) {
		t.Error("RTL outline places glyphs like the LTR outline")
	}
}

func TestDirection_String(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionAuto, "Auto"},
		{DirectionLTR, "LTR"},
		{DirectionRTL, "RTL"},
		{Direction(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}
