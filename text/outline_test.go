package text

import (
	"math"
	"reflect"
	"testing"
)

func TestOp_String(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpMoveTo, "MoveTo"},
		{OpLineTo, "LineTo"},
		{OpQuadTo, "QuadTo"},
		{OpCubicTo, "CubicTo"},
		{Op(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("Op.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutline_Bounds(t *testing.T) {
	o := &Outline{Segments: []Segment{
		{Op: OpMoveTo, Points: [3]Point{{X: 1, Y: -10}}},
		{Op: OpLineTo, Points: [3]Point{{X: 6, Y: -10}}},
		{Op: OpQuadTo, Points: [3]Point{{X: 8, Y: -4}, {X: 6, Y: 2}}},
		{Op: OpLineTo, Points: [3]Point{{X: 1, Y: 2}}},
	}}

	// the curve bulges to x=7; its control point at x=8 is off the curve
	got := o.Bounds()
	want := Rect{MinX: 1, MinY: -10, MaxX: 7, MaxY: 2}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestOutline_BoundsCurveExtrema(t *testing.T) {
	tests := []struct {
		name string
		segs []Segment
		want Rect
	}{
		{
			name: "quad without extremum",
			segs: []Segment{
				{Op: OpMoveTo, Points: [3]Point{{X: 0, Y: 0}}},
				{Op: OpQuadTo, Points: [3]Point{{X: 1, Y: 1}, {X: 2, Y: 2}}},
			},
			want: Rect{MaxX: 2, MaxY: 2},
		},
		{
			name: "cubic arch",
			segs: []Segment{
				{Op: OpMoveTo, Points: [3]Point{{X: 0, Y: 0}}},
				{Op: OpCubicTo, Points: [3]Point{{X: 0, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 0}}},
			},
			want: Rect{MaxX: 4, MaxY: 3},
		},
		{
			name: "cubic s-curve",
			segs: []Segment{
				{Op: OpMoveTo, Points: [3]Point{{X: 0, Y: 0}}},
				{Op: OpCubicTo, Points: [3]Point{{X: 0, Y: 8}, {X: 4, Y: -8}, {X: 4, Y: 0}}},
			},
			want: Rect{MaxX: 4, MinY: -4 * math.Sqrt(3) / 3, MaxY: 4 * math.Sqrt(3) / 3},
		},
		{
			name: "curve after a second contour",
			segs: []Segment{
				{Op: OpMoveTo, Points: [3]Point{{X: 0, Y: 0}}},
				{Op: OpLineTo, Points: [3]Point{{X: 1, Y: 0}}},
				{Op: OpMoveTo, Points: [3]Point{{X: 10, Y: 0}}},
				{Op: OpQuadTo, Points: [3]Point{{X: 12, Y: 4}, {X: 14, Y: 0}}},
			},
			want: Rect{MaxX: 14, MaxY: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := (&Outline{Segments: tt.segs}).Bounds()
			const eps = 1e-9
			if math.Abs(got.MinX-tt.want.MinX) > eps || math.Abs(got.MinY-tt.want.MinY) > eps ||
				math.Abs(got.MaxX-tt.want.MaxX) > eps || math.Abs(got.MaxY-tt.want.MaxY) > eps {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOutline_BoundsIgnoresUnusedPoints(t *testing.T) {
	o := &Outline{Segments: []Segment{
		{Op: OpMoveTo, Points: [3]Point{{X: 0, Y: 0}, {X: 100, Y: 100}}},
		{Op: OpLineTo, Points: [3]Point{{X: 2, Y: 3}, {X: -50, Y: -50}}},
	}}

	want := Rect{MaxX: 2, MaxY: 3}
	if got := o.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestOutline_Empty(t *testing.T) {
	var nilOutline *Outline
	if !nilOutline.IsEmpty() {
		t.Error("nil Outline.IsEmpty() = false")
	}
	if got := (&Outline{}).Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds() = %+v, want zero", got)
	}
}

func TestOutline_Translate(t *testing.T) {
	o := &Outline{Segments: []Segment{
		{Op: OpMoveTo, Points: [3]Point{{X: 1, Y: 1}}},
		{Op: OpCubicTo, Points: [3]Point{{X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}}},
	}}

	moved := o.Translate(10, -1)
	if o.Segments[0].Points[0] != (Point{X: 1, Y: 1}) {
		t.Error("Translate() modified the receiver")
	}
	want := Rect{MinX: 11, MinY: 0, MaxX: 14, MaxY: 3}
	if got := moved.Bounds(); got != want {
		t.Errorf("Translate().Bounds() = %+v, want %+v", got, want)
	}
}

func TestFace_Outline(t *testing.T) {
	face := DefaultSource().Face(20)
	rc := DefaultRenderContext()

	t.Run("empty string", func(t *testing.T) {
		if o := face.Outline("", rc); !o.IsEmpty() {
			t.Errorf("Outline(\"\") has %d segments, want 0", len(o.Segments))
		}
	})

	t.Run("nil face", func(t *testing.T) {
		var f *Face
		if o := f.Outline("A", rc); !o.IsEmpty() {
			t.Error("nil Face.Outline() not empty")
		}
	})

	t.Run("space only", func(t *testing.T) {
		o := face.Outline("   ", rc)
		if !o.IsEmpty() {
			t.Error("Outline of spaces has segments")
		}
		if o.Advance <= 0 {
			t.Errorf("Outline of spaces Advance = %v, want > 0", o.Advance)
		}
	})

	t.Run("capital sits on baseline", func(t *testing.T) {
		b := face.Outline("H", rc).Bounds()
		if b.Width() <= 0 || b.Height() <= 0 {
			t.Fatalf("Bounds() = %+v, want non-empty", b)
		}
		if b.MinY >= 0 {
			t.Errorf("Bounds().MinY = %v, want above baseline (< 0)", b.MinY)
		}
		if math.Abs(b.MaxY) > 0.5 {
			t.Errorf("Bounds().MaxY = %v, want on baseline", b.MaxY)
		}
	})

	t.Run("descender below baseline", func(t *testing.T) {
		if b := face.Outline("gy", rc).Bounds(); b.MaxY <= 0 {
			t.Errorf("Bounds().MaxY = %v, want > 0", b.MaxY)
		}
	})

	t.Run("longer text is wider", func(t *testing.T) {
		short := face.Outline("AB", rc).Bounds().Width()
		long := face.Outline("ABAB", rc).Bounds().Width()
		if long <= short {
			t.Errorf("width(ABAB) = %v, want > width(AB) = %v", long, short)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := face.Outline("Peak 42.0", rc)
		b := face.Outline("Peak 42.0", rc)
		if !reflect.DeepEqual(a, b) {
			t.Error("Outline() differs between identical calls")
		}
	})
}

func TestFace_Advance(t *testing.T) {
	face := DefaultSource().Face(16)
	rc := DefaultRenderContext()
	if got, want := face.Advance("Chart", rc), face.Outline("Chart", rc).Advance; got != want {
		t.Errorf("Advance() = %v, want Outline().Advance = %v", got, want)
	}
	if got := face.Advance("", rc); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}
}
