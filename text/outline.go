package text

import "math"

// Op is the type of path operation.
type Op uint8

const (
	// OpMoveTo moves to a new point without drawing.
	OpMoveTo Op = iota

	// OpLineTo draws a line to the target point.
	OpLineTo

	// OpQuadTo draws a quadratic bezier curve.
	OpQuadTo

	// OpCubicTo draws a cubic bezier curve.
	OpCubicTo
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// PointCount returns how many entries of Segment.Points the op uses.
func (op Op) PointCount() int {
	switch op {
	case OpQuadTo:
		return 2
	case OpCubicTo:
		return 3
	default:
		return 1
	}
}

// Segment represents a segment of an outline.
type Segment struct {
	// Op is the segment operation type.
	Op Op

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]Point
}

// Outline is the filled vector shape of a line of text, in pixels.
// Contours are implicitly closed by the next MoveTo or the end of the
// outline, matching sfnt glyph data.
type Outline struct {
	Segments []Segment

	// Advance is the pen advance of the whole line.
	Advance float64
}

// IsEmpty returns true if the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Bounds returns the tight bounding box of the outline. Curves contribute
// their extrema, not their control points. An empty outline has zero bounds.
func (o *Outline) Bounds() Rect {
	if o.IsEmpty() {
		return Rect{}
	}

	first := o.Segments[0].Points[0]
	r := Rect{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	cur := first
	for _, seg := range o.Segments {
		switch seg.Op {
		case OpQuadTo:
			p1, p2 := seg.Points[0], seg.Points[1]
			for _, t := range quadExtrema(cur.X, p1.X, p2.X) {
				r.add(quadAt(cur, p1, p2, t))
			}
			for _, t := range quadExtrema(cur.Y, p1.Y, p2.Y) {
				r.add(quadAt(cur, p1, p2, t))
			}
		case OpCubicTo:
			p1, p2, p3 := seg.Points[0], seg.Points[1], seg.Points[2]
			for _, t := range cubicExtrema(cur.X, p1.X, p2.X, p3.X) {
				r.add(cubicAt(cur, p1, p2, p3, t))
			}
			for _, t := range cubicExtrema(cur.Y, p1.Y, p2.Y, p3.Y) {
				r.add(cubicAt(cur, p1, p2, p3, t))
			}
		}
		cur = seg.Points[seg.Op.PointCount()-1]
		r.add(cur)
	}
	return r
}

func (r *Rect) add(p Point) {
	r.MinX = math.Min(r.MinX, p.X)
	r.MinY = math.Min(r.MinY, p.Y)
	r.MaxX = math.Max(r.MaxX, p.X)
	r.MaxY = math.Max(r.MaxY, p.Y)
}

// quadExtrema returns the parameters in (0, 1) where one coordinate of a
// quadratic Bézier has zero derivative.
func quadExtrema(p0, p1, p2 float64) []float64 {
	d := p0 - 2*p1 + p2
	if d == 0 {
		return nil
	}
	return inUnit((p0 - p1) / d)
}

// cubicExtrema returns the parameters in (0, 1) where one coordinate of a
// cubic Bézier has zero derivative.
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0

	if a == 0 {
		if b == 0 {
			return nil
		}
		return inUnit(-c / b)
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return inUnit((-b+sq)/(2*a), (-b-sq)/(2*a))
}

func inUnit(ts ...float64) []float64 {
	out := ts[:0]
	for _, t := range ts {
		if t > 0 && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Translate returns a copy of the outline moved by (dx, dy).
func (o *Outline) Translate(dx, dy float64) *Outline {
	if o == nil {
		return nil
	}

	out := &Outline{
		Segments: make([]Segment, len(o.Segments)),
		Advance:  o.Advance,
	}
	for i, seg := range o.Segments {
		for j := 0; j < seg.Op.PointCount(); j++ {
			seg.Points[j].X += dx
			seg.Points[j].Y += dy
		}
		out.Segments[i] = seg
	}
	return out
}

// appendGlyph appends glyph segments offset by the glyph position.
func (o *Outline) appendGlyph(segs []Segment, x, y float64) {
	for _, seg := range segs {
		for j := 0; j < seg.Op.PointCount(); j++ {
			seg.Points[j].X += x
			seg.Points[j].Y += y
		}
		o.Segments = append(o.Segments, seg)
	}
}
