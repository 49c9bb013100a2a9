package ggchart

// Chart is the owning chart as seen by an annotation: its canvas size in
// pixels and the transforms from axis values to screen pixels.
type Chart interface {
	// Width returns the chart canvas width in pixels.
	Width() float64

	// Height returns the chart canvas height in pixels.
	Height() float64

	// XToScreen converts an x-axis value to a horizontal pixel position.
	XToScreen(v float64) float64

	// YToScreen converts a y-axis value to a vertical pixel position.
	YToScreen(v float64) float64
}

// Range is a closed interval of axis values.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Plot is a Chart with linear axes mapped into a plot area.
// The y axis grows upward in data space, so YToScreen(Y.Max) is the top of
// the plot area.
type Plot struct {
	width, height int
	area          Rect
	x, y          Range
}

// NewPlot creates a Plot of width x height pixels whose axes span xr and yr
// across area.
func NewPlot(width, height int, area Rect, xr, yr Range) *Plot {
	return &Plot{
		width:  width,
		height: height,
		area:   area,
		x:      xr,
		y:      yr,
	}
}

// Width implements Chart.
func (p *Plot) Width() float64 { return float64(p.width) }

// Height implements Chart.
func (p *Plot) Height() float64 { return float64(p.height) }

// Area returns the plot area in screen space.
func (p *Plot) Area() Rect { return p.area }

// XRange returns the x axis range.
func (p *Plot) XRange() Range { return p.x }

// YRange returns the y axis range.
func (p *Plot) YRange() Range { return p.y }

// XToScreen implements Chart. A degenerate range maps to the left edge of
// the plot area.
func (p *Plot) XToScreen(v float64) float64 {
	span := p.x.Span()
	if span == 0 {
		return p.area.X
	}
	return p.area.X + (v-p.x.Min)/span*p.area.W
}

// YToScreen implements Chart. A degenerate range maps to the bottom edge of
// the plot area.
func (p *Plot) YToScreen(v float64) float64 {
	span := p.y.Span()
	if span == 0 {
		return p.area.MaxY()
	}
	return p.area.MaxY() - (v-p.y.Min)/span*p.area.H
}
