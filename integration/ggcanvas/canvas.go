// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/text"
)

// Canvas adapts a gg.Context to ggchart.Canvas.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	dc        *gg.Context
	transform ggchart.Matrix
	antialias bool
}

// New wraps dc. The adapter starts with the identity transform and the
// antialiasing hint on.
func New(dc *gg.Context) *Canvas {
	return &Canvas{
		dc:        dc,
		transform: ggchart.Identity(),
		antialias: true,
	}
}

// Context returns the wrapped gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// SetColor implements ggchart.Canvas.
func (c *Canvas) SetColor(col color.Color) { c.dc.SetColor(col) }

// SetStroke implements ggchart.Canvas.
func (c *Canvas) SetStroke(s ggchart.Stroke) {
	c.dc.SetLineWidth(s.Width)
	c.dc.ClearDash()
}

// Transform implements ggchart.Canvas.
func (c *Canvas) Transform() ggchart.Matrix { return c.transform }

// SetTransform implements ggchart.Canvas.
func (c *Canvas) SetTransform(m ggchart.Matrix) { c.transform = m }

// Translate implements ggchart.Canvas.
func (c *Canvas) Translate(dx, dy float64) {
	c.transform = c.transform.Multiply(ggchart.Translate(dx, dy))
}

// Antialias implements ggchart.Canvas.
func (c *Canvas) Antialias() bool { return c.antialias }

// SetAntialias implements ggchart.Canvas.
func (c *Canvas) SetAntialias(on bool) { c.antialias = on }

// FillRect implements ggchart.Canvas.
func (c *Canvas) FillRect(r ggchart.Rect) error {
	c.rect(r)
	return c.dc.Fill()
}

// StrokeRect implements ggchart.Canvas.
func (c *Canvas) StrokeRect(r ggchart.Rect) error {
	c.rect(r)
	return c.dc.Stroke()
}

// FillOutline implements ggchart.Canvas.
func (c *Canvas) FillOutline(o *text.Outline) error {
	if o.IsEmpty() {
		return nil
	}

	c.dc.SetFillRule(gg.FillRuleNonZero)
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OpMoveTo:
			if open {
				c.dc.ClosePath()
			}
			c.dc.MoveTo(c.pt(seg.Points[0]))
			open = true
		case text.OpLineTo:
			c.dc.LineTo(c.pt(seg.Points[0]))
		case text.OpQuadTo:
			x1, y1 := c.pt(seg.Points[0])
			x2, y2 := c.pt(seg.Points[1])
			c.dc.QuadraticTo(x1, y1, x2, y2)
		case text.OpCubicTo:
			x1, y1 := c.pt(seg.Points[0])
			x2, y2 := c.pt(seg.Points[1])
			x3, y3 := c.pt(seg.Points[2])
			c.dc.CubicTo(x1, y1, x2, y2, x3, y3)
		}
	}
	if open {
		c.dc.ClosePath()
	}
	return c.dc.Fill()
}

// rect appends a closed rectangle in device space to the gg path.
func (c *Canvas) rect(r ggchart.Rect) {
	c.dc.MoveTo(c.transform.TransformPoint(r.X, r.Y))
	c.dc.LineTo(c.transform.TransformPoint(r.MaxX(), r.Y))
	c.dc.LineTo(c.transform.TransformPoint(r.MaxX(), r.MaxY()))
	c.dc.LineTo(c.transform.TransformPoint(r.X, r.MaxY()))
	c.dc.ClosePath()
}

func (c *Canvas) pt(p text.Point) (float64, float64) {
	return c.transform.TransformPoint(p.X, p.Y)
}

var _ ggchart.Canvas = (*Canvas)(nil)
