package ggchart

import (
	"math"
	"strings"

	"github.com/gogpu/ggchart/text"
)

// MultiLineSpace is the vertical gap in pixels between consecutive lines.
const MultiLineSpace = 3

// panelRenderContext is used for both the sizing pass and the painting pass
// so that measured and drawn lines agree.
var panelRenderContext = text.RenderContext{Antialias: true, FractionalMetrics: false}

// LineBounds is the measured glyph outline bounds of one panel line.
type LineBounds struct {
	Line   string
	Bounds text.Rect
}

// TextPanel is a floating box of multi-line text on a chart.
//
// Its anchor (x, y) is either in screen pixels, with y measured up from the
// bottom edge of the chart, or in axis values. The anchor is the bottom-left
// corner of the box. The box is kept from overflowing the right and top
// edges of the chart.
//
// A TextPanel is not safe for concurrent use; the owning chart must not
// call setters while it paints.
type TextPanel struct {
	Annotation

	lines         []string
	x, y          float64
	distinctLines bool
}

// NewTextPanel creates a visible panel from s split on newlines.
// screenSpace selects whether (x, y) are screen pixels or axis values.
func NewTextPanel(s string, x, y float64, screenSpace bool, opts ...PanelOption) *TextPanel {
	o := defaultPanelOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &TextPanel{
		Annotation: Annotation{
			visible:     !o.hidden,
			screenSpace: screenSpace,
		},
		lines:         splitLines(s),
		x:             x,
		y:             y,
		distinctLines: o.distinctLines,
	}
}

// splitLines splits s on "\n". Trailing empty lines are dropped; a string
// without newlines is a single line, even when empty.
func splitLines(s string) []string {
	if !strings.Contains(s, "\n") {
		return []string{s}
	}

	lines := strings.Split(s, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Lines returns a copy of the panel lines.
func (p *TextPanel) Lines() []string {
	out := make([]string, len(p.lines))
	copy(out, p.lines)
	return out
}

// SetLines replaces the panel lines. The slice is copied.
func (p *TextPanel) SetLines(lines []string) {
	p.lines = make([]string, len(lines))
	copy(p.lines, lines)
}

// X returns the anchor x coordinate.
func (p *TextPanel) X() float64 { return p.x }

// Y returns the anchor y coordinate.
func (p *TextPanel) Y() float64 { return p.y }

// SetX replaces the anchor x coordinate.
func (p *TextPanel) SetX(x float64) { p.x = x }

// SetY replaces the anchor y coordinate.
func (p *TextPanel) SetY(y float64) { p.y = y }

// TextBounds measures each line with style.Face.
//
// Entries follow line order. Unless the panel was created with
// WithDistinctLines, a line equal to an earlier line does not get its own
// entry.
func (p *TextPanel) TextBounds(style PanelStyle) []LineBounds {
	out := make([]LineBounds, 0, len(p.lines))

	var seen map[string]struct{}
	if !p.distinctLines {
		seen = make(map[string]struct{}, len(p.lines))
	}

	for _, line := range p.lines {
		if seen != nil {
			if _, dup := seen[line]; dup {
				continue
			}
			seen[line] = struct{}{}
		}
		out = append(out, LineBounds{
			Line:   line,
			Bounds: style.Face.Outline(line, panelRenderContext).Bounds(),
		})
	}
	return out
}

// Bounds returns the size of the panel box at the origin. A hidden panel
// has zero bounds and measures nothing.
func (p *TextPanel) Bounds(style PanelStyle) Rect {
	if !p.visible {
		return Rect{}
	}

	var entryHeight, contentMaxWidth float64
	for _, lb := range p.TextBounds(style) {
		entryHeight += lb.Bounds.Height() + MultiLineSpace
		contentMaxWidth = math.Max(contentMaxWidth, lb.Bounds.Width())
	}
	// no gap after the last line
	entryHeight -= MultiLineSpace

	contentHeight := entryHeight + style.Padding
	contentWidth := style.Padding + contentMaxWidth

	return Rect{
		W: contentWidth + 2*style.Padding,
		H: contentHeight + style.Padding,
	}
}

// Position returns the top-left corner of the panel box on the chart.
func (p *TextPanel) Position(style PanelStyle) (left, top float64, err error) {
	if p.chart == nil {
		return 0, 0, ErrNotInitialized
	}
	left, top = p.position(p.Bounds(style))
	return left, top, nil
}

// position places a box of the given size. The box may still overflow the
// bottom edge: only the right edge and the top edge are enforced.
func (p *TextPanel) position(bounds Rect) (left, top float64) {
	if p.screenSpace {
		left = p.x
		top = p.chart.Height() - bounds.H - p.y - 1
	} else {
		left = p.chart.XToScreen(p.x)
		top = p.chart.YToScreen(p.y) - bounds.H - 1
	}

	left = math.Min(left, p.chart.Width()-bounds.W-1)
	top = math.Max(top, 1)
	return left, top
}

// Paint draws the panel box and its lines onto c. A hidden panel draws
// nothing. Errors from c are returned unchanged.
func (p *TextPanel) Paint(c Canvas, style PanelStyle) error {
	if !p.visible {
		return nil
	}
	if err := style.Validate(); err != nil {
		return err
	}
	if p.chart == nil {
		return ErrNotInitialized
	}

	bounds := p.Bounds(style)
	left, top := p.position(bounds)
	box := Rect{X: left, Y: top, W: bounds.W, H: bounds.H}

	Logger().Debug("ggchart: painting text panel",
		"box", box,
		"lines", len(p.lines),
		"screenSpace", p.screenSpace)

	c.SetColor(style.Background)
	if err := c.FillRect(box); err != nil {
		return err
	}
	c.SetStroke(SolidStroke)
	c.SetColor(style.Border)
	if err := c.StrokeRect(box); err != nil {
		return err
	}

	defer WithAntialias(c, true)()

	entries := p.TextBounds(style)
	c.SetColor(style.FontColor)

	startX := left + style.Padding
	startY := top + style.Padding

	var offset float64
	for _, lb := range entries {
		lineHeight := lb.Bounds.Height()

		outline := style.Face.Outline(lb.Line, panelRenderContext)
		orig := c.Transform()
		c.Translate(startX, startY+lineHeight+offset)
		err := c.FillOutline(outline)
		c.SetTransform(orig)
		if err != nil {
			return err
		}

		offset += lineHeight + MultiLineSpace
	}

	return nil
}
