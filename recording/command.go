package recording

import (
	"fmt"
	"image/color"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/text"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSetAntialias CommandType = iota // Set the antialiasing hint

	// Drawing commands
	CmdFillRect    // Fill a rectangle
	CmdStrokeRect  // Stroke a rectangle
	CmdFillOutline // Fill a glyph outline
)

// String returns the command type name.
func (t CommandType) String() string {
	switch t {
	case CmdSetAntialias:
		return "SetAntialias"
	case CmdFillRect:
		return "FillRect"
	case CmdStrokeRect:
		return "StrokeRect"
	case CmdFillOutline:
		return "FillOutline"
	default:
		return "Unknown"
	}
}

// IsDrawing reports whether the command produces pixels.
func (t CommandType) IsDrawing() bool {
	return t == CmdFillRect || t == CmdStrokeRect || t == CmdFillOutline
}

// Command is one recorded canvas operation along with the state it was
// issued under.
type Command struct {
	Type CommandType

	// Color is the paint in effect.
	Color color.Color

	// Stroke is the stroke in effect.
	Stroke ggchart.Stroke

	// Transform is the transform in effect.
	Transform ggchart.Matrix

	// Antialias is the hint in effect, or the new value for CmdSetAntialias.
	Antialias bool

	// Rect is set for CmdFillRect and CmdStrokeRect.
	Rect ggchart.Rect

	// Outline is set for CmdFillOutline. It is shared, not copied.
	Outline *text.Outline
}

// String returns a one-line description of the command.
func (c Command) String() string {
	switch c.Type {
	case CmdSetAntialias:
		return fmt.Sprintf("%s(%t)", c.Type, c.Antialias)
	case CmdFillRect, CmdStrokeRect:
		return fmt.Sprintf("%s%s", c.Type, c.Rect)
	case CmdFillOutline:
		x, y := c.Transform.TransformPoint(0, 0)
		return fmt.Sprintf("%s(%d segments at %g,%g)", c.Type, len(c.Outline.Segments), x, y)
	default:
		return c.Type.String()
	}
}
