package recording

import (
	"image/color"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/text"
)

// Recorder captures canvas operations as commands.
// It implements ggchart.Canvas. Use FinishRecording to obtain an immutable
// Recording that can be replayed.
//
// The Recorder starts with black paint, the solid one pixel stroke, the
// identity transform and antialiasing off.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command

	paint     color.Color
	stroke    ggchart.Stroke
	transform ggchart.Matrix
	antialias bool
}

// NewRecorder creates a new Recorder in its default state.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:  make([]Command, 0, 16),
		paint:     color.Black,
		stroke:    ggchart.SolidStroke,
		transform: ggchart.Identity(),
	}
}

// SetColor implements ggchart.Canvas.
func (r *Recorder) SetColor(c color.Color) { r.paint = c }

// SetStroke implements ggchart.Canvas.
func (r *Recorder) SetStroke(s ggchart.Stroke) { r.stroke = s }

// Transform implements ggchart.Canvas.
func (r *Recorder) Transform() ggchart.Matrix { return r.transform }

// SetTransform implements ggchart.Canvas.
func (r *Recorder) SetTransform(m ggchart.Matrix) { r.transform = m }

// Translate implements ggchart.Canvas.
func (r *Recorder) Translate(dx, dy float64) {
	r.transform = r.transform.Multiply(ggchart.Translate(dx, dy))
}

// Antialias implements ggchart.Canvas.
func (r *Recorder) Antialias() bool { return r.antialias }

// SetAntialias implements ggchart.Canvas. Every call is recorded, even when
// the value does not change.
func (r *Recorder) SetAntialias(on bool) {
	r.antialias = on
	r.record(Command{Type: CmdSetAntialias})
}

// FillRect implements ggchart.Canvas.
func (r *Recorder) FillRect(rect ggchart.Rect) error {
	r.record(Command{Type: CmdFillRect, Rect: rect})
	return nil
}

// StrokeRect implements ggchart.Canvas.
func (r *Recorder) StrokeRect(rect ggchart.Rect) error {
	r.record(Command{Type: CmdStrokeRect, Rect: rect})
	return nil
}

// FillOutline implements ggchart.Canvas.
func (r *Recorder) FillOutline(o *text.Outline) error {
	if o == nil {
		o = &text.Outline{}
	}
	r.record(Command{Type: CmdFillOutline, Outline: o})
	return nil
}

// record stamps cmd with the current state and appends it.
func (r *Recorder) record(cmd Command) {
	cmd.Color = r.paint
	cmd.Stroke = r.stroke
	cmd.Transform = r.transform
	cmd.Antialias = r.antialias
	r.commands = append(r.commands, cmd)
}

// Commands returns a copy of the commands recorded so far.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// DrawCount returns the number of recorded drawing commands.
func (r *Recorder) DrawCount() int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type.IsDrawing() {
			n++
		}
	}
	return n
}

// Reset discards recorded commands and restores the default state.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.paint = color.Black
	r.stroke = ggchart.SolidStroke
	r.transform = ggchart.Identity()
	r.antialias = false
}

// FinishRecording returns the recorded commands as a Recording and resets
// the Recorder.
func (r *Recorder) FinishRecording() *Recording {
	rec := &Recording{commands: r.Commands()}
	r.Reset()
	return rec
}

// Recording is an immutable sequence of commands.
type Recording struct {
	commands []Command
}

// Len returns the number of commands.
func (rec *Recording) Len() int {
	return len(rec.commands)
}

// Commands returns a copy of the commands.
func (rec *Recording) Commands() []Command {
	out := make([]Command, len(rec.commands))
	copy(out, rec.commands)
	return out
}

// Playback replays the recording onto dst. Each command runs under its
// recorded paint, stroke and transform. The transform of dst is restored
// afterwards; paint, stroke and hint keep the values of the last command.
// Playback stops at the first error from dst.
func (rec *Recording) Playback(dst ggchart.Canvas) error {
	orig := dst.Transform()
	defer dst.SetTransform(orig)

	for _, cmd := range rec.commands {
		dst.SetTransform(cmd.Transform)
		dst.SetColor(cmd.Color)
		dst.SetStroke(cmd.Stroke)

		var err error
		switch cmd.Type {
		case CmdSetAntialias:
			dst.SetAntialias(cmd.Antialias)
		case CmdFillRect:
			err = dst.FillRect(cmd.Rect)
		case CmdStrokeRect:
			err = dst.StrokeRect(cmd.Rect)
		case CmdFillOutline:
			err = dst.FillOutline(cmd.Outline)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

var _ ggchart.Canvas = (*Recorder)(nil)
