package recording

import (
	"errors"
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/text"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		typ     CommandType
		want    string
		drawing bool
	}{
		{CmdSetAntialias, "SetAntialias", false},
		{CmdFillRect, "FillRect", true},
		{CmdStrokeRect, "StrokeRect", true},
		{CmdFillOutline, "FillOutline", true},
		{CommandType(200), "Unknown", false},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
		if got := tt.typ.IsDrawing(); got != tt.drawing {
			t.Errorf("%s.IsDrawing() = %v, want %v", tt.want, got, tt.drawing)
		}
	}
}

func TestCommand_String(t *testing.T) {
	outline := &text.Outline{Segments: make([]text.Segment, 3)}
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Type: CmdSetAntialias, Antialias: true}, "SetAntialias(true)"},
		{Command{Type: CmdFillRect, Rect: ggchart.Rect{X: 1, Y: 2, W: 3, H: 4}}, "FillRect(1,2 3x4)"},
		{Command{Type: CmdStrokeRect, Rect: ggchart.Rect{W: 5, H: 6}}, "StrokeRect(0,0 5x6)"},
		{Command{Type: CmdFillOutline, Outline: outline, Transform: ggchart.Translate(7, 8.5)}, "FillOutline(3 segments at 7,8.5)"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRecorder_StampsState(t *testing.T) {
	r := NewRecorder()
	if r.Antialias() || !r.Transform().IsIdentity() {
		t.Fatal("new Recorder is not in its default state")
	}

	blue := color.RGBA{B: 255, A: 255}
	r.SetColor(blue)
	r.SetStroke(ggchart.Stroke{Width: 2})
	r.Translate(3, 4)
	if err := r.StrokeRect(ggchart.Rect{W: 10, H: 10}); err != nil {
		t.Fatal(err)
	}

	cmds := r.Commands()
	if len(cmds) != 1 {
		t.Fatalf("len(Commands()) = %d, want 1", len(cmds))
	}
	got := cmds[0]
	if got.Color != blue || got.Stroke.Width != 2 || got.Transform != ggchart.Translate(3, 4) {
		t.Errorf("command state = %+v", got)
	}
}

func TestRecorder_SetAntialiasAlwaysRecorded(t *testing.T) {
	r := NewRecorder()
	r.SetAntialias(false)
	r.SetAntialias(false)
	if n := len(r.Commands()); n != 2 {
		t.Errorf("len(Commands()) = %d, want 2", n)
	}
	if r.DrawCount() != 0 {
		t.Errorf("DrawCount() = %d, want 0", r.DrawCount())
	}
}

func TestRecorder_FillOutlineNil(t *testing.T) {
	r := NewRecorder()
	if err := r.FillOutline(nil); err != nil {
		t.Fatal(err)
	}
	cmd := r.Commands()[0]
	if cmd.Outline == nil {
		t.Error("nil outline recorded as nil")
	}
	if !strings.HasPrefix(cmd.String(), "FillOutline(0 segments") {
		t.Errorf("String() = %q", cmd.String())
	}
}

func TestRecorder_CommandsIsCopy(t *testing.T) {
	r := NewRecorder()
	_ = r.FillRect(ggchart.Rect{W: 1, H: 1})
	cmds := r.Commands()
	cmds[0].Type = CmdStrokeRect
	if r.Commands()[0].Type != CmdFillRect {
		t.Error("mutating Commands() result changed the recorder")
	}
}

func TestRecorder_ResetAndFinish(t *testing.T) {
	r := NewRecorder()
	r.SetColor(color.White)
	r.SetAntialias(true)
	r.Translate(1, 1)
	_ = r.FillRect(ggchart.Rect{W: 1, H: 1})
	_ = r.StrokeRect(ggchart.Rect{W: 1, H: 1})

	if r.DrawCount() != 2 {
		t.Errorf("DrawCount() = %d, want 2", r.DrawCount())
	}

	rec := r.FinishRecording()
	if rec.Len() != 3 {
		t.Errorf("Recording.Len() = %d, want 3", rec.Len())
	}
	if len(r.Commands()) != 0 || r.Antialias() || !r.Transform().IsIdentity() {
		t.Error("FinishRecording() did not reset the recorder")
	}

	_ = r.FillRect(ggchart.Rect{W: 2, H: 2})
	if rec.Len() != 3 {
		t.Error("recording changed after the recorder was reused")
	}
}

func TestRecording_Playback(t *testing.T) {
	src := NewRecorder()
	outline := text.DefaultSource().Face(12).Outline("Hi", text.DefaultRenderContext())

	src.SetColor(color.White)
	_ = src.FillRect(ggchart.Rect{X: 1, Y: 2, W: 30, H: 20})
	src.SetColor(color.Black)
	_ = src.StrokeRect(ggchart.Rect{X: 1, Y: 2, W: 30, H: 20})
	restore := ggchart.WithAntialias(src, true)
	src.Translate(5, 15)
	_ = src.FillOutline(outline)
	src.SetTransform(ggchart.Identity())
	restore()

	rec := src.FinishRecording()

	dst := NewRecorder()
	dst.Translate(100, 100)
	if err := rec.Playback(dst); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}

	if !reflect.DeepEqual(dst.Commands(), rec.Commands()) {
		t.Errorf("played back commands differ:\n got %v\nwant %v", dst.Commands(), rec.Commands())
	}
	if dst.Transform() != ggchart.Translate(100, 100) {
		t.Errorf("Playback() left transform %v, want the original", dst.Transform())
	}
}

type failingCanvas struct {
	*Recorder
	err error
}

func (f failingCanvas) StrokeRect(ggchart.Rect) error { return f.err }

func TestRecording_PlaybackError(t *testing.T) {
	src := NewRecorder()
	_ = src.FillRect(ggchart.Rect{W: 1, H: 1})
	_ = src.StrokeRect(ggchart.Rect{W: 1, H: 1})
	_ = src.FillRect(ggchart.Rect{W: 2, H: 2})
	rec := src.FinishRecording()

	errBoom := errors.New("boom")
	dst := failingCanvas{Recorder: NewRecorder(), err: errBoom}
	if err := rec.Playback(dst); !errors.Is(err, errBoom) {
		t.Fatalf("Playback() error = %v, want %v", err, errBoom)
	}
	if n := dst.DrawCount(); n != 1 {
		t.Errorf("DrawCount() after failed playback = %d, want 1", n)
	}
}
