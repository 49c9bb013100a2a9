// Command ggannotate renders an annotation text panel over an empty chart
// frame and writes the result as PNG.
//
//	ggannotate -text "peak: 0.93\nt = 42s" -x 42 -y 0.93 -output peak.png
//	ggannotate -text "screen note" -screen -x 20 -y 20 -backend gg
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/integration/ggcanvas"
	"github.com/gogpu/ggchart/surface"
	"github.com/gogpu/ggchart/theme"
)

type options struct {
	text      string
	x, y      float64
	screen    bool
	width     int
	height    int
	themePath string
	backend   string
	output    string
	verbose   bool
}

func main() {
	var o options
	flag.StringVar(&o.text, "text", "annotation", `panel text; "\n" separates lines`)
	flag.Float64Var(&o.x, "x", 50, "anchor x (axis value, or pixels with -screen)")
	flag.Float64Var(&o.y, "y", 0, "anchor y (axis value, or pixels from the bottom with -screen)")
	flag.BoolVar(&o.screen, "screen", false, "interpret -x/-y as screen pixels")
	flag.IntVar(&o.width, "width", 640, "image width")
	flag.IntVar(&o.height, "height", 400, "image height")
	flag.StringVar(&o.themePath, "theme", "", "YAML panel theme")
	flag.StringVar(&o.backend, "backend", "software", "drawing backend: software or gg")
	flag.StringVar(&o.output, "output", "annotation.png", "output file")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ggchart.SetLogger(logger)

	if err := run(o, logger); err != nil {
		logger.Error("ggannotate failed", "err", err)
		os.Exit(1)
	}
}

func run(o options, logger *slog.Logger) error {
	style := ggchart.DefaultPanelStyle(nil)
	if o.themePath != "" {
		t, err := theme.LoadFile(o.themePath)
		if err != nil {
			return err
		}
		if style, err = t.PanelStyle(); err != nil {
			return err
		}
	}

	plot := ggchart.NewPlot(o.width, o.height,
		ggchart.Rect{X: 40, Y: 20, W: float64(o.width) - 60, H: float64(o.height) - 60},
		ggchart.Range{Min: 0, Max: 100},
		ggchart.Range{Min: -1, Max: 1})

	// The flag value arrives with a literal backslash-n from most shells.
	panel := ggchart.NewTextPanel(strings.ReplaceAll(o.text, `\n`, "\n"), o.x, o.y, o.screen)
	panel.Init(plot)

	switch o.backend {
	case "software":
		s := surface.NewImageSurface(o.width, o.height)
		s.Clear(color.White)
		if err := drawFrame(s, plot); err != nil {
			return err
		}
		if err := panel.Paint(s, style); err != nil {
			return err
		}
		if err := s.SavePNG(o.output); err != nil {
			return err
		}
	case "gg":
		if err := renderGG(o, plot, panel, style); err != nil {
			return err
		}
	default:
		return errors.New("unknown backend " + o.backend)
	}

	left, top, err := panel.Position(style)
	if err != nil {
		return err
	}
	bounds := panel.Bounds(style)
	logger.Info("annotation written",
		"output", o.output,
		"backend", o.backend,
		"box", ggchart.Rect{X: left, Y: top, W: bounds.W, H: bounds.H})
	return nil
}

// renderGG paints through a gg context and releases it afterwards.
func renderGG(o options, plot *ggchart.Plot, panel *ggchart.TextPanel, style ggchart.PanelStyle) (err error) {
	dc := gg.NewContext(o.width, o.height)
	defer func() {
		if cerr := dc.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	dc.ClearWithColor(gg.White)
	c := ggcanvas.New(dc)
	if err := drawFrame(c, plot); err != nil {
		return err
	}
	if err := panel.Paint(c, style); err != nil {
		return err
	}
	if err := dc.SavePNG(o.output); err != nil {
		return fmt.Errorf("save %s: %w", o.output, err)
	}
	return nil
}

// drawFrame outlines the plot area in light gray.
func drawFrame(c ggchart.Canvas, plot *ggchart.Plot) error {
	c.SetColor(color.RGBA{200, 200, 200, 255})
	c.SetStroke(ggchart.SolidStroke)
	return c.StrokeRect(plot.Area())
}
