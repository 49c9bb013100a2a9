// Package ggchart draws chart annotations on top of a 2D drawing surface.
//
// # Overview
//
// The package provides the annotation text panel: a boxed block of
// multi-line text anchored either to a point in chart data space or to a
// pixel position measured from the bottom-left of the chart. The panel
// measures its lines as glyph outlines, sizes a padded box around them,
// keeps the box inside the chart canvas, and paints box and text through a
// Canvas.
//
// # Quick Start
//
//	face := text.DefaultSource().Face(12)
//	style := ggchart.DefaultPanelStyle(face)
//
//	plot := ggchart.NewPlot(640, 480,
//	    ggchart.Rect{X: 40, Y: 20, W: 580, H: 420},
//	    ggchart.Range{Min: 0, Max: 100}, ggchart.Range{Min: -1, Max: 1})
//
//	panel := ggchart.NewTextPanel("max: 0.93\nat t=42", 42, 0.93, false)
//	panel.Init(plot)
//
//	dst := surface.NewImageSurface(640, 480)
//	if err := panel.Paint(dst, style); err != nil {
//	    log.Fatal(err)
//	}
//
// # Collaborators
//
// The panel does not own chart state. It reads pixel dimensions and axis
// transforms from a Chart, colors, font and padding from a PanelStyle passed
// to every call, and draws through a Canvas. Implementations of Canvas live in
// the surface (CPU raster), recording (command capture) and
// integration/ggcanvas (github.com/gogpu/gg) packages.
//
// # Coordinate System
//
// Screen coordinates follow image conventions:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Data coordinates are converted through Chart.XToScreen and
// Chart.YToScreen.
package ggchart
