// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas lets chart annotations paint onto a gg drawing context.
//
// Canvas adapts a *gg.Context from github.com/gogpu/gg to ggchart.Canvas.
// The adapter keeps its own transform and hands gg device-space paths, so
// the gg context's transform stays untouched and annotation drawing can be
// mixed freely with other gg drawing on the same context.
//
// # Usage
//
//	dc := gg.NewContext(800, 600)
//	dc.ClearWithColor(gg.White)
//	// ... draw the chart with gg ...
//
//	canvas := ggcanvas.New(dc)
//	if err := panel.Paint(canvas, style); err != nil {
//	    return err
//	}
//	return dc.SavePNG("chart.png")
//
// # Antialiasing
//
// gg always renders with analytic antialiasing. The hint is tracked so that
// scoped overrides restore correctly, but it does not change gg output.
package ggcanvas
