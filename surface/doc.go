// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides a CPU drawing surface for chart annotations.
//
// ImageSurface implements ggchart.Canvas on an *image.RGBA. Paths are
// rasterized with golang.org/x/image/vector, which computes exact area
// coverage per pixel. When the antialiasing hint is off, coverage is
// thresholded at 50% so every pixel is either fully painted or untouched.
//
// Example:
//
//	s := surface.NewImageSurface(640, 480)
//	s.Clear(color.White)
//	if err := panel.Paint(s, style); err != nil {
//	    return err
//	}
//	return s.SavePNG("chart.png")
package surface
