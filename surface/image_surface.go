// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/text"
)

// ImageSurface is a CPU-based ggchart.Canvas that renders to an *image.RGBA.
//
// The zero state after creation is: black paint, one pixel solid stroke,
// identity transform, antialiasing off.
//
// ImageSurface is not safe for concurrent use.
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	paint     color.Color
	stroke    ggchart.Stroke
	transform ggchart.Matrix
	antialias bool

	// ras is reused across fills
	ras *vector.Rasterizer

	// mask receives coverage when antialiasing is off
	mask *image.Alpha
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	return &ImageSurface{
		width:     bounds.Dx(),
		height:    bounds.Dy(),
		img:       img,
		paint:     color.Black,
		stroke:    ggchart.SolidStroke,
		transform: ggchart.Identity(),
		ras:       vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int { return s.width }

// Height returns the surface height.
func (s *ImageSurface) Height() int { return s.height }

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Clear fills the whole surface with c, replacing existing pixels.
func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// EncodePNG writes the surface as a PNG image.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// SavePNG writes the surface to a PNG file.
func (s *ImageSurface) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // output path is chosen by the caller
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return s.EncodePNG(f)
}

// SetColor implements ggchart.Canvas.
func (s *ImageSurface) SetColor(c color.Color) { s.paint = c }

// SetStroke implements ggchart.Canvas.
func (s *ImageSurface) SetStroke(st ggchart.Stroke) { s.stroke = st }

// Transform implements ggchart.Canvas.
func (s *ImageSurface) Transform() ggchart.Matrix { return s.transform }

// SetTransform implements ggchart.Canvas.
func (s *ImageSurface) SetTransform(m ggchart.Matrix) { s.transform = m }

// Translate implements ggchart.Canvas.
func (s *ImageSurface) Translate(dx, dy float64) {
	s.transform = s.transform.Multiply(ggchart.Translate(dx, dy))
}

// Antialias implements ggchart.Canvas.
func (s *ImageSurface) Antialias() bool { return s.antialias }

// SetAntialias implements ggchart.Canvas.
func (s *ImageSurface) SetAntialias(on bool) { s.antialias = on }

// FillRect implements ggchart.Canvas.
func (s *ImageSurface) FillRect(r ggchart.Rect) error {
	s.begin()
	s.rect(r.X, r.Y, r.MaxX(), r.MaxY(), false)
	return s.draw()
}

// StrokeRect implements ggchart.Canvas. The stroke is centered on the
// rectangle edges and drawn as the ring between an outer and an inner
// rectangle wound in opposite directions. With antialiasing off the ring
// edges are snapped to whole pixels.
func (s *ImageSurface) StrokeRect(r ggchart.Rect) error {
	hw := s.stroke.Width / 2
	if hw <= 0 {
		return nil
	}
	if !s.antialias {
		return s.strokeRectAliased(r, hw)
	}

	s.begin()
	s.rect(r.X-hw, r.Y-hw, r.MaxX()+hw, r.MaxY()+hw, false)
	if r.W > 2*hw && r.H > 2*hw {
		s.rect(r.X+hw, r.Y+hw, r.MaxX()-hw, r.MaxY()-hw, true)
	}
	return s.draw()
}

// strokeRectAliased snaps the ring edges to the pixel grid in device space,
// so a one pixel stroke on integer edges covers exactly one pixel row.
// The transform is assumed to be a translation.
func (s *ImageSurface) strokeRectAliased(r ggchart.Rect, hw float64) error {
	x0, y0 := s.transform.TransformPoint(r.X, r.Y)
	x1, y1 := s.transform.TransformPoint(r.MaxX(), r.MaxY())
	x0, x1 = math.Min(x0, x1), math.Max(x0, x1)
	y0, y1 = math.Min(y0, y1), math.Max(y0, y1)

	orig := s.transform
	s.transform = ggchart.Identity()
	defer func() { s.transform = orig }()

	s.begin()
	s.rect(snap(x0-hw), snap(y0-hw), snap(x1+hw), snap(y1+hw), false)
	ix0, iy0, ix1, iy1 := snap(x0+hw), snap(y0+hw), snap(x1-hw), snap(y1-hw)
	if ix1 > ix0 && iy1 > iy0 {
		s.rect(ix0, iy0, ix1, iy1, true)
	}
	return s.draw()
}

// snap rounds a device coordinate to the nearest pixel edge, halves up.
func snap(v float64) float64 {
	return math.Floor(v + 0.5)
}

// FillOutline implements ggchart.Canvas.
func (s *ImageSurface) FillOutline(o *text.Outline) error {
	if o.IsEmpty() {
		return nil
	}

	s.begin()
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case text.OpMoveTo:
			if open {
				s.ras.ClosePath()
			}
			s.ras.MoveTo(s.pt(seg.Points[0]))
			open = true
		case text.OpLineTo:
			s.ras.LineTo(s.pt(seg.Points[0]))
		case text.OpQuadTo:
			bx, by := s.pt(seg.Points[0])
			cx, cy := s.pt(seg.Points[1])
			s.ras.QuadTo(bx, by, cx, cy)
		case text.OpCubicTo:
			bx, by := s.pt(seg.Points[0])
			cx, cy := s.pt(seg.Points[1])
			dx, dy := s.pt(seg.Points[2])
			s.ras.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		s.ras.ClosePath()
	}
	return s.draw()
}

// begin resets the rasterizer for a new path.
func (s *ImageSurface) begin() {
	s.ras.Reset(s.width, s.height)
	s.ras.DrawOp = draw.Over
}

// rect appends a closed rectangle contour in device space. reverse flips
// the winding direction.
func (s *ImageSurface) rect(x0, y0, x1, y1 float64, reverse bool) {
	corners := [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	if reverse {
		corners[1], corners[3] = corners[3], corners[1]
	}
	s.ras.MoveTo(s.xy(corners[0][0], corners[0][1]))
	for _, c := range corners[1:] {
		s.ras.LineTo(s.xy(c[0], c[1]))
	}
	s.ras.ClosePath()
}

// draw composites the accumulated path with the current paint.
func (s *ImageSurface) draw() error {
	if s.paint == nil {
		return fmt.Errorf("surface: no paint color set")
	}
	src := image.NewUniform(s.paint)
	bounds := s.img.Bounds()

	if s.antialias {
		s.ras.Draw(s.img, bounds, src, image.Point{})
		return nil
	}

	if s.mask == nil {
		s.mask = image.NewAlpha(image.Rect(0, 0, s.width, s.height))
	} else {
		clear(s.mask.Pix)
	}
	s.ras.DrawOp = draw.Src
	s.ras.Draw(s.mask, s.mask.Bounds(), image.Opaque, image.Point{})
	for i, a := range s.mask.Pix {
		if a >= 0x80 {
			s.mask.Pix[i] = 0xff
		} else {
			s.mask.Pix[i] = 0
		}
	}
	draw.DrawMask(s.img, bounds, src, image.Point{}, s.mask, image.Point{}, draw.Over)
	return nil
}

func (s *ImageSurface) pt(p text.Point) (float32, float32) {
	return s.xy(p.X, p.Y)
}

func (s *ImageSurface) xy(x, y float64) (float32, float32) {
	tx, ty := s.transform.TransformPoint(x, y)
	return float32(tx), float32(ty)
}

var _ ggchart.Canvas = (*ImageSurface)(nil)
