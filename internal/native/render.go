// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Paint composites src over dst inside clip using the over operator,
// with src alpha scaled by alpha. An empty clip means the whole surface.
//
// Errors are reported by status: a nil argument gives StatusNullPointer,
// an object in an error state gives its status, and a finished dst gives
// StatusSurfaceFinished.
func Paint(dst *Surface, src *Pattern, alpha float64, clip image.Rectangle) Status {
	if dst == nil || src == nil {
		return StatusNullPointer
	}
	if st := dst.Status(); st != StatusSuccess {
		return st
	}
	if st := src.Status(); st != StatusSuccess {
		return st
	}
	if dst.finished {
		return StatusSurfaceFinished
	}

	img := dst.img
	area := img.Bounds()
	if !clip.Empty() {
		area = area.Intersect(clip)
	}
	alpha = clampUnit(alpha)
	if area.Empty() || alpha == 0 {
		return StatusSuccess
	}

	if src.kind == PatternTypeSurface && src.extend == ExtendNone {
		paintTransformed(img, area, src, alpha)
		return StatusSuccess
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			s := src.sample(float64(x)+0.5, float64(y)+0.5)
			if alpha < 1 {
				s = s.scale(alpha)
			}
			if s.a == 0 {
				continue
			}
			d := premulFromRGBA(img.RGBAAt(x, y))
			img.SetRGBA(x, y, over(s, d).rgba())
		}
	}
	return StatusSuccess
}

// paintTransformed draws an unextended surface pattern with the
// interpolator matching its filter.
func paintTransformed(dst *image.RGBA, area image.Rectangle, src *Pattern, alpha float64) {
	srcImg := src.surface.Image()
	if srcImg == nil || srcImg.Bounds().Empty() {
		return
	}
	// The pattern matrix maps user space to surface space; draw wants the
	// opposite direction. SetMatrix guarantees invertibility.
	inv, _ := src.matrix.Invert()
	s2d := f64.Aff3{inv.XX, inv.XY, inv.X0, inv.YX, inv.YY, inv.Y0}

	var opts *xdraw.Options
	if alpha < 1 {
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha16{A: uint16(alpha*0xffff + 0.5)}),
		}
	}

	target, ok := dst.SubImage(area).(*image.RGBA)
	if !ok {
		return
	}
	interpolator(src.filter).Transform(target, s2d, srcImg, srcImg.Bounds(), xdraw.Over, opts)
}

// interpolator maps a filter to its x/image/draw resampler.
func interpolator(f Filter) xdraw.Interpolator {
	switch f {
	case FilterFast, FilterNearest:
		return xdraw.NearestNeighbor
	case FilterBilinear:
		return xdraw.BiLinear
	case FilterBest, FilterGaussian:
		return xdraw.CatmullRom
	default:
		return xdraw.ApproxBiLinear
	}
}
