// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"image"
	"image/color"
	"testing"
)

func TestPaintSolid(t *testing.T) {
	checkLeaks(t)

	dst := CreateImageSurface(4, 4)
	defer dst.Destroy()
	src := CreateRGB(1, 0, 0)
	defer src.Destroy()

	if st := Paint(dst, src, 1, image.Rectangle{}); st != StatusSuccess {
		t.Fatalf("Paint() = %v", st)
	}
	want := color.RGBA{R: 255, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := dst.Image().RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPaintAlphaAndClip(t *testing.T) {
	checkLeaks(t)

	dst := CreateImageSurface(4, 4)
	defer dst.Destroy()
	src := CreateRGB(0, 0, 1)
	defer src.Destroy()

	if st := Paint(dst, src, 0.5, image.Rect(0, 0, 2, 4)); st != StatusSuccess {
		t.Fatalf("Paint() = %v", st)
	}
	if got := dst.Image().RGBAAt(0, 0); got != (color.RGBA{B: 128, A: 128}) {
		t.Errorf("pixel inside clip = %v, want half blue", got)
	}
	if got := dst.Image().RGBAAt(3, 0); got != (color.RGBA{}) {
		t.Errorf("pixel outside clip = %v, want transparent", got)
	}
}

func TestPaintErrors(t *testing.T) {
	checkLeaks(t)

	dst := CreateImageSurface(2, 2)
	defer dst.Destroy()
	src := CreateRGB(0, 0, 0)
	defer src.Destroy()

	if st := Paint(nil, src, 1, image.Rectangle{}); st != StatusNullPointer {
		t.Errorf("Paint(nil dst) = %v, want null pointer", st)
	}
	if st := Paint(dst, nil, 1, image.Rectangle{}); st != StatusNullPointer {
		t.Errorf("Paint(nil src) = %v, want null pointer", st)
	}

	bad := CreateRGB(0, 0, 0)
	defer bad.Destroy()
	bad.SetMatrix(Matrix{})
	if st := Paint(dst, bad, 1, image.Rectangle{}); st != StatusInvalidMatrix {
		t.Errorf("Paint(bad src) = %v, want invalid matrix", st)
	}

	dst.Finish()
	if st := Paint(dst, src, 1, image.Rectangle{}); st != StatusSurfaceFinished {
		t.Errorf("Paint(finished dst) = %v, want surface finished", st)
	}
}

// checker returns a 2x2 surface with red on the diagonal and blue off it.
func checker(t *testing.T) *Surface {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 1, red)
	img.SetRGBA(1, 0, blue)
	img.SetRGBA(0, 1, blue)
	s := CreateSurfaceForImage(img)
	if s.Status() != StatusSuccess {
		t.Fatalf("CreateSurfaceForImage status = %v", s.Status())
	}
	return s
}

func TestPaintSurfaceExtend(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	tests := []struct {
		name   string
		extend Extend
		at     image.Point
		want   color.RGBA
	}{
		{"none inside", ExtendNone, image.Pt(1, 0), blue},
		{"none outside", ExtendNone, image.Pt(3, 3), color.RGBA{}},
		{"repeat", ExtendRepeat, image.Pt(2, 2), red},
		{"repeat shifted", ExtendRepeat, image.Pt(3, 2), blue},
		{"reflect", ExtendReflect, image.Pt(2, 2), red},
		{"reflect mirrored", ExtendReflect, image.Pt(2, 0), blue},
		{"pad", ExtendPad, image.Pt(3, 3), red},
		{"pad row", ExtendPad, image.Pt(3, 0), blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkLeaks(t)

			src := checker(t)
			p := CreateForSurface(src)
			src.Destroy()
			defer p.Destroy()
			p.SetFilter(FilterNearest)
			p.SetExtend(tt.extend)

			dst := CreateImageSurface(4, 4)
			defer dst.Destroy()
			if st := Paint(dst, p, 1, image.Rectangle{}); st != StatusSuccess {
				t.Fatalf("Paint() = %v", st)
			}
			if got := dst.Image().RGBAAt(tt.at.X, tt.at.Y); got != tt.want {
				t.Errorf("pixel %v = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestPaintSurfaceMatrix(t *testing.T) {
	checkLeaks(t)

	src := checker(t)
	defer src.Destroy()
	p := CreateForSurface(src)
	defer p.Destroy()
	p.SetFilter(FilterNearest)
	p.SetExtend(ExtendRepeat)
	// Sample the surface at half resolution: each texel covers 2x2 pixels.
	p.SetMatrix(Scale(0.5, 0.5))

	dst := CreateImageSurface(4, 4)
	defer dst.Destroy()
	if st := Paint(dst, p, 1, image.Rectangle{}); st != StatusSuccess {
		t.Fatalf("Paint() = %v", st)
	}
	if got := dst.Image().RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (1, 1) = %v, want red", got)
	}
	if got := dst.Image().RGBAAt(2, 1); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel (2, 1) = %v, want blue", got)
	}
}

func TestPaintLinearGradient(t *testing.T) {
	checkLeaks(t)

	g := CreateLinear(0, 0, 8, 0)
	defer g.Destroy()
	g.AddColorStopRGB(0, 1, 0, 0)
	g.AddColorStopRGB(1, 0, 0, 1)

	dst := CreateImageSurface(8, 1)
	defer dst.Destroy()
	if st := Paint(dst, g, 1, image.Rectangle{}); st != StatusSuccess {
		t.Fatalf("Paint() = %v", st)
	}
	left := dst.Image().RGBAAt(0, 0)
	right := dst.Image().RGBAAt(7, 0)
	if left.R <= left.B || right.B <= right.R {
		t.Errorf("gradient ends = %v .. %v, want red to blue", left, right)
	}
	if left.A != 255 || right.A != 255 {
		t.Errorf("gradient alpha = %d, %d; want opaque", left.A, right.A)
	}
}

func TestInterpolatorForFilter(t *testing.T) {
	if interpolator(FilterNearest) == nil || interpolator(FilterGaussian) == nil || interpolator(Filter(99)) == nil {
		t.Error("interpolator returned nil")
	}
}

func TestPaintSurfaceFilterMatchesAcrossExtends(t *testing.T) {
	for _, f := range []Filter{FilterFast, FilterNearest, FilterGood} {
		t.Run(f.String(), func(t *testing.T) {
			checkLeaks(t)

			render := func(e Extend) *Surface {
				src := checker(t)
				p := CreateForSurface(src)
				src.Destroy()
				defer p.Destroy()
				p.SetFilter(f)
				p.SetExtend(e)

				dst := CreateImageSurface(2, 2)
				if st := Paint(dst, p, 1, image.Rectangle{}); st != StatusSuccess {
					t.Fatalf("Paint() = %v", st)
				}
				return dst
			}

			unextended := render(ExtendNone)
			defer unextended.Destroy()
			padded := render(ExtendPad)
			defer padded.Destroy()

			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					a := unextended.Image().RGBAAt(x, y)
					b := padded.Image().RGBAAt(x, y)
					if a != b {
						t.Errorf("pixel (%d,%d): extend none %v, extend pad %v", x, y, a, b)
					}
				}
			}
		})
	}
}
