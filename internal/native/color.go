// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import "image/color"

// Color is a non-premultiplied sRGB color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// clampUnit restricts x to [0, 1]. NaN maps to 0.
func clampUnit(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func (c Color) clamped() Color {
	return Color{R: clampUnit(c.R), G: clampUnit(c.G), B: clampUnit(c.B), A: clampUnit(c.A)}
}

// premul is a premultiplied color with float components in [0, 1].
type premul struct {
	r, g, b, a float64
}

var transparent = premul{}

func (c Color) premultiply() premul {
	return premul{r: c.R * c.A, g: c.G * c.A, b: c.B * c.A, a: c.A}
}

func (p premul) scale(k float64) premul {
	return premul{r: p.r * k, g: p.g * k, b: p.b * k, a: p.a * k}
}

func (p premul) add(q premul) premul {
	return premul{r: p.r + q.r, g: p.g + q.g, b: p.b + q.b, a: p.a + q.a}
}

// premulFromRGBA converts a stored image.RGBA pixel, which is already
// premultiplied.
func premulFromRGBA(c color.RGBA) premul {
	return premul{
		r: float64(c.R) / 255,
		g: float64(c.G) / 255,
		b: float64(c.B) / 255,
		a: float64(c.A) / 255,
	}
}

// over composites src over dst.
func over(src, dst premul) premul {
	return src.add(dst.scale(1 - src.a))
}

func (p premul) rgba() color.RGBA {
	return color.RGBA{R: to8(p.r), G: to8(p.g), B: to8(p.b), A: to8(p.a)}
}

func to8(v float64) uint8 {
	return uint8(clampUnit(v)*255 + 0.5)
}
