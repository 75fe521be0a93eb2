// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import "math"

// sample returns the premultiplied color of p at user-space (x, y).
func (p *Pattern) sample(x, y float64) premul {
	u, v := p.matrix.TransformPoint(x, y)
	switch p.kind {
	case PatternTypeSolid:
		return p.color.premultiply()
	case PatternTypeSurface:
		return p.sampleSurface(u, v)
	default:
		c, ok := p.gradientColor(u, v)
		if !ok {
			return transparent
		}
		return c.premultiply()
	}
}

// sampleSurface samples the pattern surface at pattern-space (u, v),
// which is measured in surface pixels.
func (p *Pattern) sampleSurface(u, v float64) premul {
	switch p.filter {
	case FilterFast, FilterNearest:
		return p.texel(int(math.Floor(u)), int(math.Floor(v)))
	default:
		return p.bilinear(u, v)
	}
}

// bilinear interpolates the four texels around (u, v).
func (p *Pattern) bilinear(u, v float64) premul {
	fx := u - 0.5
	fy := v - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := p.texel(x0, y0)
	c10 := p.texel(x0+1, y0)
	c01 := p.texel(x0, y0+1)
	c11 := p.texel(x0+1, y0+1)

	top := c00.scale(1 - tx).add(c10.scale(tx))
	bottom := c01.scale(1 - tx).add(c11.scale(tx))
	return top.scale(1 - ty).add(bottom.scale(ty))
}

// texel reads one surface pixel after applying the extend mode to the
// integer coordinates.
func (p *Pattern) texel(x, y int) premul {
	img := p.surface.Image()
	if img == nil {
		return transparent
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return transparent
	}

	var ok bool
	if x, ok = extendIndex(x, w, p.extend); !ok {
		return transparent
	}
	if y, ok = extendIndex(y, h, p.extend); !ok {
		return transparent
	}
	return premulFromRGBA(img.RGBAAt(b.Min.X+x, b.Min.Y+y))
}

// extendIndex maps i into [0, n) according to mode.
func extendIndex(i, n int, mode Extend) (int, bool) {
	switch mode {
	case ExtendNone:
		return i, i >= 0 && i < n
	case ExtendRepeat:
		return ((i % n) + n) % n, true
	case ExtendReflect:
		period := 2 * n
		m := ((i % period) + period) % period
		if m >= n {
			m = period - 1 - m
		}
		return m, true
	default:
		if i < 0 {
			return 0, true
		}
		if i >= n {
			return n - 1, true
		}
		return i, true
	}
}
