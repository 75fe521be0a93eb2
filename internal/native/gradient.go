// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// applyExtend maps a gradient parameter t into [0, 1] according to mode.
// ok is false when t falls outside [0, 1] under ExtendNone.
func applyExtend(t float64, mode Extend) (float64, bool) {
	switch mode {
	case ExtendNone:
		if t < 0 || t > 1 {
			return 0, false
		}
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
	default:
		t = clampUnit(t)
	}
	return t, true
}

// interpolate blends two stop colors. RGB is mixed in linear light, alpha
// linearly.
func interpolate(c1, c2 Color, t float64) Color {
	a := colorful.Color{R: c1.R, G: c1.G, B: c1.B}
	b := colorful.Color{R: c2.R, G: c2.G, B: c2.B}
	m := a.BlendLinearRgb(b, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: c1.A + t*(c2.A-c1.A)}
}

// colorAt evaluates sorted stops at t, which must already be in [0, 1].
func colorAt(stops []ColorStop, t float64) Color {
	switch len(stops) {
	case 0:
		return Color{}
	case 1:
		return stops[0].Color
	}

	// First stop strictly after t; equal offsets resolve to the later stop
	// so that coincident stops form a hard edge.
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset > t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	return interpolate(s1.Color, s2.Color, (t-s1.Offset)/(s2.Offset-s1.Offset))
}

// degenerateColor is used when the gradient geometry has no extent.
// Pad shows the last stop, Repeat and Reflect the average of all stops.
func degenerateColor(stops []ColorStop, mode Extend) (Color, bool) {
	if len(stops) == 0 || mode == ExtendNone {
		return Color{}, false
	}
	if mode != ExtendRepeat && mode != ExtendReflect {
		return stops[len(stops)-1].Color, true
	}
	var sum Color
	for _, s := range stops {
		sum.R += s.Color.R
		sum.G += s.Color.G
		sum.B += s.Color.B
		sum.A += s.Color.A
	}
	n := float64(len(stops))
	return Color{R: sum.R / n, G: sum.G / n, B: sum.B / n, A: sum.A / n}, true
}

// linearT projects (x, y) onto the gradient axis.
// ok is false for a zero-length axis.
func (p *Pattern) linearT(x, y float64) (float64, bool) {
	dx := p.end.X - p.start.X
	dy := p.end.Y - p.start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return 0, false
	}
	return ((x-p.start.X)*dx + (y-p.start.Y)*dy) / lengthSq, true
}

// radialT solves for the parameter of the two-circle gradient at (x, y):
// the largest t whose interpolated circle passes through the point with a
// non-negative radius. Under ExtendNone t must also lie in [0, 1].
func (p *Pattern) radialT(x, y float64) (float64, bool) {
	cdx := p.outer.X - p.inner.X
	cdy := p.outer.Y - p.inner.Y
	dr := p.outer.R - p.inner.R
	pdx := x - p.inner.X
	pdy := y - p.inner.Y

	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + p.inner.R*dr
	c := pdx*pdx + pdy*pdy - p.inner.R*p.inner.R

	valid := func(t float64) bool {
		if p.inner.R+t*dr < 0 {
			return false
		}
		return p.extend != ExtendNone || (t >= 0 && t <= 1)
	}

	if a == 0 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, valid(t)
	}

	discr := b*b - a*c
	if discr < 0 {
		return 0, false
	}
	sq := math.Sqrt(discr)
	t1 := (b + sq) / a
	t2 := (b - sq) / a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if valid(t1) {
		return t1, true
	}
	if valid(t2) {
		return t2, true
	}
	return 0, false
}

// radialDegenerate reports whether both circles coincide.
func (p *Pattern) radialDegenerate() bool {
	return p.inner == p.outer
}

// gradientColor evaluates a gradient at pattern-space (x, y).
func (p *Pattern) gradientColor(x, y float64) (Color, bool) {
	var (
		t  float64
		ok bool
	)
	switch p.kind {
	case PatternTypeLinear:
		t, ok = p.linearT(x, y)
		if !ok {
			return degenerateColor(p.stops, p.extend)
		}
	case PatternTypeRadial:
		if p.radialDegenerate() {
			return degenerateColor(p.stops, p.extend)
		}
		t, ok = p.radialT(x, y)
		if !ok {
			return Color{}, false
		}
	default:
		return Color{}, false
	}

	if len(p.stops) == 0 {
		return Color{}, false
	}
	t, ok = applyExtend(t, p.extend)
	if !ok {
		return Color{}, false
	}
	return colorAt(p.stops, t), true
}
