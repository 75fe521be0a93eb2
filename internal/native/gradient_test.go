// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"math"
	"testing"
)

const gradientEpsilon = 0.01

func colorsClose(c1, c2 Color) bool {
	return math.Abs(c1.R-c2.R) < gradientEpsilon &&
		math.Abs(c1.G-c2.G) < gradientEpsilon &&
		math.Abs(c1.B-c2.B) < gradientEpsilon &&
		math.Abs(c1.A-c2.A) < gradientEpsilon
}

func TestApplyExtend(t *testing.T) {
	tests := []struct {
		name   string
		t      float64
		mode   Extend
		want   float64
		wantOK bool
	}{
		{"pad negative", -0.5, ExtendPad, 0, true},
		{"pad middle", 0.5, ExtendPad, 0.5, true},
		{"pad over", 1.5, ExtendPad, 1, true},

		{"repeat negative", -0.25, ExtendRepeat, 0.75, true},
		{"repeat one", 1, ExtendRepeat, 0, true},
		{"repeat 2.5", 2.5, ExtendRepeat, 0.5, true},

		{"reflect negative", -0.25, ExtendReflect, 0.25, true},
		{"reflect one", 1, ExtendReflect, 1, true},
		{"reflect 1.25", 1.25, ExtendReflect, 0.75, true},
		{"reflect 2.25", 2.25, ExtendReflect, 0.25, true},
		{"reflect 3.25", 3.25, ExtendReflect, 0.75, true},
		{"reflect huge", 1e19, ExtendReflect, 0, true},
		{"reflect huge negative", -1e19, ExtendReflect, 0, true},

		{"none inside", 0.3, ExtendNone, 0.3, true},
		{"none edge", 1, ExtendNone, 1, true},
		{"none below", -0.01, ExtendNone, 0, false},
		{"none above", 1.01, ExtendNone, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := applyExtend(tt.t, tt.mode)
			if ok != tt.wantOK {
				t.Fatalf("applyExtend(%v, %v) ok = %v, want %v", tt.t, tt.mode, ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 0.001 {
				t.Errorf("applyExtend(%v, %v) = %v, want %v", tt.t, tt.mode, got, tt.want)
			}
		})
	}
}

func TestColorAt(t *testing.T) {
	red := Color{R: 1, A: 1}
	blue := Color{B: 1, A: 1}
	green := Color{G: 1, A: 1}

	tests := []struct {
		name  string
		stops []ColorStop
		t     float64
		want  Color
	}{
		{"no stops", nil, 0.5, Color{}},
		{"single stop", []ColorStop{{0.3, red}}, 0.9, red},
		{"at start", []ColorStop{{0, red}, {1, blue}}, 0, red},
		{"at end", []ColorStop{{0, red}, {1, blue}}, 1, blue},
		{"before first", []ColorStop{{0.4, red}, {1, blue}}, 0.1, red},
		{"after last", []ColorStop{{0, red}, {0.6, blue}}, 0.9, blue},
		{"hard edge", []ColorStop{{0, red}, {0.5, red}, {0.5, green}, {1, green}}, 0.5, green},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorAt(tt.stops, tt.t)
			if !colorsClose(got, tt.want) {
				t.Errorf("colorAt(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestInterpolateLinearLight(t *testing.T) {
	black := Color{A: 1}
	white := Color{R: 1, G: 1, B: 1, A: 0}

	mid := interpolate(black, white, 0.5)
	// Mixing in linear light brightens the sRGB midpoint above 0.5.
	if mid.R <= 0.5 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("interpolate midpoint = %+v, want equal channels above 0.5", mid)
	}
	if math.Abs(mid.A-0.5) > 1e-9 {
		t.Errorf("interpolate alpha = %v, want 0.5", mid.A)
	}
}

func TestLinearGradientColor(t *testing.T) {
	checkLeaks(t)

	g := CreateLinear(0, 0, 10, 0)
	defer g.Destroy()
	g.AddColorStopRGB(0, 1, 0, 0)
	g.AddColorStopRGB(1, 0, 0, 1)

	if c, ok := g.gradientColor(0, 5); !ok || !colorsClose(c, Color{R: 1, A: 1}) {
		t.Errorf("color at start = %+v, %v; want red", c, ok)
	}
	if c, ok := g.gradientColor(10, -5); !ok || !colorsClose(c, Color{B: 1, A: 1}) {
		t.Errorf("color at end = %+v, %v; want blue", c, ok)
	}
	if c, ok := g.gradientColor(20, 0); !ok || !colorsClose(c, Color{B: 1, A: 1}) {
		t.Errorf("padded color past end = %+v, %v; want blue", c, ok)
	}

	g.SetExtend(ExtendNone)
	if _, ok := g.gradientColor(20, 0); ok {
		t.Error("ExtendNone should leave points past the end transparent")
	}
}

func TestLinearGradientDegenerate(t *testing.T) {
	checkLeaks(t)

	g := CreateLinear(5, 5, 5, 5)
	defer g.Destroy()
	g.AddColorStopRGB(0, 1, 0, 0)
	g.AddColorStopRGB(1, 0, 0, 1)

	if c, ok := g.gradientColor(0, 0); !ok || !colorsClose(c, Color{B: 1, A: 1}) {
		t.Errorf("degenerate pad = %+v, %v; want last stop", c, ok)
	}
	g.SetExtend(ExtendRepeat)
	if c, ok := g.gradientColor(0, 0); !ok || !colorsClose(c, Color{R: 0.5, B: 0.5, A: 1}) {
		t.Errorf("degenerate repeat = %+v, %v; want average", c, ok)
	}
}

func TestRadialT(t *testing.T) {
	checkLeaks(t)

	tests := []struct {
		name   string
		p      *Pattern
		x, y   float64
		want   float64
		wantOK bool
	}{
		{"concentric centre", CreateRadial(0, 0, 0, 0, 0, 10), 0, 0, 0, true},
		{"concentric half", CreateRadial(0, 0, 0, 0, 0, 10), 5, 0, 0.5, true},
		{"concentric edge", CreateRadial(0, 0, 0, 0, 0, 10), 0, 10, 1, true},
		{"concentric outside", CreateRadial(0, 0, 0, 0, 0, 10), 20, 0, 2, true},
		{"ring", CreateRadial(0, 0, 10, 0, 0, 20), 15, 0, 0.5, true},
		{"equal radii shifted", CreateRadial(0, 0, 5, 10, 0, 5), 10, 0, 1.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer tt.p.Destroy()
			got, ok := tt.p.radialT(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("radialT(%v, %v) ok = %v, want %v", tt.x, tt.y, ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("radialT(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRadialExtendNone(t *testing.T) {
	checkLeaks(t)

	g := CreateRadial(0, 0, 0, 0, 0, 10)
	defer g.Destroy()
	g.AddColorStopRGB(0, 1, 1, 1)
	g.AddColorStopRGB(1, 0, 0, 0)
	g.SetExtend(ExtendNone)

	if _, ok := g.gradientColor(20, 0); ok {
		t.Error("point outside the end circle should be transparent with ExtendNone")
	}
	if _, ok := g.gradientColor(3, 4); !ok {
		t.Error("point inside the end circle should be painted")
	}
}

func TestGradientWithoutStopsIsTransparent(t *testing.T) {
	checkLeaks(t)

	g := CreateLinear(0, 0, 10, 0)
	defer g.Destroy()
	if _, ok := g.gradientColor(5, 0); ok {
		t.Error("gradient without stops should be transparent")
	}
}
