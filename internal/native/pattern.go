// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import "math"

// Point is a position in pattern space.
type Point struct {
	X, Y float64
}

// Circle is a circle in pattern space.
type Circle struct {
	X, Y, R float64
}

// ColorStop is a color at an offset along a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// Pattern is a reference-counted paint source: a solid color, a surface,
// or a linear or radial gradient.
type Pattern struct {
	refs   refCount
	status Status
	kind   PatternType

	matrix Matrix
	extend Extend
	filter Filter

	color   Color       // solid
	start   Point       // linear
	end     Point       // linear
	inner   Circle      // radial
	outer   Circle      // radial
	stops   []ColorStop // gradients, sorted by offset
	surface *Surface    // surface
}

var errorPatterns [StatusLast]*Pattern

func init() {
	for s := StatusNoMemory; s < StatusLast; s++ {
		p := &Pattern{
			status: s,
			kind:   PatternTypeSolid,
			matrix: Identity(),
			extend: ExtendPad,
			filter: FilterGood,
		}
		p.refs.setStatic()
		errorPatterns[s] = p
	}
}

// patternInError returns the static pattern carrying status s.
func patternInError(s Status) *Pattern {
	if !s.Valid() || s == StatusSuccess {
		s = StatusInvalidStatus
	}
	return errorPatterns[s]
}

func newPattern(kind PatternType) *Pattern {
	if !allocate() {
		return patternInError(StatusNoMemory)
	}
	p := &Pattern{
		kind:   kind,
		matrix: Identity(),
		extend: ExtendPad,
		filter: FilterGood,
	}
	if kind == PatternTypeSurface {
		p.extend = ExtendNone
	}
	p.refs.init()
	Logger().Debug("native: pattern created", "type", kind.String())
	return p
}

// CreateRGB creates an opaque solid pattern. Components are clamped to
// [0, 1].
func CreateRGB(r, g, b float64) *Pattern {
	return CreateRGBA(r, g, b, 1)
}

// CreateRGBA creates a solid pattern. Components are clamped to [0, 1].
func CreateRGBA(r, g, b, a float64) *Pattern {
	p := newPattern(PatternTypeSolid)
	if p.status != StatusSuccess {
		return p
	}
	p.color = Color{R: r, G: g, B: b, A: a}.clamped()
	return p
}

// CreateForSurface creates a pattern sampling surface. The pattern holds
// its own reference to surface. A nil surface yields a pattern in
// StatusNullPointer; a surface in an error state yields a pattern in the
// same state.
func CreateForSurface(surface *Surface) *Pattern {
	if surface == nil {
		return patternInError(StatusNullPointer)
	}
	if st := surface.Status(); st != StatusSuccess {
		return patternInError(st)
	}
	p := newPattern(PatternTypeSurface)
	if p.status != StatusSuccess {
		return p
	}
	p.surface = surface.Reference()
	return p
}

// CreateLinear creates a linear gradient along the line (x0, y0)-(x1, y1).
func CreateLinear(x0, y0, x1, y1 float64) *Pattern {
	p := newPattern(PatternTypeLinear)
	if p.status != StatusSuccess {
		return p
	}
	p.start = Point{X: x0, Y: y0}
	p.end = Point{X: x1, Y: y1}
	return p
}

// CreateRadial creates a radial gradient between the start circle
// (cx0, cy0, radius0) and the end circle (cx1, cy1, radius1).
// Negative radii are taken by absolute value.
func CreateRadial(cx0, cy0, radius0, cx1, cy1, radius1 float64) *Pattern {
	p := newPattern(PatternTypeRadial)
	if p.status != StatusSuccess {
		return p
	}
	p.inner = Circle{X: cx0, Y: cy0, R: math.Abs(radius0)}
	p.outer = Circle{X: cx1, Y: cy1, R: math.Abs(radius1)}
	return p
}

// Reference adds a reference to p and returns p. A pattern whose last
// reference is gone cannot be revived; the StatusNullPointer error
// pattern is returned instead.
func (p *Pattern) Reference() *Pattern {
	if p == nil {
		return nil
	}
	if !p.refs.inc() {
		return patternInError(StatusNullPointer)
	}
	return p
}

// Destroy drops one reference. The pattern is finalized, and its surface
// reference dropped, when the last reference goes away.
func (p *Pattern) Destroy() {
	if p == nil {
		return
	}
	if !p.refs.dec() {
		return
	}
	if p.surface != nil {
		p.surface.Destroy()
		p.surface = nil
	}
	p.stops = nil
	release()
	Logger().Debug("native: pattern finalized", "type", p.kind.String())
}

// ReferenceCount returns the number of outstanding references, or 0 for
// nil and static error patterns.
func (p *Pattern) ReferenceCount() int {
	if p == nil {
		return 0
	}
	return p.refs.load()
}

// Status returns the sticky status of p. A nil or finalized pattern
// reports StatusNullPointer.
func (p *Pattern) Status() Status {
	if !p.live() {
		return StatusNullPointer
	}
	return p.status
}

// live reports whether p is non-nil and still referenced.
func (p *Pattern) live() bool {
	return p != nil && !p.refs.finalized()
}

// Type returns the pattern kind.
func (p *Pattern) Type() PatternType {
	if p == nil {
		return PatternTypeSolid
	}
	return p.kind
}

// setError moves p into an error state. The first error wins.
func (p *Pattern) setError(s Status) {
	if p.status == StatusSuccess {
		p.status = s
	}
}

// usable reports whether setters may modify p.
func (p *Pattern) usable() bool {
	return p.live() && p.status == StatusSuccess && !p.refs.isStatic()
}

// SetMatrix sets the user-to-pattern space transform. A matrix that
// cannot be inverted puts p into StatusInvalidMatrix.
func (p *Pattern) SetMatrix(m Matrix) {
	if !p.usable() {
		return
	}
	if _, ok := m.Invert(); !ok {
		p.setError(StatusInvalidMatrix)
		return
	}
	p.matrix = m
}

// Matrix returns the user-to-pattern space transform.
func (p *Pattern) Matrix() Matrix {
	if p == nil {
		return Identity()
	}
	return p.matrix
}

// SetExtend sets how p is sampled outside its natural area.
func (p *Pattern) SetExtend(e Extend) {
	if !p.usable() {
		return
	}
	p.extend = e
}

// Extend returns the extend mode.
func (p *Pattern) Extend() Extend {
	if p == nil {
		return ExtendNone
	}
	return p.extend
}

// SetFilter sets the resampling filter. Surfaces painted with ExtendNone
// are resampled by x/image/draw (Fast and Nearest: NearestNeighbor, Good:
// ApproxBiLinear, Bilinear: BiLinear, Best and Gaussian: CatmullRom);
// the other extend modes sample texels directly, with Fast and Nearest
// picking the nearest texel and every other filter interpolating
// bilinearly. Both paths agree on untransformed and nearest-filtered
// surfaces; scaled or rotated surfaces may differ slightly between them.
func (p *Pattern) SetFilter(f Filter) {
	if !p.usable() {
		return
	}
	p.filter = f
}

// Filter returns the resampling filter.
func (p *Pattern) Filter() Filter {
	if p == nil {
		return FilterGood
	}
	return p.filter
}

// AddColorStopRGB adds an opaque color stop. See AddColorStopRGBA.
func (p *Pattern) AddColorStopRGB(offset, r, g, b float64) {
	p.AddColorStopRGBA(offset, r, g, b, 1)
}

// AddColorStopRGBA adds a color stop to a gradient. The offset and
// components are clamped to [0, 1]. A stop whose offset equals existing
// stops is placed after them. Calling it on a non-gradient pattern puts p
// into StatusPatternTypeMismatch.
func (p *Pattern) AddColorStopRGBA(offset, r, g, b, a float64) {
	if !p.usable() {
		return
	}
	if !p.kind.IsGradient() {
		p.setError(StatusPatternTypeMismatch)
		return
	}

	stop := ColorStop{
		Offset: clampUnit(offset),
		Color:  Color{R: r, G: g, B: b, A: a}.clamped(),
	}

	i := len(p.stops)
	for j, s := range p.stops {
		if stop.Offset < s.Offset {
			i = j
			break
		}
	}
	p.stops = append(p.stops, ColorStop{})
	copy(p.stops[i+1:], p.stops[i:])
	p.stops[i] = stop
}

// ColorStopCount returns the number of stops of a gradient.
func (p *Pattern) ColorStopCount() (int, Status) {
	if !p.live() {
		return 0, StatusNullPointer
	}
	if !p.kind.IsGradient() {
		return 0, StatusPatternTypeMismatch
	}
	return len(p.stops), StatusSuccess
}

// ColorStop returns the i-th stop of a gradient in offset order.
func (p *Pattern) ColorStop(i int) (ColorStop, Status) {
	if !p.live() {
		return ColorStop{}, StatusNullPointer
	}
	if !p.kind.IsGradient() {
		return ColorStop{}, StatusPatternTypeMismatch
	}
	if i < 0 || i >= len(p.stops) {
		return ColorStop{}, StatusInvalidIndex
	}
	return p.stops[i], StatusSuccess
}

// RGBA returns the color of a solid pattern.
func (p *Pattern) RGBA() (Color, Status) {
	if !p.live() {
		return Color{}, StatusNullPointer
	}
	if p.kind != PatternTypeSolid {
		return Color{}, StatusPatternTypeMismatch
	}
	return p.color, StatusSuccess
}

// LinearPoints returns the axis endpoints of a linear gradient.
func (p *Pattern) LinearPoints() (start, end Point, s Status) {
	if !p.live() {
		return Point{}, Point{}, StatusNullPointer
	}
	if p.kind != PatternTypeLinear {
		return Point{}, Point{}, StatusPatternTypeMismatch
	}
	return p.start, p.end, StatusSuccess
}

// RadialCircles returns the start and end circles of a radial gradient.
func (p *Pattern) RadialCircles() (inner, outer Circle, s Status) {
	if !p.live() {
		return Circle{}, Circle{}, StatusNullPointer
	}
	if p.kind != PatternTypeRadial {
		return Circle{}, Circle{}, StatusPatternTypeMismatch
	}
	return p.inner, p.outer, StatusSuccess
}

// Surface returns the surface of a surface pattern without adding a
// reference.
func (p *Pattern) Surface() (*Surface, Status) {
	if !p.live() {
		return nil, StatusNullPointer
	}
	if p.kind != PatternTypeSurface {
		return nil, StatusPatternTypeMismatch
	}
	return p.surface, StatusSuccess
}
