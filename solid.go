package paint

import "github.com/gogpu/paint/internal/native"

// SolidPattern is a handle to a single-color pattern.
type SolidPattern struct {
	Pattern
}

// NewSolidRGB creates an opaque solid pattern. Components are nominally
// in [0, 1]; values outside are clamped by the rendering layer.
func NewSolidRGB(r, g, b float64) (SolidPattern, error) {
	h := native.CreateRGB(r, g, b)
	if err := checkStatus(h.Status()); err != nil {
		h.Destroy()
		return SolidPattern{}, err
	}
	return SolidPattern{wrapPattern(h, true)}, nil
}

// NewSolidRGBA creates a translucent solid pattern. Components are
// nominally in [0, 1]; values outside are clamped by the rendering layer.
func NewSolidRGBA(r, g, b, a float64) (SolidPattern, error) {
	h := native.CreateRGBA(r, g, b, a)
	if err := checkStatus(h.Status()); err != nil {
		h.Destroy()
		return SolidPattern{}, err
	}
	return SolidPattern{wrapPattern(h, true)}, nil
}

// Ref returns a new handle to the same pattern.
func (p SolidPattern) Ref() SolidPattern {
	return SolidPattern{p.Pattern.Ref()}
}

// Assign makes p refer to src's pattern. See Pattern.Assign.
func (p *SolidPattern) Assign(src SolidPattern) {
	p.Pattern.Assign(src.Pattern)
}

// RGBA returns the pattern color after clamping.
func (p SolidPattern) RGBA() (Color, error) {
	c, st := p.h.RGBA()
	if err := checkStatus(st); err != nil {
		return Color{}, err
	}
	if err := checkObjectStatus(p); err != nil {
		return Color{}, err
	}
	return c, nil
}
