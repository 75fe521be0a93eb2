package paint

import "github.com/gogpu/paint/internal/native"

// SurfacePattern is a handle to a pattern that samples an image surface.
// Pattern space is measured in surface pixels.
type SurfacePattern struct {
	Pattern
}

// NewSurfacePattern creates a pattern sampling surface. The pattern keeps
// its own reference to the surface, so the caller may release surface
// afterwards. An empty surface handle fails with StatusNullPointer; a
// surface in an error state fails with that surface's status.
func NewSurfacePattern(surface ImageSurface) (SurfacePattern, error) {
	p := SurfacePattern{wrapPattern(native.CreateForSurface(surface.handle()), true)}
	if err := checkObjectStatus(p); err != nil {
		p.Release()
		return SurfacePattern{}, err
	}
	return p, nil
}

// Ref returns a new handle to the same pattern.
func (p SurfacePattern) Ref() SurfacePattern {
	return SurfacePattern{p.Pattern.Ref()}
}

// Assign makes p refer to src's pattern. See Pattern.Assign.
func (p *SurfacePattern) Assign(src SurfacePattern) {
	p.Pattern.Assign(src.Pattern)
}

// SetExtend sets how the surface is sampled outside its bounds.
// The default is ExtendNone.
func (p SurfacePattern) SetExtend(e Extend) error {
	p.h.SetExtend(e)
	return checkObjectStatus(p)
}

// Extend returns the extend mode.
func (p SurfacePattern) Extend() (Extend, error) {
	e := p.h.Extend()
	if err := checkObjectStatus(p); err != nil {
		return 0, err
	}
	return e, nil
}

// SetFilter sets the resampling filter. The default is FilterGood.
//
// With ExtendNone the surface is resampled through golang.org/x/image/draw
// interpolators; with the other extend modes texels are read directly,
// nearest for FilterFast and FilterNearest and bilinear otherwise. The two
// agree for nearest filtering and untransformed surfaces, but a scaled or
// rotated surface can differ slightly between extend modes.
func (p SurfacePattern) SetFilter(f Filter) error {
	p.h.SetFilter(f)
	return checkObjectStatus(p)
}

// Filter returns the resampling filter.
func (p SurfacePattern) Filter() (Filter, error) {
	f := p.h.Filter()
	if err := checkObjectStatus(p); err != nil {
		return 0, err
	}
	return f, nil
}

// Surface returns a new handle to the sampled surface. The caller owns
// the returned handle and must Release it.
func (p SurfacePattern) Surface() (ImageSurface, error) {
	h, st := p.h.Surface()
	if err := checkStatus(st); err != nil {
		return ImageSurface{}, err
	}
	if err := checkObjectStatus(p); err != nil {
		return ImageSurface{}, err
	}
	return wrapSurface(h, false), nil
}
