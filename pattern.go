package paint

import "github.com/gogpu/paint/internal/native"

// Source is implemented by every pattern handle in this package and is
// what ImageSurface.Paint accepts.
// This is a sealed interface - only types in this package implement it.
type Source interface {
	// nativePattern is an unexported method that seals this interface.
	nativePattern() *native.Pattern
}

// Pattern is a handle to a reference-counted paint source.
//
// The zero Pattern holds no object. Methods on it return an *Error with
// StatusNullPointer, except Ref, Assign and Release, which are no-ops.
//
// Plain assignment (b := a) or passing a handle by value borrows the
// caller's reference; it does not add one. Only Ref makes a copy that
// owns a reference and must be released. Once the last owned reference is
// released, borrowed copies report StatusNullPointer and Release on them
// does nothing.
//
// Pattern is the common part of SolidPattern, SurfacePattern,
// LinearGradient and RadialGradient, each of which embeds it.
type Pattern struct {
	h *native.Pattern
}

// wrapPattern makes a handle for h. With hasReference the caller hands
// over a reference it already owns; otherwise h is only lent and the
// handle takes a reference of its own.
func wrapPattern(h *native.Pattern, hasReference bool) Pattern {
	if !hasReference {
		h = h.Reference()
	}
	return Pattern{h: h}
}

// PatternOf returns a new base handle sharing src's pattern.
// The caller owns the returned handle and must Release it.
func PatternOf(src Source) Pattern {
	return wrapPattern(src.nativePattern(), false)
}

func (p Pattern) nativePattern() *native.Pattern {
	return p.h
}

// Ref returns a new handle to the same pattern, adding one reference.
// Both handles must be released.
func (p Pattern) Ref() Pattern {
	return Pattern{h: p.h.Reference()}
}

// Assign makes p refer to src's pattern. The pattern p held before is
// released and a reference to src's pattern is taken. Assigning a handle
// to itself, or to another handle of the same pattern, does nothing.
func (p *Pattern) Assign(src Pattern) {
	if p.h == src.h {
		return
	}
	if p.h != nil {
		p.h.Destroy()
		p.h = nil
	}
	if src.h == nil {
		return
	}
	p.h = src.h.Reference()
}

// Release drops the handle's reference and empties the handle.
// Releasing an empty handle does nothing.
func (p *Pattern) Release() {
	if p.h == nil {
		return
	}
	p.h.Destroy()
	p.h = nil
}

// IsNil reports whether the handle holds no pattern.
func (p Pattern) IsNil() bool {
	return p.h == nil
}

// Status returns the pattern's sticky status.
func (p Pattern) Status() Status {
	return p.h.Status()
}

// ReferenceCount returns the number of references held on the pattern
// by all handles and by anything else using it.
func (p Pattern) ReferenceCount() int {
	return p.h.ReferenceCount()
}

// Type returns the kind of the pattern.
func (p Pattern) Type() (PatternType, error) {
	t := p.h.Type()
	if err := checkObjectStatus(p); err != nil {
		return 0, err
	}
	return t, nil
}

// SetMatrix sets the transform from user space to pattern space.
// A matrix that cannot be inverted fails with StatusInvalidMatrix and
// leaves the pattern in that error state.
func (p Pattern) SetMatrix(m Matrix) error {
	p.h.SetMatrix(m)
	return checkObjectStatus(p)
}

// Matrix returns the transform from user space to pattern space.
func (p Pattern) Matrix() (Matrix, error) {
	m := p.h.Matrix()
	if err := checkObjectStatus(p); err != nil {
		return Matrix{}, err
	}
	return m, nil
}

// AsSolid returns a new solid handle sharing p's pattern, or false if p
// is not a solid pattern.
func (p Pattern) AsSolid() (SolidPattern, bool) {
	if p.h == nil || p.h.Type() != PatternTypeSolid {
		return SolidPattern{}, false
	}
	return SolidPattern{p.Ref()}, true
}

// AsSurface returns a new surface-pattern handle sharing p's pattern, or
// false if p is not a surface pattern.
func (p Pattern) AsSurface() (SurfacePattern, bool) {
	if p.h == nil || p.h.Type() != PatternTypeSurface {
		return SurfacePattern{}, false
	}
	return SurfacePattern{p.Ref()}, true
}

// AsLinear returns a new linear-gradient handle sharing p's pattern, or
// false if p is not a linear gradient.
func (p Pattern) AsLinear() (LinearGradient, bool) {
	if p.h == nil || p.h.Type() != PatternTypeLinear {
		return LinearGradient{}, false
	}
	return LinearGradient{Gradient{p.Ref()}}, true
}

// AsRadial returns a new radial-gradient handle sharing p's pattern, or
// false if p is not a radial gradient.
func (p Pattern) AsRadial() (RadialGradient, bool) {
	if p.h == nil || p.h.Type() != PatternTypeRadial {
		return RadialGradient{}, false
	}
	return RadialGradient{Gradient{p.Ref()}}, true
}
