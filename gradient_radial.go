package paint

import "github.com/gogpu/paint/internal/native"

// RadialGradient is a handle to a gradient between two circles. Offset 0
// lies on the start circle and offset 1 on the end circle; intermediate
// offsets lie on circles interpolated between them.
//
// Example:
//
//	// Spotlight: bright centre fading out at radius 50.
//	g, err := paint.NewRadialGradient(50, 50, 0, 50, 50, 50)
//	if err != nil {
//		return err
//	}
//	defer g.Release()
//	_ = g.AddColorStopRGBA(0, 1, 1, 1, 1)
//	_ = g.AddColorStopRGBA(1, 1, 1, 1, 0)
type RadialGradient struct {
	Gradient
}

// NewRadialGradient creates a radial gradient from the circle
// (cx0, cy0, radius0) to the circle (cx1, cy1, radius1).
func NewRadialGradient(cx0, cy0, radius0, cx1, cy1, radius1 float64) (RadialGradient, error) {
	g := RadialGradient{Gradient{wrapPattern(native.CreateRadial(cx0, cy0, radius0, cx1, cy1, radius1), true)}}
	if err := checkObjectStatus(g); err != nil {
		g.Release()
		return RadialGradient{}, err
	}
	return g, nil
}

// Ref returns a new handle to the same gradient.
func (g RadialGradient) Ref() RadialGradient {
	return RadialGradient{g.Gradient.Ref()}
}

// Assign makes g refer to src's gradient. See Pattern.Assign.
func (g *RadialGradient) Assign(src RadialGradient) {
	g.Gradient.Assign(src.Gradient)
}

// Circles returns the start and end circles.
func (g RadialGradient) Circles() (start, end Circle, err error) {
	c0, c1, st := g.h.RadialCircles()
	if err = checkStatus(st); err != nil {
		return Circle{}, Circle{}, err
	}
	if err = checkObjectStatus(g); err != nil {
		return Circle{}, Circle{}, err
	}
	return c0, c1, nil
}
