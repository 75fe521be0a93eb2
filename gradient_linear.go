package paint

import "github.com/gogpu/paint/internal/native"

// LinearGradient is a handle to a gradient along a line. Offset 0 is at
// the start point and offset 1 at the end point; colors are constant
// along lines perpendicular to the axis.
//
// Example:
//
//	g, err := paint.NewLinearGradient(0, 0, 100, 0)
//	if err != nil {
//		return err
//	}
//	defer g.Release()
//	_ = g.AddColorStopRGB(0, 1, 0, 0)
//	_ = g.AddColorStopRGB(1, 0, 0, 1)
type LinearGradient struct {
	Gradient
}

// NewLinearGradient creates a linear gradient along (x0, y0)-(x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) (LinearGradient, error) {
	g := LinearGradient{Gradient{wrapPattern(native.CreateLinear(x0, y0, x1, y1), true)}}
	if err := checkObjectStatus(g); err != nil {
		g.Release()
		return LinearGradient{}, err
	}
	return g, nil
}

// Ref returns a new handle to the same gradient.
func (g LinearGradient) Ref() LinearGradient {
	return LinearGradient{g.Gradient.Ref()}
}

// Assign makes g refer to src's gradient. See Pattern.Assign.
func (g *LinearGradient) Assign(src LinearGradient) {
	g.Gradient.Assign(src.Gradient)
}

// Points returns the start and end of the gradient axis.
func (g LinearGradient) Points() (start, end Point, err error) {
	p0, p1, st := g.h.LinearPoints()
	if err = checkStatus(st); err != nil {
		return Point{}, Point{}, err
	}
	if err = checkObjectStatus(g); err != nil {
		return Point{}, Point{}, err
	}
	return p0, p1, nil
}
