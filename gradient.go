package paint

// Gradient is the part shared by LinearGradient and RadialGradient: a
// pattern whose color is interpolated between color stops.
//
// Gradients are created with NewLinearGradient or NewRadialGradient; a
// Gradient value is obtained by using the embedded field of either.
type Gradient struct {
	Pattern
}

// Ref returns a new handle to the same gradient.
func (g Gradient) Ref() Gradient {
	return Gradient{g.Pattern.Ref()}
}

// Assign makes g refer to src's gradient. See Pattern.Assign.
func (g *Gradient) Assign(src Gradient) {
	g.Pattern.Assign(src.Pattern)
}

// AddColorStopRGB adds an opaque color stop at offset.
// See AddColorStopRGBA.
func (g Gradient) AddColorStopRGB(offset, red, green, blue float64) error {
	g.h.AddColorStopRGB(offset, red, green, blue)
	return checkObjectStatus(g)
}

// AddColorStopRGBA adds a color stop at offset.
//
// Offsets are nominally in [0, 1] along the gradient; the rendering layer
// clamps them, and the color components, to that range. Stops accumulate
// in offset order and cannot be removed. Several stops may share an
// offset; they are kept in the order they were added, which produces a
// hard color edge.
func (g Gradient) AddColorStopRGBA(offset, red, green, blue, alpha float64) error {
	g.h.AddColorStopRGBA(offset, red, green, blue, alpha)
	return checkObjectStatus(g)
}

// ColorStops returns a copy of the gradient's stops in offset order.
func (g Gradient) ColorStops() ([]ColorStop, error) {
	n, st := g.h.ColorStopCount()
	if err := checkStatus(st); err != nil {
		return nil, err
	}
	stops := make([]ColorStop, 0, n)
	for i := 0; i < n; i++ {
		s, st := g.h.ColorStop(i)
		if err := checkStatus(st); err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	if err := checkObjectStatus(g); err != nil {
		return nil, err
	}
	return stops, nil
}

// SetExtend sets how the gradient continues outside [0, 1].
// The default is ExtendPad.
func (g Gradient) SetExtend(e Extend) error {
	g.h.SetExtend(e)
	return checkObjectStatus(g)
}

// Extend returns the extend mode.
func (g Gradient) Extend() (Extend, error) {
	e := g.h.Extend()
	if err := checkObjectStatus(g); err != nil {
		return 0, err
	}
	return e, nil
}
