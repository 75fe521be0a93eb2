package main

import (
	"math"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/gogpu/paint"
)

// builtLayer is a pattern ready to paint. The caller releases it.
type builtLayer struct {
	pattern paint.Pattern
	alpha   float64
}

// Build turns every layer into a pattern. On failure the patterns built
// so far are released.
func (sc *Scene) Build() ([]builtLayer, error) {
	layers := make([]builtLayer, 0, len(sc.Layers))
	for i, l := range sc.Layers {
		p, err := sc.buildPattern(l)
		if err != nil {
			releaseLayers(layers)
			return nil, errors.Wrapf(err, "layer %d (%s)", i, l.Type)
		}
		alpha := 1.0
		if l.Alpha != nil {
			alpha = *l.Alpha
		}
		layers = append(layers, builtLayer{pattern: p, alpha: alpha})
	}
	return layers, nil
}

func releaseLayers(layers []builtLayer) {
	for i := range layers {
		layers[i].pattern.Release()
	}
}

// buildPattern returns an owned base handle for l.
func (sc *Scene) buildPattern(l Layer) (paint.Pattern, error) {
	var p paint.Pattern
	switch l.Type {
	case "solid", "":
		c, err := parseColor(l.Color, l.Opacity)
		if err != nil {
			return p, err
		}
		solid, err := paint.NewSolidRGBA(c.R, c.G, c.B, c.A)
		if err != nil {
			return p, err
		}
		p.Assign(solid.Pattern)
		solid.Release()

	case "linear":
		if len(l.Points) != 4 {
			return p, errors.Errorf("linear needs 4 points values, got %d", len(l.Points))
		}
		g, err := paint.NewLinearGradient(l.Points[0], l.Points[1], l.Points[2], l.Points[3])
		if err != nil {
			return p, err
		}
		p = paint.PatternOf(g)
		g.Release()
		lg, _ := p.AsLinear()
		err = applyGradient(lg.Gradient, l)
		lg.Release()
		if err != nil {
			p.Release()
			return p, err
		}

	case "radial":
		if len(l.Circles) != 6 {
			return p, errors.Errorf("radial needs 6 circles values, got %d", len(l.Circles))
		}
		c := l.Circles
		g, err := paint.NewRadialGradient(c[0], c[1], c[2], c[3], c[4], c[5])
		if err != nil {
			return p, err
		}
		p = paint.PatternOf(g)
		g.Release()
		rg, _ := p.AsRadial()
		err = applyGradient(rg.Gradient, l)
		rg.Release()
		if err != nil {
			p.Release()
			return p, err
		}

	case "surface":
		sp, err := sc.buildSurfacePattern(l)
		if err != nil {
			return p, err
		}
		p = paint.PatternOf(sp)
		sp.Release()

	default:
		return p, errors.Errorf("unknown layer type %q", l.Type)
	}

	if l.Transform != nil {
		if err := p.SetMatrix(l.Transform.matrix()); err != nil {
			p.Release()
			return p, errors.Wrap(err, "transform")
		}
	}
	return p, nil
}

func (sc *Scene) buildSurfacePattern(l Layer) (paint.SurfacePattern, error) {
	path := l.Image
	if path == "" {
		return paint.SurfacePattern{}, errors.New("surface layer needs an image")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(sc.dir, path)
	}
	surface, err := paint.LoadImageSurface(path)
	if err != nil {
		return paint.SurfacePattern{}, errors.Wrapf(err, "load %s", path)
	}
	defer surface.Release()

	sp, err := paint.NewSurfacePattern(surface)
	if err != nil {
		return sp, err
	}
	if l.Extend != "" {
		e, err := parseExtend(l.Extend)
		if err == nil {
			err = sp.SetExtend(e)
		}
		if err != nil {
			sp.Release()
			return sp, err
		}
	}
	if l.Filter != "" {
		f, err := parseFilter(l.Filter)
		if err == nil {
			err = sp.SetFilter(f)
		}
		if err != nil {
			sp.Release()
			return sp, err
		}
	}
	return sp, nil
}

func applyGradient(g paint.Gradient, l Layer) error {
	for i, s := range l.Stops {
		c, err := parseColor(s.Color, s.Opacity)
		if err != nil {
			return errors.Wrapf(err, "stop %d", i)
		}
		if err := g.AddColorStopRGBA(s.Offset, c.R, c.G, c.B, c.A); err != nil {
			return errors.Wrapf(err, "stop %d", i)
		}
	}
	if l.Extend != "" {
		e, err := parseExtend(l.Extend)
		if err != nil {
			return err
		}
		return g.SetExtend(e)
	}
	return nil
}

// matrix returns the user-to-pattern matrix. A placement that cannot be
// inverted is passed through as is so SetMatrix reports it.
func (t *Transform) matrix() paint.Matrix {
	m := paint.Identity()
	if len(t.Translate) == 2 {
		m = m.Multiply(paint.Translate(t.Translate[0], t.Translate[1]))
	}
	if t.Rotate != 0 {
		m = m.Multiply(paint.Rotate(t.Rotate * math.Pi / 180))
	}
	if len(t.Scale) == 2 {
		m = m.Multiply(paint.Scale(t.Scale[0], t.Scale[1]))
	}
	inv, ok := m.Invert()
	if !ok {
		return m
	}
	return inv
}
