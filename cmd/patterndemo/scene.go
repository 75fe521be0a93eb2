package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/paint"
)

// Scene is a YAML description of layers painted bottom to top.
//
//	width: 256
//	height: 128
//	background: "#ffffff"
//	layers:
//	  - type: linear
//	    points: [0, 0, 256, 0]
//	    stops:
//	      - {offset: 0, color: "#ff0000"}
//	      - {offset: 1, color: "#0000ff", opacity: 0.5}
type Scene struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Background string  `yaml:"background"`
	Layers     []Layer `yaml:"layers"`

	// dir resolves relative image paths.
	dir string
}

// Layer is one paint source.
type Layer struct {
	Type      string     `yaml:"type"` // solid, linear, radial or surface
	Color     string     `yaml:"color"`
	Opacity   *float64   `yaml:"opacity"`
	Alpha     *float64   `yaml:"alpha"`   // paint alpha for the whole layer
	Points    []float64  `yaml:"points"`  // linear: x0 y0 x1 y1
	Circles   []float64  `yaml:"circles"` // radial: cx0 cy0 r0 cx1 cy1 r1
	Image     string     `yaml:"image"`   // surface
	Stops     []Stop     `yaml:"stops"`
	Extend    string     `yaml:"extend"`
	Filter    string     `yaml:"filter"`
	Transform *Transform `yaml:"transform"`
}

// Stop is a gradient color stop.
type Stop struct {
	Offset  float64  `yaml:"offset"`
	Color   string   `yaml:"color"`
	Opacity *float64 `yaml:"opacity"`
}

// Transform places a pattern in user space. It is applied as scale, then
// rotate (degrees), then translate.
type Transform struct {
	Translate []float64 `yaml:"translate"`
	Scale     []float64 `yaml:"scale"`
	Rotate    float64   `yaml:"rotate"`
}

const (
	defaultWidth  = 512
	defaultHeight = 512
)

// LoadScene reads and decodes a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read scene")
	}
	sc, err := ParseScene(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	sc.dir = filepath.Dir(path)
	return sc, nil
}

// ParseScene decodes a scene from YAML and fills in defaults.
func ParseScene(data []byte) (*Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if sc.Width == 0 {
		sc.Width = defaultWidth
	}
	if sc.Height == 0 {
		sc.Height = defaultHeight
	}
	return &sc, nil
}

// parseColor decodes "#rrggbb" plus an optional opacity.
func parseColor(s string, opacity *float64) (paint.Color, error) {
	if s == "" {
		s = "#000000"
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return paint.Color{}, errors.Wrapf(err, "color %q", s)
	}
	a := 1.0
	if opacity != nil {
		a = *opacity
	}
	return paint.Color{R: c.R, G: c.G, B: c.B, A: a}, nil
}

func parseExtend(s string) (paint.Extend, error) {
	switch strings.ToLower(s) {
	case "none":
		return paint.ExtendNone, nil
	case "repeat":
		return paint.ExtendRepeat, nil
	case "reflect":
		return paint.ExtendReflect, nil
	case "pad":
		return paint.ExtendPad, nil
	}
	return 0, errors.Errorf("unknown extend mode %q", s)
}

func parseFilter(s string) (paint.Filter, error) {
	switch strings.ToLower(s) {
	case "fast":
		return paint.FilterFast, nil
	case "good":
		return paint.FilterGood, nil
	case "best":
		return paint.FilterBest, nil
	case "nearest":
		return paint.FilterNearest, nil
	case "bilinear":
		return paint.FilterBilinear, nil
	case "gaussian":
		return paint.FilterGaussian, nil
	}
	return 0, errors.Errorf("unknown filter %q", s)
}
