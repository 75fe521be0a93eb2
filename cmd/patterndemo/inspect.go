package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/gogpu/paint"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect SCENE",
	Short: "Build a scene's patterns and dump their state",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// PatternInfo is the introspected state of one layer.
type PatternInfo struct {
	Type           paint.PatternType
	Status         paint.Status
	ReferenceCount int
	Matrix         paint.Matrix
	Alpha          float64
	Color          *paint.Color
	Stops          []paint.ColorStop
	Points         []paint.Point
	Circles        []paint.Circle
	Extend         *paint.Extend
	Filter         *paint.Filter
	SurfaceSize    *[2]int
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func runInspect(cmd *cobra.Command, args []string) error {
	sc, err := LoadScene(args[0])
	if err != nil {
		return err
	}
	infos, err := sc.Inspect()
	if err != nil {
		return err
	}
	dumper.Fdump(cmd.OutOrStdout(), infos)
	return nil
}

// Inspect builds every layer and reports its state.
func (sc *Scene) Inspect() ([]PatternInfo, error) {
	layers, err := sc.Build()
	if err != nil {
		return nil, err
	}
	defer releaseLayers(layers)

	infos := make([]PatternInfo, 0, len(layers))
	for _, l := range layers {
		info, err := describe(l.pattern)
		if err != nil {
			return nil, err
		}
		info.Alpha = l.alpha
		infos = append(infos, info)
	}
	return infos, nil
}

func describe(p paint.Pattern) (PatternInfo, error) {
	info := PatternInfo{
		Status:         p.Status(),
		ReferenceCount: p.ReferenceCount(),
	}
	var err error
	if info.Type, err = p.Type(); err != nil {
		return info, err
	}
	if info.Matrix, err = p.Matrix(); err != nil {
		return info, err
	}

	if solid, ok := p.AsSolid(); ok {
		defer solid.Release()
		c, err := solid.RGBA()
		if err != nil {
			return info, err
		}
		info.Color = &c
	}
	if sp, ok := p.AsSurface(); ok {
		defer sp.Release()
		e, err := sp.Extend()
		if err != nil {
			return info, err
		}
		f, err := sp.Filter()
		if err != nil {
			return info, err
		}
		surface, err := sp.Surface()
		if err != nil {
			return info, err
		}
		w, h := surface.Size()
		surface.Release()
		info.Extend, info.Filter, info.SurfaceSize = &e, &f, &[2]int{w, h}
	}
	if lg, ok := p.AsLinear(); ok {
		defer lg.Release()
		start, end, err := lg.Points()
		if err != nil {
			return info, err
		}
		info.Points = []paint.Point{start, end}
		if err := describeGradient(&info, lg.Gradient); err != nil {
			return info, err
		}
	}
	if rg, ok := p.AsRadial(); ok {
		defer rg.Release()
		start, end, err := rg.Circles()
		if err != nil {
			return info, err
		}
		info.Circles = []paint.Circle{start, end}
		if err := describeGradient(&info, rg.Gradient); err != nil {
			return info, err
		}
	}
	return info, nil
}

func describeGradient(info *PatternInfo, g paint.Gradient) error {
	stops, err := g.ColorStops()
	if err != nil {
		return err
	}
	e, err := g.Extend()
	if err != nil {
		return err
	}
	info.Stops, info.Extend = stops, &e
	return nil
}
