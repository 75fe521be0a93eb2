package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/paint"
)

var renderCmd = &cobra.Command{
	Use:   "render SCENE",
	Short: "Paint a scene and save it as PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "out.png", "Output PNG file")
	renderCmd.Flags().Int("width", 0, "Override the scene width")
	renderCmd.Flags().Int("height", 0, "Override the scene height")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")

	sc, err := LoadScene(args[0])
	if err != nil {
		return err
	}
	if width > 0 {
		sc.Width = width
	}
	if height > 0 {
		sc.Height = height
	}

	surface, err := sc.Render()
	if err != nil {
		return err
	}
	defer surface.Release()

	if err := surface.WritePNG(output); err != nil {
		return errors.Wrapf(err, "save %s", output)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d layers)\n", output, sc.Width, sc.Height, len(sc.Layers))
	return nil
}

// Render paints the background and every layer onto a new surface.
func (sc *Scene) Render() (paint.ImageSurface, error) {
	surface, err := paint.NewImageSurface(sc.Width, sc.Height)
	if err != nil {
		return surface, errors.Wrap(err, "create surface")
	}

	if sc.Background != "" {
		c, err := parseColor(sc.Background, nil)
		if err != nil {
			surface.Release()
			return surface, errors.Wrap(err, "background")
		}
		bg, err := paint.NewSolidRGB(c.R, c.G, c.B)
		if err != nil {
			surface.Release()
			return surface, errors.Wrap(err, "background")
		}
		err = surface.Paint(bg)
		bg.Release()
		if err != nil {
			surface.Release()
			return surface, errors.Wrap(err, "background")
		}
	}

	layers, err := sc.Build()
	if err != nil {
		surface.Release()
		return surface, err
	}
	defer releaseLayers(layers)

	for i, l := range layers {
		if err := surface.Paint(l.pattern, paint.WithAlpha(l.alpha)); err != nil {
			surface.Release()
			return surface, errors.Wrapf(err, "paint layer %d", i)
		}
	}
	return surface, nil
}
