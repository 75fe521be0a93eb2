package paint

import "image"

// PaintOption configures a single ImageSurface.Paint call.
//
// Example:
//
//	// Paint at half opacity into the top-left quadrant only.
//	err := s.Paint(g, paint.WithAlpha(0.5), paint.WithClip(image.Rect(0, 0, 128, 128)))
type PaintOption func(*paintOptions)

// paintOptions holds optional configuration for painting.
type paintOptions struct {
	alpha float64
	clip  image.Rectangle
}

// defaultPaintOptions returns the default paint options.
func defaultPaintOptions() paintOptions {
	return paintOptions{
		alpha: 1,
		clip:  image.Rectangle{}, // whole surface
	}
}

// WithAlpha scales the source's alpha by a, clamped to [0, 1].
func WithAlpha(a float64) PaintOption {
	return func(o *paintOptions) {
		o.alpha = a
	}
}

// WithClip restricts painting to r, in surface pixel coordinates.
// An empty rectangle means the whole surface.
func WithClip(r image.Rectangle) PaintOption {
	return func(o *paintOptions) {
		o.clip = r
	}
}
