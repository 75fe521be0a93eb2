package paint

import "github.com/gogpu/paint/internal/native"

// Paint composites src over the whole surface (or the clip set with
// WithClip). Each pixel centre is mapped through the source's matrix into
// pattern space and sampled there.
//
// Painting fails with the source's status if the source is in an error
// state, with StatusSurfaceFinished if s was finished, and with
// StatusNullPointer if either handle is empty.
func (s ImageSurface) Paint(src Source, opts ...PaintOption) error {
	o := defaultPaintOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var h *native.Pattern
	if src != nil {
		h = src.nativePattern()
	}
	return checkStatus(native.Paint(s.h, h, o.alpha, o.clip))
}
