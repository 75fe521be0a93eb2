package paint

import (
	"errors"
	"image"
	"image/draw"
	"io/fs"

	"github.com/disintegration/imaging"

	"github.com/gogpu/paint/internal/native"
)

// ImageSurface is a handle to a reference-counted image surface. It is
// both a paint target (see Paint) and a source for SurfacePattern.
//
// Lifetime follows the same rules as Pattern: Ref, Assign and Release.
// Assigning or passing an ImageSurface by value borrows it; only Ref
// adds a reference.
type ImageSurface struct {
	h *native.Surface
}

// wrapSurface makes a handle for h, taking a reference of its own unless
// hasReference says the caller already transferred one.
func wrapSurface(h *native.Surface, hasReference bool) ImageSurface {
	if !hasReference {
		h = h.Reference()
	}
	return ImageSurface{h: h}
}

// NewImageSurface creates a transparent surface. Negative dimensions, or
// dimensions larger than 32767, fail with StatusInvalidSize.
func NewImageSurface(width, height int) (ImageSurface, error) {
	return newImageSurface(native.CreateImageSurface(width, height))
}

// NewImageSurfaceForImage creates a surface drawing directly into img.
// A nil img fails with StatusNullPointer.
func NewImageSurfaceForImage(img *image.RGBA) (ImageSurface, error) {
	return newImageSurface(native.CreateSurfaceForImage(img))
}

// LoadImageSurface decodes an image file (PNG, JPEG, GIF, BMP or TIFF)
// into a new surface. A file that cannot be opened or decoded fails with
// StatusFileNotFound or StatusReadError respectively.
func LoadImageSurface(path string) (ImageSurface, error) {
	src, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ImageSurface{}, &Error{Status: StatusFileNotFound}
		}
		return ImageSurface{}, &Error{Status: StatusReadError}
	}
	rgba := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return NewImageSurfaceForImage(rgba)
}

func newImageSurface(h *native.Surface) (ImageSurface, error) {
	s := wrapSurface(h, true)
	if err := checkObjectStatus(s); err != nil {
		s.Release()
		return ImageSurface{}, err
	}
	return s, nil
}

// Ref returns a new handle to the same surface.
func (s ImageSurface) Ref() ImageSurface {
	return ImageSurface{h: s.h.Reference()}
}

// Assign makes s refer to src's surface, releasing the previous one.
// Assigning a handle of the same surface does nothing.
func (s *ImageSurface) Assign(src ImageSurface) {
	if s.h == src.h {
		return
	}
	if s.h != nil {
		s.h.Destroy()
		s.h = nil
	}
	if src.h == nil {
		return
	}
	s.h = src.h.Reference()
}

// Release drops the handle's reference and empties the handle.
func (s *ImageSurface) Release() {
	if s.h == nil {
		return
	}
	s.h.Destroy()
	s.h = nil
}

// IsNil reports whether the handle holds no surface.
func (s ImageSurface) IsNil() bool {
	return s.h == nil
}

// Status returns the surface's sticky status.
func (s ImageSurface) Status() Status {
	return s.h.Status()
}

// ReferenceCount returns the number of references held on the surface,
// including those held by surface patterns.
func (s ImageSurface) ReferenceCount() int {
	return s.h.ReferenceCount()
}

// Size returns the surface dimensions in pixels.
func (s ImageSurface) Size() (width, height int) {
	return s.h.Size()
}

// Image returns the pixels backing the surface. The image is shared with
// the surface, not copied.
func (s ImageSurface) Image() (*image.RGBA, error) {
	img := s.h.Image()
	if err := checkObjectStatus(s); err != nil {
		return nil, err
	}
	return img, nil
}

// Finish marks the surface as finished. Painting to it afterwards fails
// with StatusSurfaceFinished; it can still be used as a pattern source.
func (s ImageSurface) Finish() error {
	s.h.Finish()
	return checkObjectStatus(s)
}

// WritePNG encodes the surface as a PNG file.
func (s ImageSurface) WritePNG(path string) error {
	img, err := s.Image()
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return &Error{Status: StatusWriteError}
	}
	return nil
}

// handle returns the surface object without adding a reference.
func (s ImageSurface) handle() *native.Surface {
	return s.h
}
