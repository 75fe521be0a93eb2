// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import "image"

// MaxSurfaceSize is the largest width or height accepted for an image
// surface.
const MaxSurfaceSize = 32767

// Surface is a reference-counted image surface. Its pixels live in an
// *image.RGBA (premultiplied alpha).
type Surface struct {
	refs     refCount
	status   Status
	finished bool
	img      *image.RGBA
}

var errorSurfaces [StatusLast]*Surface

func init() {
	for s := StatusNoMemory; s < StatusLast; s++ {
		es := &Surface{status: s, img: image.NewRGBA(image.Rectangle{})}
		es.refs.setStatic()
		errorSurfaces[s] = es
	}
}

// surfaceInError returns the static surface carrying status s.
func surfaceInError(s Status) *Surface {
	if !s.Valid() || s == StatusSuccess {
		s = StatusInvalidStatus
	}
	return errorSurfaces[s]
}

// CreateImageSurface allocates a transparent surface of the given size.
// Negative or oversized dimensions yield a surface in StatusInvalidSize.
func CreateImageSurface(width, height int) *Surface {
	if width < 0 || height < 0 || width > MaxSurfaceSize || height > MaxSurfaceSize {
		return surfaceInError(StatusInvalidSize)
	}
	return newSurface(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// CreateSurfaceForImage wraps img without copying it. Drawing to the
// surface modifies img.
func CreateSurfaceForImage(img *image.RGBA) *Surface {
	if img == nil {
		return surfaceInError(StatusNullPointer)
	}
	b := img.Bounds()
	if b.Dx() > MaxSurfaceSize || b.Dy() > MaxSurfaceSize {
		return surfaceInError(StatusInvalidSize)
	}
	return newSurface(img)
}

func newSurface(img *image.RGBA) *Surface {
	if !allocate() {
		return surfaceInError(StatusNoMemory)
	}
	s := &Surface{img: img}
	s.refs.init()
	Logger().Debug("native: surface created", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return s
}

// Reference adds a reference to s and returns s, or the StatusNullPointer
// error surface if s was already finalized.
func (s *Surface) Reference() *Surface {
	if s == nil {
		return nil
	}
	if !s.refs.inc() {
		return surfaceInError(StatusNullPointer)
	}
	return s
}

// Destroy drops one reference. The surface is finalized when the last
// reference is dropped.
func (s *Surface) Destroy() {
	if s == nil {
		return
	}
	if !s.refs.dec() {
		return
	}
	s.finished = true
	s.img = nil
	release()
	Logger().Debug("native: surface finalized")
}

// Status returns the sticky status of s. A nil or finalized surface
// reports StatusNullPointer.
func (s *Surface) Status() Status {
	if s == nil || s.refs.finalized() {
		return StatusNullPointer
	}
	return s.status
}

// ReferenceCount returns the number of outstanding references, or 0 for
// nil and static error surfaces.
func (s *Surface) ReferenceCount() int {
	if s == nil {
		return 0
	}
	return s.refs.load()
}

// Finish marks the surface as finished. Later drawing to it fails with
// StatusSurfaceFinished; reading it as a pattern source is still allowed.
func (s *Surface) Finish() {
	if s.Status() != StatusSuccess {
		return
	}
	s.finished = true
}

// Finished reports whether Finish has been called.
func (s *Surface) Finished() bool {
	return s != nil && s.finished
}

// Image returns the backing image. Error surfaces return an empty image.
func (s *Surface) Image() *image.RGBA {
	if s == nil {
		return nil
	}
	return s.img
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height int) {
	if s == nil || s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}
