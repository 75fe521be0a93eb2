// Package paint provides reference-counted paint sources for 2D rendering:
// solid colors, surface-backed patterns, and linear and radial gradients.
//
// # Overview
//
// Every pattern value is a small handle to a shared pattern object owned
// by the rendering layer. Handles are cheap to pass around. Sharing and
// lifetime are explicit:
//
//   - Ref returns a second handle to the same object (one more reference).
//   - Assign makes a handle refer to another handle's object, releasing
//     whatever it held before.
//   - Release drops the handle's reference. The object is freed when the
//     last handle is released.
//
// Each handle owns at most one reference, so calling Release twice on the
// same handle is safe. A plain Go copy (b := a, or a handle passed by
// value) borrows the reference instead of owning one: release only the
// handles you got from a constructor, Ref or Assign. After the object is
// freed, borrowed copies fail with StatusNullPointer.
//
// # Quick Start
//
//	import "github.com/gogpu/paint"
//
//	g, err := paint.NewLinearGradient(0, 0, 256, 0)
//	if err != nil {
//		return err
//	}
//	defer g.Release()
//
//	if err := g.AddColorStopRGB(0, 1, 0, 0); err != nil {
//		return err
//	}
//	if err := g.AddColorStopRGB(1, 0, 0, 1); err != nil {
//		return err
//	}
//
//	s, err := paint.NewImageSurface(256, 64)
//	if err != nil {
//		return err
//	}
//	defer s.Release()
//
//	if err := s.Paint(g); err != nil {
//		return err
//	}
//	return s.WritePNG("gradient.png")
//
// # Errors
//
// Every operation that reaches the rendering layer checks the object's
// status afterwards. A failure is returned as *Error carrying a Status;
// use errors.Is with a Status constant to test for a specific cause:
//
//	if errors.Is(err, paint.StatusInvalidMatrix) { ... }
//
// Errors are sticky: once a pattern has failed, later operations on it
// return the same status.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// A pattern's matrix maps user space into pattern space.
package paint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
