package paint

import "github.com/gogpu/paint/internal/native"

// Matrix is an affine transform with the cairo_matrix_t layout:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// A pattern's matrix maps user space into pattern space, so scaling the
// matrix up shrinks the pattern on screen.
type Matrix = native.Matrix

// Identity returns the identity transformation matrix.
func Identity() Matrix { return native.Identity() }

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix { return native.Translate(x, y) }

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix { return native.Scale(x, y) }

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix { return native.Rotate(angle) }

// Color is a non-premultiplied color with components in [0, 1].
type Color = native.Color

// ColorStop is a color at an offset along a gradient.
type ColorStop = native.ColorStop

// Point is a position in pattern space.
type Point = native.Point

// Circle is a circle in pattern space.
type Circle = native.Circle

// Extend controls how a pattern is sampled outside its natural area.
type Extend = native.Extend

const (
	// ExtendNone leaves pixels outside the pattern transparent.
	// Default for surface patterns.
	ExtendNone = native.ExtendNone
	// ExtendRepeat tiles the pattern.
	ExtendRepeat = native.ExtendRepeat
	// ExtendReflect tiles the pattern, mirroring every other tile.
	ExtendReflect = native.ExtendReflect
	// ExtendPad repeats the nearest edge value. Default for gradients.
	ExtendPad = native.ExtendPad
)

// Filter selects the resampling used when a surface pattern is painted.
type Filter = native.Filter

const (
	// FilterFast is a high-performance filter (nearest neighbor).
	FilterFast = native.FilterFast
	// FilterGood is a reasonable-performance filter. This is the default.
	FilterGood = native.FilterGood
	// FilterBest is the highest-quality available filter.
	FilterBest = native.FilterBest
	// FilterNearest is nearest-neighbor filtering.
	FilterNearest = native.FilterNearest
	// FilterBilinear is linear interpolation in two dimensions.
	FilterBilinear = native.FilterBilinear
	// FilterGaussian is a smooth filter; it is rendered like FilterBest.
	FilterGaussian = native.FilterGaussian
)

// PatternType identifies the kind of a pattern.
type PatternType = native.PatternType

const (
	PatternTypeSolid   = native.PatternTypeSolid
	PatternTypeSurface = native.PatternTypeSurface
	PatternTypeLinear  = native.PatternTypeLinear
	PatternTypeRadial  = native.PatternTypeRadial
)
