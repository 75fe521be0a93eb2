// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

// Extend controls how a pattern is sampled outside its natural area:
// outside the surface for surface patterns, outside [0, 1] for gradients.
// Values match cairo_extend_t.
type Extend int

const (
	// ExtendNone leaves pixels outside the pattern transparent.
	ExtendNone Extend = iota
	// ExtendRepeat tiles the pattern.
	ExtendRepeat
	// ExtendReflect tiles the pattern, mirroring every other tile.
	ExtendReflect
	// ExtendPad repeats the nearest edge value.
	ExtendPad
)

// String returns the lowercase name of the extend mode.
func (e Extend) String() string {
	switch e {
	case ExtendNone:
		return "none"
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	case ExtendPad:
		return "pad"
	default:
		return unknownName
	}
}

// Filter selects the resampling used when a surface pattern is painted.
// Values match cairo_filter_t.
type Filter int

const (
	FilterFast Filter = iota
	FilterGood
	FilterBest
	FilterNearest
	FilterBilinear
	FilterGaussian
)

// String returns the lowercase name of the filter.
func (f Filter) String() string {
	switch f {
	case FilterFast:
		return "fast"
	case FilterGood:
		return "good"
	case FilterBest:
		return "best"
	case FilterNearest:
		return "nearest"
	case FilterBilinear:
		return "bilinear"
	case FilterGaussian:
		return "gaussian"
	default:
		return unknownName
	}
}

// PatternType identifies the kind of a pattern object.
// Values match cairo_pattern_type_t.
type PatternType int

const (
	PatternTypeSolid PatternType = iota
	PatternTypeSurface
	PatternTypeLinear
	PatternTypeRadial
)

// String returns the lowercase name of the pattern type.
func (t PatternType) String() string {
	switch t {
	case PatternTypeSolid:
		return "solid"
	case PatternTypeSurface:
		return "surface"
	case PatternTypeLinear:
		return "linear"
	case PatternTypeRadial:
		return "radial"
	default:
		return unknownName
	}
}

// IsGradient reports whether patterns of this type accept color stops.
func (t PatternType) IsGradient() bool {
	return t == PatternTypeLinear || t == PatternTypeRadial
}

const unknownName = "unknown"
