// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import "math"

// Matrix is an affine transform laid out like cairo_matrix_t:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
//
// A pattern's matrix maps user space into pattern space, so moving a
// pattern right by 10 means setting Translate(-10, 0).
type Matrix struct {
	XX, YX float64
	XY, YY float64
	X0, Y0 float64
}

// Identity returns the matrix that leaves points unchanged.
func Identity() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// Translate returns a matrix offsetting points by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{XX: 1, YY: 1, X0: tx, Y0: ty}
}

// Scale returns a matrix scaling x by sx and y by sy.
func Scale(sx, sy float64) Matrix {
	return Matrix{XX: sx, YY: sy}
}

// Rotate returns a matrix rotating by radians; positive angles turn
// +x towards +y.
func Rotate(radians float64) Matrix {
	s, c := math.Sincos(radians)
	return Matrix{XX: c, YX: s, XY: -s, YY: c}
}

// Multiply returns the product m*n, which applies n first and then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		XX: m.XX*n.XX + m.XY*n.YX,
		YX: m.YX*n.XX + m.YY*n.YX,
		XY: m.XX*n.XY + m.XY*n.YY,
		YY: m.YX*n.XY + m.YY*n.YY,
		X0: m.XX*n.X0 + m.XY*n.Y0 + m.X0,
		Y0: m.YX*n.X0 + m.YY*n.Y0 + m.Y0,
	}
}

// TransformPoint maps (x, y) through m.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.XX*x + m.XY*y + m.X0, m.YX*x + m.YY*y + m.Y0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Invert returns the inverse of m. ok is false, and the identity is
// returned, when m is singular or holds NaN or infinite entries.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.XX*m.YY - m.XY*m.YX
	if det == 0 || !finite(det) || !finite(m.X0) || !finite(m.Y0) {
		return Identity(), false
	}
	xx, yx := m.YY/det, -m.YX/det
	xy, yy := -m.XY/det, m.XX/det
	return Matrix{
		XX: xx, YX: yx,
		XY: xy, YY: yy,
		X0: -(xx*m.X0 + xy*m.Y0),
		Y0: -(yx*m.X0 + yy*m.Y0),
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation reports whether m only offsets points.
func (m Matrix) IsTranslation() bool {
	return m.XX == 1 && m.YX == 0 && m.XY == 0 && m.YY == 1
}
