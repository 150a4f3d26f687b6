package maplabel

import "math"

// Matrix is a 4x4 matrix in column-major order, matching the mat4 type
// the host's Transform.calculatePosMatrix and projection.getLabelPlaneMatrix
// return (spec.md §6). The placement engine never decomposes or inverts
// these matrices itself — it receives them fully formed from the host and
// only needs to multiply points through them when deriving screen-space
// collision boxes. The 2D affine helpers below are standalone utilities;
// the placement pass itself does its anchor-offset math with Point and
// Box.Translate.
type Matrix [16]float64

// IdentityMatrix returns the 4x4 identity matrix.
func IdentityMatrix() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Affine2D is a 2D affine transform in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// for composing scales and translations such as a zoom-to-tile scale with
// a tile-to-pixel translation. The placement pass does not use it: its
// tile-position matrix comes from Transform.CalculatePosMatrix.
type Affine2D struct {
	A, B, C float64
	D, E, F float64
}

// IdentityAffine2D returns the identity transform.
func IdentityAffine2D() Affine2D {
	return Affine2D{A: 1, E: 1}
}

// ScaleAffine2D returns a transform that scales both axes uniformly.
func ScaleAffine2D(s float64) Affine2D {
	return Affine2D{A: s, E: s}
}

// TranslateAffine2D returns a pure translation transform.
func TranslateAffine2D(x, y float64) Affine2D {
	return Affine2D{A: 1, E: 1, C: x, F: y}
}

// Multiply composes two transforms: the result applies `other` first, then m.
func (m Affine2D) Multiply(other Affine2D) Affine2D {
	return Affine2D{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Affine2D) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Project transforms a tile-space point through m as a column-major mat4
// applied to (x, y, 0, 1), perspective-dividing by w. This is the only
// place the engine reaches into a host-supplied posMatrix/label-plane
// matrix (spec.md §6); it never decomposes or inverts one.
func (m Matrix) Project(p Point) Point {
	x := m[0]*p.X + m[4]*p.Y + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[13]
	w := m[3]*p.X + m[7]*p.Y + m[15]
	if w == 0 {
		w = 1
	}
	return Point{X: x / w, Y: y / w}
}

// zoomToTileScale computes 2^(viewZ - tileZ), the scale factor mapping
// tile-local units at tileZ to the view's current zoom level (spec.md
// §4.3 step 2).
func zoomToTileScale(viewZ, tileZ float64) float64 {
	return math.Pow(2, viewZ-tileZ)
}

// tilePixelRatio computes the ratio between one tile pixel and one CSS
// pixel at the current zoom (spec.md GLOSSARY "Tile pixel ratio").
func tilePixelRatio(tileSize, extent float64) float64 {
	return tileSize / extent
}
