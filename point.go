package maplabel

import "math"

// Point is a 2D position or displacement, used throughout the placement
// engine for tile-unit coordinates (symbol anchors, collision box corners)
// and em-unit coordinates (dynamic anchor offsets).
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the Euclidean length of the vector from the origin.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// IsNegInf reports whether either coordinate is the vertex-shader culling
// sentinel used by hideUnplacedJustifications and shiftPlacedSymbols
// (spec.md §4.4, §4.6) to push an offscreen-cull shift far outside any
// viewport.
func (p Point) IsNegInf() bool {
	return math.IsInf(p.X, -1) || math.IsInf(p.Y, -1)
}

// NegInfPoint is the sentinel shift value for "hidden via culling", used
// wherever the spec calls for shiftX = -Infinity.
var NegInfPoint = Point{X: math.Inf(-1), Y: math.Inf(-1)}
