package maplabel

import "math"

// Box is an axis-aligned collision box in tile or screen-pixel units,
// depending on the caller. It mirrors the CollisionIndex's own box
// representation (spec.md §6) closely enough that the engine never needs
// to convert between its own geometry and the index's.
type Box struct {
	X1, Y1 float64 // top-left
	X2, Y2 float64 // bottom-right
}

// Translate returns a copy of the box shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{X1: b.X1 + dx, Y1: b.Y1 + dy, X2: b.X2 + dx, Y2: b.Y2 + dy}
}

// Width returns the box width.
func (b Box) Width() float64 { return b.X2 - b.X1 }

// Height returns the box height.
func (b Box) Height() float64 { return b.Y2 - b.Y1 }

// Overlaps reports whether two boxes intersect, touching edges excluded.
func (b Box) Overlaps(o Box) bool {
	return b.X1 < o.X2 && b.X2 > o.X1 && b.Y1 < o.Y2 && b.Y2 > o.Y1
}

// radialLeg is h = r/sqrt(2), the leg length of the right isoceles triangle
// used to split a radial offset evenly across both axes for a diagonal
// anchor (spec.md §4.2).
func radialLeg(r float64) float64 {
	return r / math.Sqrt2
}
