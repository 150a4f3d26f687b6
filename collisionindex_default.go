package maplabel

import "github.com/gogpu/maplabel/collisionindex"

// defaultCollisionIndex adapts the collisionindex package's reference
// grid to the engine's CollisionIndex interface. NewPlacement uses this
// when the caller does not supply its own (spec.md §1 treats a real
// CollisionIndex's internals as an external collaborator; this is the
// fallback for hosts and tests that don't bring one).
//
// It has no notion of the viewport or its padding band — Transform
// exposes zoom, angle, and posMatrix construction but not screen
// dimensions (spec.md §6) — so Offscreen is always reported false here.
// A host wiring a real viewport-aware CollisionIndex gets the full
// skipFade behavior; this fallback only gets overlap rejection.
type defaultCollisionIndex struct {
	grid   *collisionindex.Grid
	nextID uint64
	keys   map[uint64]CollisionBoxKey
}

func newDefaultCollisionIndex() *defaultCollisionIndex {
	return &defaultCollisionIndex{
		grid: collisionindex.NewGrid(0),
		keys: make(map[uint64]CollisionBoxKey),
	}
}

func toGridBox(a, b Point) collisionindex.Box {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return collisionindex.Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

func fromGridBox(b collisionindex.Box) Box {
	return Box{X1: b.MinX, Y1: b.MinY, X2: b.MaxX, Y2: b.MaxY}
}

func (c *defaultCollisionIndex) PlaceCollisionBox(box Box, allowOverlap bool, textPixelRatio float64, posMatrix Matrix, groupPredicate *int) PlaceBoxResult {
	screen := toGridBox(posMatrix.Project(Point{X: box.X1, Y: box.Y1}), posMatrix.Project(Point{X: box.X2, Y: box.Y2}))
	placed := allowOverlap || !c.grid.AnyOverlap(screen, groupPredicate)
	return PlaceBoxResult{Box: fromGridBox(screen), Placed: placed, Offscreen: false}
}

func (c *defaultCollisionIndex) PlaceCollisionCircles(circles []float64, allowOverlap bool, textPixelRatio float64, posMatrix Matrix, groupPredicate *int) PlaceCirclesResult {
	if len(circles) < 3 {
		return PlaceCirclesResult{Placed: false}
	}

	projected := make([]float64, len(circles))
	placed := true
	for i := 0; i+2 < len(circles); i += 3 {
		cx, cy, r := circles[i], circles[i+1], circles[i+2]
		if r == 0 {
			projected[i], projected[i+1], projected[i+2] = cx, cy, r
			continue
		}
		center := posMatrix.Project(Point{X: cx, Y: cy})
		projected[i], projected[i+1], projected[i+2] = center.X, center.Y, r

		if !allowOverlap {
			screen := collisionindex.Box{MinX: center.X - r, MinY: center.Y - r, MaxX: center.X + r, MaxY: center.Y + r}
			if c.grid.AnyOverlap(screen, groupPredicate) {
				placed = false
			}
		}
	}
	return PlaceCirclesResult{Circles: projected, Placed: placed, Offscreen: false}
}

func (c *defaultCollisionIndex) InsertCollisionBox(box Box, ignorePlacement bool, bucketInstanceID BucketInstanceID, featureIndex int, collisionGroupID int) {
	id := c.nextID
	c.nextID++
	c.grid.Insert(id, collisionindex.Box{MinX: box.X1, MinY: box.Y1, MaxX: box.X2, MaxY: box.Y2}, collisionGroupID, ignorePlacement)
	c.keys[id] = CollisionBoxKey{BucketInstanceID: bucketInstanceID, FeatureIndex: featureIndex, CollisionGroupID: collisionGroupID, IgnorePlacement: ignorePlacement}
}

func (c *defaultCollisionIndex) InsertCollisionCircles(circles []float64, ignorePlacement bool, bucketInstanceID BucketInstanceID, featureIndex int, collisionGroupID int) {
	for i := 0; i+2 < len(circles); i += 3 {
		cx, cy, r := circles[i], circles[i+1], circles[i+2]
		if r == 0 {
			continue
		}
		id := c.nextID
		c.nextID++
		box := collisionindex.Box{MinX: cx - r, MinY: cy - r, MaxX: cx + r, MaxY: cy + r}
		c.grid.Insert(id, box, collisionGroupID, ignorePlacement)
		c.keys[id] = CollisionBoxKey{BucketInstanceID: bucketInstanceID, FeatureIndex: featureIndex, CollisionGroupID: collisionGroupID, IgnorePlacement: ignorePlacement}
	}
}
