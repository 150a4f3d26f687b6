// Package collisionindex is a reference screen-space spatial acceptor for
// the placement engine's CollisionIndex interface. Hosts with a real
// renderer are expected to bring their own (spec.md §1 calls the
// CollisionIndex's internals orthogonal); this package exists so the
// engine and its tests have a working implementation without one.
//
// The box field names and Insert/overlap-query shape are grounded on
// bmharper-flatbush-go's Box{MinX,MinY,MaxX,MaxY} and Add/Search API, but
// the structure itself is a plain uniform grid rather than a static
// R-tree: flatbush builds its tree once via Finish() and is read-only
// afterward, which does not fit a placement pass that inserts one box at
// a time and immediately wants overlap queries against everything
// inserted so far in the same pass.
package collisionindex

import "math"

// Box is an axis-aligned box in whatever 2D space the caller queries in
// (screen pixels, in the reference defaultCollisionIndex wiring).
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Overlaps reports whether two boxes intersect, touching edges excluded.
func (b Box) Overlaps(o Box) bool {
	return b.MinX < o.MaxX && b.MaxX > o.MinX && b.MinY < o.MaxY && b.MaxY > o.MinY
}

type cellKey struct{ x, y int }

// Grid is an incrementally-built uniform grid over axis-aligned boxes.
// Each inserted box is referenced from every cell it overlaps; queries
// scan only the cells the query box touches.
type Grid struct {
	cellSize float64
	cells    map[cellKey][]uint64
	boxes    map[uint64]Box
	groups   map[uint64]int
	ignore   map[uint64]bool
}

// NewGrid constructs an empty grid. cellSize should be on the order of a
// typical collision box's size; a non-positive value falls back to a
// reasonable default for tile-pixel-scale geometry.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = 256
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]uint64),
		boxes:    make(map[uint64]Box),
		groups:   make(map[uint64]int),
		ignore:   make(map[uint64]bool),
	}
}

func (g *Grid) cellRange(b Box) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.MinX / g.cellSize))
	y0 = int(math.Floor(b.MinY / g.cellSize))
	x1 = int(math.Floor(b.MaxX / g.cellSize))
	y1 = int(math.Floor(b.MaxY / g.cellSize))
	return
}

// Insert adds box under id, tagged with a collision group and an
// ignore-placement flag. An ignore-placement entry is recorded for
// AnyOverlap's bookkeeping callers but never itself counts as an
// obstruction (spec.md §4.3 "Ignore-placement entries do not themselves
// block future queries").
func (g *Grid) Insert(id uint64, box Box, groupID int, ignorePlacement bool) {
	g.boxes[id] = box
	g.groups[id] = groupID
	g.ignore[id] = ignorePlacement

	x0, y0, x1, y1 := g.cellRange(box)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			key := cellKey{x, y}
			g.cells[key] = append(g.cells[key], id)
		}
	}
}

// AnyOverlap reports whether box overlaps any non-ignore-placement entry
// whose group passes groupFilter (nil matches every group).
func (g *Grid) AnyOverlap(box Box, groupFilter *int) bool {
	x0, y0, x1, y1 := g.cellRange(box)
	var visited map[uint64]bool
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for _, id := range g.cells[cellKey{x, y}] {
				if visited == nil {
					visited = make(map[uint64]bool)
				}
				if visited[id] {
					continue
				}
				visited[id] = true

				if g.ignore[id] {
					continue
				}
				if groupFilter != nil && g.groups[id] != *groupFilter {
					continue
				}
				if g.boxes[id].Overlaps(box) {
					return true
				}
			}
		}
	}
	return false
}
