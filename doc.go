// Package maplabel implements the symbol placement engine for a tiled
// vector map renderer: the per-frame pass that decides which text labels
// and icon markers are drawn, with what opacity and offset, subject to a
// screen-space collision policy across overlapping symbols from many
// tiles.
//
// # Overview
//
// A host renderer constructs a fresh Placement once per frame, bound to
// its current Transform, then drives it through the pipeline:
//
//	p := maplabel.NewPlacement(transform, fadeDuration, crossSourceCollisions)
//	for _, lt := range visibleLayerTiles {
//	    p.PlaceLayerTile(lt.Layer, lt.Tile, seenCrossTileIDs)
//	}
//	p.Commit(prevPlacement, now)
//	for _, layer := range symbolLayers {
//	    p.UpdateLayerOpacities(layer, tilesForLayer)
//	}
//
// The Placement is then discarded; the next frame builds a fresh one.
//
// # Scope
//
// The tile loader, style/expression evaluation, text shaping, the glyph
// and icon atlases, and the CollisionIndex's own geometric internals are
// external collaborators consumed through the interfaces in types.go —
// this package only orchestrates them. GPU buffer upload mechanics are
// handed off to the gpubuf subpackage's dirty-buffer scheduler rather than
// touched directly.
package maplabel

// Version identifies the placement engine's data-model version, bumped
// whenever the packed opacity or collision-debug vertex row layout changes
// (spec.md §6: "binary-identical in structure to the upstream renderer's
// convention").
const Version = "1.0.0"
