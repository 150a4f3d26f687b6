package maplabel

import "math"

// extent is the tile coordinate system's unit size (spec.md GLOSSARY).
const extent = 8192

// Placement is one frame's placement pass: a fresh collision index bound
// to a cloned view transform, the decisions placeLayerTile records into
// it, and the animated opacity state Commit produces from them
// (spec.md §3). Construct one per frame, drive it through PlaceLayerTile
// for every visible (layer, tile) pair, Commit it against the previous
// frame's Placement, then read it via UpdateLayerOpacities. Discard it
// afterward — the next frame builds a new one.
type Placement struct {
	transform       Transform
	collisionIndex  CollisionIndex
	fadeDuration    float64
	collisionGroups *CollisionGroups

	placements map[CrossTileID]JointPlacement
	opacities  map[CrossTileID]JointOpacityState

	// dynamicOffsets remembers the per-justification (shiftX, shiftY)
	// snapshot taken the first time updateBucketOpacities processes a
	// dynamically-anchored crossTileID as a non-duplicate, so later calls reuse it
	// instead of drifting if the bucket's placedSymbol rows are
	// re-mutated (spec.md §4.6 step 2).
	dynamicOffsets map[CrossTileID]map[Justification]Point

	retainedQueryData map[BucketInstanceID]*RetainedQueryData

	commitTime              float64
	lastPlacementChangeTime float64
	stale                   bool

	warnOnce  map[string]struct{}
	scheduler *gpuSchedulerHandle
}

// NewPlacement constructs a fresh Placement bound to a cloned view of
// transform, using the package's reference CollisionIndex
// (spec.md §6 "Placement construction"). Use NewPlacementWithIndex to
// supply a host's own CollisionIndex instead.
func NewPlacement(transform Transform, fadeDuration float64, crossSourceCollisions bool) *Placement {
	return NewPlacementWithIndex(transform, newDefaultCollisionIndex(), fadeDuration, crossSourceCollisions)
}

// NewPlacementWithIndex is NewPlacement with an explicit CollisionIndex,
// for hosts with a real screen-space spatial index and for tests that
// want to observe or pre-seed it (spec.md §1 "its internals are
// orthogonal" — this is the seam that keeps them so).
func NewPlacementWithIndex(transform Transform, collisionIndex CollisionIndex, fadeDuration float64, crossSourceCollisions bool) *Placement {
	return &Placement{
		transform:         transform.Clone(),
		collisionIndex:    collisionIndex,
		fadeDuration:       fadeDuration,
		collisionGroups:   NewCollisionGroups(crossSourceCollisions),
		placements:        make(map[CrossTileID]JointPlacement),
		opacities:         make(map[CrossTileID]JointOpacityState),
		dynamicOffsets:    make(map[CrossTileID]map[Justification]Point),
		retainedQueryData: make(map[BucketInstanceID]*RetainedQueryData),
		warnOnce:          make(map[string]struct{}),
	}
}

// labelPlaneMatrix picks the matrix a box is projected through before a
// collision query, per the layer's pitch-alignment option (spec.md §4.3
// step 2). "viewport" alignment keeps text/icons flat against the screen
// regardless of map tilt, which this engine models as bypassing the
// tile's posMatrix entirely; "map" alignment projects through it.
func labelPlaneMatrix(posMatrix Matrix, alignment PitchAlignment) Matrix {
	if alignment == PitchAlignmentViewport {
		return IdentityMatrix()
	}
	return posMatrix
}

// PlaceLayerTile runs the placement pass for one (layer, tile) pair
// (spec.md §4.3). seenCrossTileIDs is shared across every tile in this
// layer's call so a logical label placed once, in its most appropriate
// tile, is not placed again from a less-appropriate overlapping tile.
func (p *Placement) PlaceLayerTile(layer Layer, tile Tile, seenCrossTileIDs map[CrossTileID]bool) {
	bucket := tile.GetBucket(layer)
	if bucket == nil || bucket.PrimaryLayerID() != layer.ID() {
		return
	}

	layout := layer.Layout()
	tileID := tile.TileID()
	posMatrix := p.transform.CalculatePosMatrix(tileID)

	pixelRatio := tilePixelRatio(tile.TileSize(), extent)
	textMatrix := labelPlaneMatrix(posMatrix, layout.TextPitchAlignment)
	iconMatrix := labelPlaneMatrix(posMatrix, layout.IconPitchAlignment)

	collisionGroup := p.collisionGroups.Get(layer.ID())

	if _, ok := p.retainedQueryData[bucket.BucketInstanceID]; !ok {
		p.retainedQueryData[bucket.BucketInstanceID] = &RetainedQueryData{
			BucketInstanceID: bucket.BucketInstanceID,
			TileID:           tileID,
		}
	}

	placed, rejected, skipped := p.placeLayerBucket(bucket, layout, textMatrix, iconMatrix, seenCrossTileIDs, pixelRatio, collisionGroup, tile.HoldingForFade())
	Logger().Debug("placeLayerTile", "layer", layer.ID(), "tile", tileID, "placed", placed, "rejected", rejected, "skipped", skipped)
}

// placeLayerBucket iterates the bucket's symbol instances in their
// stored order, placing each not already seen this frame (spec.md §4.3).
// Earlier instances take precedence over later overlapping ones —
// placement is strictly greedy in this order. It returns counts of
// placed (text or icon accepted), rejected (neither accepted), and
// skipped (already seen or held for fade) instances for the caller's
// debug log line.
func (p *Placement) placeLayerBucket(
	bucket *Bucket,
	layout LayoutProperties,
	textMatrix, iconMatrix Matrix,
	seenCrossTileIDs map[CrossTileID]bool,
	pixelRatio float64,
	collisionGroup CollisionGroup,
	holdingForFade bool,
) (placedCount, rejectedCount, skippedCount int) {
	for _, instance := range bucket.SymbolInstances {
		if seenCrossTileIDs[instance.CrossTileID] {
			skippedCount++
			continue
		}

		if holdingForFade {
			// A parent tile may still place the same logical symbol;
			// don't mark it seen (spec.md §4.3).
			p.placements[instance.CrossTileID] = JointPlacement{}
			skippedCount++
			continue
		}

		assert(instance.CrossTileID != 0, ErrZeroCrossTileID)
		assert(bucket.BucketInstanceID != 0, ErrZeroBucketInstanceID)

		placeText, placeIcon, offscreen := p.placeSymbolInstance(instance, layout, textMatrix, iconMatrix, pixelRatio, collisionGroup, bucket)

		iconWithoutText := layout.TextOptional || !hasAnyGlyphVertices(instance)
		textWithoutIcon := layout.IconOptional || !instance.HasIconVertices

		switch {
		case !iconWithoutText && !textWithoutIcon:
			both := placeText && placeIcon
			placeText, placeIcon = both, both
		case !textWithoutIcon:
			placeText = placeIcon && placeText
		case !iconWithoutText:
			placeIcon = placeIcon && placeText
		}

		alwaysShowText := layout.TextAllowOverlap && (layout.IconAllowOverlap || !bucket.HasIconData || layout.IconOptional)
		alwaysShowIcon := layout.IconAllowOverlap && (layout.TextAllowOverlap || !bucket.HasTextData || layout.TextOptional)

		decision := JointPlacement{
			Text:     placeText || alwaysShowText,
			Icon:     placeIcon || alwaysShowIcon,
			SkipFade: offscreen || bucket.JustReloaded,
		}
		p.placements[instance.CrossTileID] = decision
		seenCrossTileIDs[instance.CrossTileID] = true

		if decision.Text || decision.Icon {
			placedCount++
		} else {
			rejectedCount++
		}
	}

	bucket.JustReloaded = false
	return placedCount, rejectedCount, skippedCount
}

func hasAnyGlyphVertices(instance *SymbolInstance) bool {
	return instance.HasGlyphVertices[JustificationLeft] ||
		instance.HasGlyphVertices[JustificationCenter] ||
		instance.HasGlyphVertices[JustificationRight] ||
		instance.HasVerticalGlyphVerts
}

// placeSymbolInstance resolves one instance's text and icon placement
// decisions and inserts whatever is accepted into the collision index
// (spec.md §4.3 "Text placement branches" / "Icon placement").
func (p *Placement) placeSymbolInstance(
	instance *SymbolInstance,
	layout LayoutProperties,
	textMatrix, iconMatrix Matrix,
	pixelRatio float64,
	collisionGroup CollisionGroup,
	bucket *Bucket,
) (placeText, placeIcon, offscreen bool) {
	offscreen = true

	if instance.TextBox != nil {
		var placed, textOffscreen bool
		if len(layout.DynamicTextAnchor) == 0 {
			result := p.collisionIndex.PlaceCollisionBox(*instance.TextBox, layout.TextAllowOverlap, pixelRatio, textMatrix, collisionGroup.GroupFilter)
			placed, textOffscreen = result.Placed, result.Offscreen
			if placed {
				p.collisionIndex.InsertCollisionBox(result.Box, layout.TextIgnorePlacement, bucket.BucketInstanceID, instance.FeatureIndex, collisionGroup.ID)
			}
		} else {
			placed, textOffscreen = p.placeDynamicText(instance, layout, textMatrix, pixelRatio, collisionGroup, bucket)
		}
		placeText = placed
		offscreen = offscreen && textOffscreen
	}

	if len(instance.TextCircles) > 0 {
		result := p.collisionIndex.PlaceCollisionCircles(instance.TextCircles, layout.TextAllowOverlap, pixelRatio, textMatrix, collisionGroup.GroupFilter)
		if result.Placed {
			p.collisionIndex.InsertCollisionCircles(result.Circles, layout.TextIgnorePlacement, bucket.BucketInstanceID, instance.FeatureIndex, collisionGroup.ID)
		}
		// A known quirk (spec.md §9 open question): allow-overlap text
		// forces placeText true even when no circle was actually
		// placed. Preserved as-is rather than "fixed".
		placeText = result.Placed || layout.TextAllowOverlap
		offscreen = offscreen && result.Offscreen
	}

	if instance.IconBox != nil {
		result := p.collisionIndex.PlaceCollisionBox(*instance.IconBox, layout.IconAllowOverlap, pixelRatio, iconMatrix, collisionGroup.GroupFilter)
		placeIcon = result.Placed
		if result.Placed {
			p.collisionIndex.InsertCollisionBox(result.Box, layout.IconIgnorePlacement, bucket.BucketInstanceID, instance.FeatureIndex, collisionGroup.ID)
		}
		offscreen = offscreen && result.Offscreen
	}

	return placeText, placeIcon, offscreen
}

// placeDynamicText walks the resolved dynamic-text-anchor list in order,
// trying each anchor's shifted box against the collision index until one
// is accepted (spec.md §4.2, §4.3). On acceptance it records the
// per-justification shift onto the bucket's placedSymbol row and hides
// the other justifications' rows via hideUnplacedJustifications.
//
// If no anchor in the list has a reachable placedSymbol slot or none is
// accepted, it returns placeText = false with no static-box fallback
// (spec.md §9 open question, resolved as intended behavior).
func (p *Placement) placeDynamicText(
	instance *SymbolInstance,
	layout LayoutProperties,
	textMatrix Matrix,
	pixelRatio float64,
	collisionGroup CollisionGroup,
	bucket *Bucket,
) (placed, offscreen bool) {
	anchors := resolveAnchorList(layout.DynamicTextAnchor, p.warnOnce)
	hasIcon := instance.IconBox != nil
	textBoxScale := PixelsPerEm(pixelRatio, layout.LayoutTextSize)

	for _, anchor := range anchors {
		if anchor == AnchorCenter && hasIcon {
			continue
		}

		justification := GetAnchorJustification(anchor)
		slot := instance.PlacedSymbol[justification]
		if slot == nil {
			continue
		}

		alignShiftX, alignShiftY := AlignmentShift(anchor, instance.Width, instance.Height)
		offsetEms := GetDynamicOffset(anchor, layout.DynamicTextOffset)
		box := ShiftDynamicCollisionBox(*instance.TextBox, textBoxScale, alignShiftX, alignShiftY, offsetEms)

		result := p.collisionIndex.PlaceCollisionBox(box, layout.TextAllowOverlap, pixelRatio, textMatrix, collisionGroup.GroupFilter)
		if !result.Placed {
			offscreen = offscreen || result.Offscreen
			continue
		}

		scale := nonZero(textBoxScale)
		slot.ShiftX = alignShiftX/scale + offsetEms.X
		slot.ShiftY = alignShiftY/scale + offsetEms.Y
		slot.CrossTileID = instance.CrossTileID
		slot.Hidden = false

		p.collisionIndex.InsertCollisionBox(result.Box, layout.TextIgnorePlacement, bucket.BucketInstanceID, instance.FeatureIndex, collisionGroup.ID)
		hideUnplacedJustifications(instance, justification)
		return true, result.Offscreen
	}

	return false, offscreen
}

// hideUnplacedJustifications pushes every justification's placedSymbol
// row other than the one actually placed off-screen, by setting its
// shiftX to the vertex-shader culling sentinel (spec.md §4.4).
func hideUnplacedJustifications(instance *SymbolInstance, placed Justification) {
	for j := JustificationLeft; j <= JustificationRight; j++ {
		if j == placed {
			continue
		}
		slot := instance.PlacedSymbol[j]
		if slot == nil {
			continue
		}
		slot.ShiftX = math.Inf(-1)
	}
}

// SetStale marks the Placement as advisory-stale (spec.md §7 "Stale
// placement"): the engine does not self-invalidate on this, but a host
// checking IsStale can schedule a new pass sooner.
func (p *Placement) SetStale() { p.stale = true }

// IsStale reports whether SetStale has been called on this Placement.
func (p *Placement) IsStale() bool { return p.stale }

// SymbolFadeChange returns the fade progress in [0,1] since the last
// placement change, at wall-clock time now (spec.md §6).
func (p *Placement) SymbolFadeChange(now float64) float64 {
	if p.fadeDuration == 0 {
		return 1
	}
	return clamp01((now - p.lastPlacementChangeTime) / p.fadeDuration)
}

// HasTransitions reports whether any symbol is still mid-fade at time
// now, or the Placement has been marked stale.
func (p *Placement) HasTransitions(now float64) bool {
	return p.stale || p.SymbolFadeChange(now) < 1
}

// StillRecent reports whether this Placement's last commit is recent
// enough, relative to its own fadeDuration, that a host can keep
// rendering it without forcing an immediate new pass.
func (p *Placement) StillRecent(now float64) bool {
	return p.commitTime+p.fadeDuration > now
}

// RetainedQueryData returns the pinned feature-index metadata for a
// placed bucket, for answering post-render hit queries (spec.md §6).
func (p *Placement) RetainedQueryData(id BucketInstanceID) (*RetainedQueryData, bool) {
	data, ok := p.retainedQueryData[id]
	return data, ok
}
