package maplabel

import "math"

// UpdateLayerOpacities applies this Placement's opacity/shift decisions
// to every tile's bucket for one layer, writing the GPU vertex arrays
// the renderer uploads next (spec.md §4.6). seenCrossTileIDs is shared
// across every tile passed, in iteration order, so the same logical
// label appearing in two tiles gets exactly one visible entry and one
// hidden duplicate (spec.md §8 property 5).
func (p *Placement) UpdateLayerOpacities(layer Layer, tiles []Tile) {
	seenCrossTileIDs := make(map[CrossTileID]bool)
	layout := layer.Layout()
	for _, tile := range tiles {
		bucket := tile.GetBucket(layer)
		if bucket == nil || bucket.PrimaryLayerID() != layer.ID() {
			continue
		}
		pixelRatio := tilePixelRatio(tile.TileSize(), extent)
		p.updateBucketOpacities(bucket, layout, seenCrossTileIDs, tile.TileID(), pixelRatio)
	}
}

func (p *Placement) updateBucketOpacities(bucket *Bucket, layout LayoutProperties, seenCrossTileIDs map[CrossTileID]bool, tileID TileID, pixelRatio float64) {
	bucket.TextOpacityVertices = bucket.TextOpacityVertices[:0]
	bucket.IconOpacityVertices = bucket.IconOpacityVertices[:0]
	if bucket.CollisionArrays != nil {
		bucket.TextBoxDebugVertices = bucket.TextBoxDebugVertices[:0]
		bucket.IconBoxDebugVertices = bucket.IconBoxDebugVertices[:0]
		bucket.CircleDebugVertices = bucket.CircleDebugVertices[:0]
	}

	textBoxScale := PixelsPerEm(pixelRatio, layout.LayoutTextSize)
	featureOrder := make([]int, 0, len(bucket.SymbolInstances))

	for _, instance := range bucket.SymbolInstances {
		duplicate := seenCrossTileIDs[instance.CrossTileID]

		var opacity JointOpacityState
		if duplicate {
			opacity = JointOpacityState{} // hidden: opacity 0, not placed
		} else {
			state, ok := p.opacities[instance.CrossTileID]
			if !ok {
				decision, placed := p.placements[instance.CrossTileID]
				state = DefaultJointOpacityState(JointPlacement{
					Text:     placed && decision.Text,
					Icon:     placed && decision.Icon,
					SkipFade: true,
				})
			}
			opacity = state
			seenCrossTileIDs[instance.CrossTileID] = true
		}

		offsets := p.dynamicOffsetsFor(instance, duplicate)

		if hasAnyGlyphVertices(instance) {
			p.writeTextVertices(bucket, instance, opacity.Text, duplicate, offsets)
		}
		if instance.HasIconVertices {
			p.writeIconVertices(bucket, instance, opacity.Icon, duplicate)
		}

		if bucket.CollisionArrays != nil {
			p.writeCollisionDebugVertices(bucket, instance, opacity, duplicate, tileID, textBoxScale)
		}

		featureOrder = append(featureOrder, instance.FeatureIndex)
	}

	if data, ok := p.retainedQueryData[bucket.BucketInstanceID]; ok {
		data.FeatureSortOrder = sortFeatureOrderByAngle(featureOrder, p.transform.Angle())
	}

	assert(len(bucket.TextOpacityVertices)*4 == bucket.TextLayoutVertexCount, ErrVertexArrayLengthMismatch)
	assert(len(bucket.IconOpacityVertices)*4 == bucket.IconLayoutVertexCount, ErrVertexArrayLengthMismatch)

	for _, id := range bucket.GPUBufferIDs {
		p.gpuScheduler().ScheduleUpdate(id)
	}
}

// dynamicOffsetsFor returns the remembered per-justification shift for a
// dynamically-placed instance, snapshotting it from the bucket's
// placedSymbol rows the first time it is processed as a non-duplicate,
// whether or not its opacity state is hidden (spec.md §4.6 step 2). It
// returns nil for instances with no dynamic placement slots at all, and
// leaves duplicates unsnapshotted.
func (p *Placement) dynamicOffsetsFor(instance *SymbolInstance, duplicate bool) map[Justification]Point {
	hasDynamicSlot := instance.PlacedSymbol[JustificationLeft] != nil ||
		instance.PlacedSymbol[JustificationCenter] != nil ||
		instance.PlacedSymbol[JustificationRight] != nil
	if !hasDynamicSlot || duplicate {
		return nil
	}

	if existing, ok := p.dynamicOffsets[instance.CrossTileID]; ok {
		return existing
	}

	snapshot := make(map[Justification]Point, 3)
	for j := JustificationLeft; j <= JustificationRight; j++ {
		slot := instance.PlacedSymbol[j]
		if slot == nil {
			continue
		}
		snapshot[j] = Point{X: slot.ShiftX, Y: slot.ShiftY}
	}
	p.dynamicOffsets[instance.CrossTileID] = snapshot
	return snapshot
}

// writeTextVertices packs opacity.Text into the bucket's text opacity
// vertex array, repeated once per glyph quad across every justification
// and the vertical-text slot (spec.md §4.6 step 3). A hidden label also
// gets its placedSymbol rows shifted off-screen via shiftPlacedSymbols;
// a visible, dynamically-placed one gets the remembered offsets applied.
func (p *Placement) writeTextVertices(bucket *Bucket, instance *SymbolInstance, state OpacityState, duplicate bool, offsets map[Justification]Point) {
	packed := PackOpacity(state)
	if duplicate {
		packed = PackOpacity(OpacityState{})
	}

	for j := JustificationLeft; j <= JustificationRight; j++ {
		for i := 0; i < instance.NumGlyphVertices[j]/4; i++ {
			bucket.TextOpacityVertices = append(bucket.TextOpacityVertices, packed)
		}
	}
	for i := 0; i < instance.NumVerticalGlyphVertices/4; i++ {
		bucket.TextOpacityVertices = append(bucket.TextOpacityVertices, packed)
	}

	if duplicate {
		shiftPlacedSymbols(instance, NegInfPoint)
		return
	}

	if state.IsHidden() {
		shiftPlacedSymbols(instance, NegInfPoint)
		return
	}

	if offsets != nil {
		applyDynamicOffsets(instance, offsets)
	}
}

// writeIconVertices is writeTextVertices's icon counterpart
// (spec.md §4.6 step 4); icons have no per-justification slots, only
// instance.IconGlyph's single hidden flag.
func (p *Placement) writeIconVertices(bucket *Bucket, instance *SymbolInstance, state OpacityState, duplicate bool) {
	packed := PackOpacity(state)
	if duplicate {
		packed = PackOpacity(OpacityState{})
	}

	for i := 0; i < instance.NumIconVertices/4; i++ {
		bucket.IconOpacityVertices = append(bucket.IconOpacityVertices, packed)
	}

	if instance.IconGlyph != nil {
		instance.IconGlyph.Hidden = duplicate || state.IsHidden()
	}
}

// shiftPlacedSymbols pushes every justification's placedSymbol row to
// shift, used both for duplicates (spec.md §4.6 step 2, "sentinel
// (-inf,-inf) dynamic shifts") and for a label that has fully faded out.
func shiftPlacedSymbols(instance *SymbolInstance, shift Point) {
	for j := JustificationLeft; j <= JustificationRight; j++ {
		slot := instance.PlacedSymbol[j]
		if slot == nil {
			continue
		}
		slot.ShiftX, slot.ShiftY = shift.X, shift.Y
		slot.Hidden = true
	}
}

func applyDynamicOffsets(instance *SymbolInstance, offsets map[Justification]Point) {
	for j, shift := range offsets {
		slot := instance.PlacedSymbol[j]
		if slot == nil {
			continue
		}
		slot.ShiftX, slot.ShiftY = shift.X, shift.Y
		slot.Hidden = false
	}
}

// writeCollisionDebugVertices emits the four-rows-per-quad debug
// geometry for a bucket built with showCollisionBoxes (spec.md §4.6
// step 5).
func (p *Placement) writeCollisionDebugVertices(bucket *Bucket, instance *SymbolInstance, opacity JointOpacityState, duplicate bool, tileID TileID, textBoxScale float64) {
	debug := bucket.CollisionArrays

	if debug.HasTextBox && instance.TextBox != nil {
		shiftX, shiftY := 0.0, 0.0
		if !duplicate && opacity.Text.Placed {
			if shift := firstNonSentinelShift(instance); shift != nil {
				scale := textBoxScale / nonZero(zoomToTileScale(p.transform.Zoom(), float64(tileID.Z)))
				shiftX, shiftY = shift.X*scale, shift.Y*scale
			}
		}
		row := CollisionDebugRow{Placed: opacity.Text.Placed, NotUsed: duplicate, ShiftX: shiftX, ShiftY: shiftY}
		quad := DebugQuad(row)
		bucket.TextBoxDebugVertices = append(bucket.TextBoxDebugVertices, quad[:]...)
	}

	if debug.HasIconBox && instance.IconBox != nil {
		row := CollisionDebugRow{Placed: opacity.Icon.Placed, NotUsed: duplicate}
		quad := DebugQuad(row)
		bucket.IconBoxDebugVertices = append(bucket.IconBoxDebugVertices, quad[:]...)
	}

	if debug.CircleCount > 0 {
		for i := 0; i+2 < len(instance.TextCircles); i += 3 {
			notUsed := duplicate || instance.TextCircles[i+2] == 0
			row := CollisionDebugRow{Placed: opacity.Text.Placed, NotUsed: notUsed}
			quad := DebugQuad(row)
			bucket.CircleDebugVertices = append(bucket.CircleDebugVertices, quad[:]...)
		}
	}
}

// firstNonSentinelShift returns the first justification's placedSymbol
// shift that isn't the -inf culling sentinel, in left/center/right
// order. With multiple distinct remembered offsets this may
// underrepresent the true shift; documented as-is (spec.md §9 open
// question).
func firstNonSentinelShift(instance *SymbolInstance) *Point {
	for j := JustificationLeft; j <= JustificationRight; j++ {
		slot := instance.PlacedSymbol[j]
		if slot == nil {
			continue
		}
		p := Point{X: slot.ShiftX, Y: slot.ShiftY}
		if !p.IsNegInf() {
			return &p
		}
	}
	return nil
}

// sortFeatureOrderByAngle orders a bucket's feature indices for
// retainedQueryData by the current view angle (spec.md §4.6 step 6).
// Ties keep their original relative order.
func sortFeatureOrderByAngle(featureIndices []int, angle float64) []int {
	order := make([]int, len(featureIndices))
	copy(order, featureIndices)

	// Ascending draw order hit-tests top-down for an unrotated view;
	// past a half-turn the last-drawn features are the ones a reversed
	// scan should reach first.
	normalized := math.Mod(angle+4*math.Pi, 2*math.Pi)
	if normalized > math.Pi {
		reverseInts(order)
	}
	return order
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// gpuScheduler lazily allocates this Placement's buffer-update tracker.
func (p *Placement) gpuScheduler() *gpuSchedulerHandle {
	if p.scheduler == nil {
		p.scheduler = newGPUSchedulerHandle()
	}
	return p.scheduler
}
