package maplabel

import "testing"

func TestUpdateBucketOpacitiesVertexArrayInvariant(t *testing.T) {
	instance := &SymbolInstance{
		CrossTileID:      1,
		HasGlyphVertices: [3]bool{false, true, false},
		NumGlyphVertices: [3]int{0, 4, 0}, // one glyph quad, four vertices
		HasIconVertices:  true,
		NumIconVertices:  8, // two icon quads
	}
	bucket := newTestBucket("poi", instance)
	bucket.TextLayoutVertexCount = 4
	bucket.IconLayoutVertexCount = 8
	tile := &fakeTile{id: TileID{Z: 0}, tileSize: 8192, bucket: bucket}
	layer := &fakeLayer{id: "poi"}

	p := NewPlacement(&fakeTransform{}, 300, true)
	p.placements[1] = JointPlacement{Text: true, Icon: true}
	p.Commit(nil, 0)

	p.UpdateLayerOpacities(layer, []Tile{tile})

	if len(bucket.TextOpacityVertices)*4 != bucket.TextLayoutVertexCount {
		t.Errorf("text opacity vertex count*4 = %d, want %d", len(bucket.TextOpacityVertices)*4, bucket.TextLayoutVertexCount)
	}
	if len(bucket.IconOpacityVertices)*4 != bucket.IconLayoutVertexCount {
		t.Errorf("icon opacity vertex count*4 = %d, want %d", len(bucket.IconOpacityVertices)*4, bucket.IconLayoutVertexCount)
	}
}

func TestUpdateBucketOpacitiesHidesDuplicateAcrossTiles(t *testing.T) {
	layer := &fakeLayer{id: "poi"}

	instanceA := &SymbolInstance{
		CrossTileID:      9,
		HasGlyphVertices: [3]bool{false, true, false},
		NumGlyphVertices: [3]int{0, 4, 0},
	}
	bucketA := newTestBucket("poi", instanceA)
	bucketA.TextLayoutVertexCount = 4
	tileA := &fakeTile{id: TileID{Z: 1, X: 0, Y: 0}, tileSize: 8192, bucket: bucketA}

	instanceB := &SymbolInstance{
		CrossTileID:      9,
		HasGlyphVertices: [3]bool{false, true, false},
		NumGlyphVertices: [3]int{0, 4, 0},
	}
	bucketB := newTestBucket("poi", instanceB)
	bucketB.TextLayoutVertexCount = 4
	tileB := &fakeTile{id: TileID{Z: 0, X: 0, Y: 0}, tileSize: 8192, bucket: bucketB}

	p := NewPlacement(&fakeTransform{}, 300, true)
	p.placements[9] = JointPlacement{Text: true}
	p.Commit(nil, 0)

	p.UpdateLayerOpacities(layer, []Tile{tileA, tileB})

	wantVisible := PackOpacity(p.opacities[9].Text)
	wantHidden := PackOpacity(OpacityState{})

	if got := bucketA.TextOpacityVertices[0]; got != wantVisible {
		t.Errorf("first tile's packed opacity = %#x, want %#x (visible)", got, wantVisible)
	}
	if got := bucketB.TextOpacityVertices[0]; got != wantHidden {
		t.Errorf("second tile's packed opacity = %#x, want %#x (hidden duplicate)", got, wantHidden)
	}
}

func TestUpdateBucketOpacitiesFallsBackWhenUncommitted(t *testing.T) {
	layer := &fakeLayer{id: "poi"}

	placedButUncommitted := &SymbolInstance{
		CrossTileID:      1,
		HasGlyphVertices: [3]bool{false, true, false},
		NumGlyphVertices: [3]int{0, 4, 0},
	}
	neverPlaced := &SymbolInstance{
		CrossTileID:      2,
		HasGlyphVertices: [3]bool{false, true, false},
		NumGlyphVertices: [3]int{0, 4, 0},
	}
	bucket := newTestBucket("poi", placedButUncommitted, neverPlaced)
	bucket.TextLayoutVertexCount = 8
	tile := &fakeTile{id: TileID{Z: 0}, tileSize: 8192, bucket: bucket}

	p := NewPlacement(&fakeTransform{}, 300, true)
	p.placements[1] = JointPlacement{Text: true} // never Commit()ed

	p.UpdateLayerOpacities(layer, []Tile{tile})

	wantPlaced := PackOpacity(OpacityState{Opacity: 1, Placed: true}) // skipFade default
	wantHidden := PackOpacity(OpacityState{Opacity: 0, Placed: false})

	if got := bucket.TextOpacityVertices[0]; got != wantPlaced {
		t.Errorf("uncommitted-but-placed packed opacity = %#x, want %#x", got, wantPlaced)
	}
	if got := bucket.TextOpacityVertices[1]; got != wantHidden {
		t.Errorf("never-placed packed opacity = %#x, want %#x", got, wantHidden)
	}
}

func TestUpdateBucketOpacitiesIsIdempotent(t *testing.T) {
	instance := &SymbolInstance{
		CrossTileID:      1,
		HasGlyphVertices: [3]bool{false, true, false},
		NumGlyphVertices: [3]int{0, 4, 0},
	}
	bucket := newTestBucket("poi", instance)
	bucket.TextLayoutVertexCount = 4
	tile := &fakeTile{id: TileID{Z: 0}, tileSize: 8192, bucket: bucket}
	layer := &fakeLayer{id: "poi"}

	p := NewPlacement(&fakeTransform{}, 300, true)
	p.placements[1] = JointPlacement{Text: true}
	p.Commit(nil, 0)

	p.UpdateLayerOpacities(layer, []Tile{tile})
	first := append([]uint32(nil), bucket.TextOpacityVertices...)

	p.UpdateLayerOpacities(layer, []Tile{tile})
	second := bucket.TextOpacityVertices

	if len(first) != len(second) {
		t.Fatalf("vertex array length changed across repeated updates: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("vertex[%d] changed across repeated updates: %#x vs %#x", i, first[i], second[i])
		}
	}
}

func TestUpdateBucketOpacitiesWritesCollisionDebugRows(t *testing.T) {
	instance := &SymbolInstance{
		CrossTileID: 1,
		TextBox:     &Box{X1: 0, Y1: 0, X2: 10, Y2: 10},
	}
	bucket := newTestBucket("poi", instance)
	bucket.CollisionArrays = &CollisionDebugArrays{HasTextBox: true}
	tile := &fakeTile{id: TileID{Z: 0}, tileSize: 8192, bucket: bucket}
	layer := &fakeLayer{id: "poi"}

	p := NewPlacement(&fakeTransform{}, 300, true)
	p.placements[1] = JointPlacement{Text: true}
	p.Commit(nil, 0)

	p.UpdateLayerOpacities(layer, []Tile{tile})

	if len(bucket.TextBoxDebugVertices) != 4 {
		t.Fatalf("TextBoxDebugVertices length = %d, want 4 (one quad)", len(bucket.TextBoxDebugVertices))
	}
	want := CollisionDebugRow{Placed: true, NotUsed: false}
	for i, row := range bucket.TextBoxDebugVertices {
		if row != want {
			t.Errorf("TextBoxDebugVertices[%d] = %+v, want %+v", i, row, want)
		}
	}
}
