package maplabel

// Test doubles for the external collaborator interfaces (spec.md §6).
// Kept minimal: just enough behavior for the placement/commit/opacity
// tests to drive real geometry through the engine.

type fakeTransform struct {
	zoom, angle float64
}

func (f *fakeTransform) Zoom() float64    { return f.zoom }
func (f *fakeTransform) Angle() float64   { return f.angle }
func (f *fakeTransform) Clone() Transform { copy := *f; return &copy }
func (f *fakeTransform) CalculatePosMatrix(tileID TileID) Matrix {
	return IdentityMatrix()
}

type fakeLayer struct {
	id     string
	layout LayoutProperties
}

func (l *fakeLayer) ID() string               { return l.id }
func (l *fakeLayer) Layout() LayoutProperties { return l.layout }

type fakeTile struct {
	id          TileID
	tileSize    float64
	bucket      *Bucket
	holdingFade bool
}

func (t *fakeTile) TileID() TileID       { return t.id }
func (t *fakeTile) TileSize() float64    { return t.tileSize }
func (t *fakeTile) HoldingForFade() bool { return t.holdingFade }
func (t *fakeTile) GetBucket(layer Layer) *Bucket {
	if t.bucket == nil {
		return nil
	}
	if t.bucket.PrimaryLayerID() != layer.ID() {
		return nil
	}
	return t.bucket
}

func newTestBucket(layerID string, instances ...*SymbolInstance) *Bucket {
	return &Bucket{
		BucketInstanceID: 1,
		LayerIDs:         []string{layerID},
		SymbolInstances:  instances,
	}
}
