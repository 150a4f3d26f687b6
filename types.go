package maplabel

// This file declares the external collaborator interfaces the placement
// engine consumes (spec.md §6). Their implementations — the tile pyramid,
// style/layout evaluator, text shaper, glyph/icon atlas, and the
// screen-space CollisionIndex's internals — live in the rendering host and
// are out of scope for this module (spec.md §1).

// CrossTileID is the stable integer identity a cross-tile index assigns to
// the same logical map-feature label across tiles of differing zoom
// (spec.md GLOSSARY). Zero is never a valid assigned value (spec.md §3
// invariants).
type CrossTileID uint64

// BucketInstanceID uniquely identifies one bucket instance across the
// lifetime of a Placement. Zero is never a valid assigned value.
type BucketInstanceID uint64

// Justification is horizontal text justification selected per dynamic
// anchor (spec.md GLOSSARY).
type Justification int

const (
	JustificationLeft Justification = iota
	JustificationCenter
	JustificationRight
)

// AnchorKeyword names one of the nine label anchor positions §4.2 defines
// geometry for, plus the "auto" pseudo-anchor that expands to the fixed
// ordered list at placement time.
type AnchorKeyword int

const (
	AnchorAuto AnchorKeyword = iota
	AnchorCenter
	AnchorTop
	AnchorBottom
	AnchorLeft
	AnchorRight
	AnchorTopLeft
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

// AutoAnchorOrder is the fixed ordered sequence "auto" expands to
// (spec.md §4.2). It is consulted directly rather than recomputed per call,
// per the typed-enum rearchitecture note in spec.md §9.
var AutoAnchorOrder = []AnchorKeyword{
	AnchorCenter, AnchorTop, AnchorBottom, AnchorLeft, AnchorRight,
	AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight,
}

// PitchAlignment is the typed replacement for the layer's
// text/icon-pitch-alignment string option (spec.md §9 "Dynamic dispatch
// over layout options... rearchitect as typed enums once at layer-ingest
// time").
type PitchAlignment int

const (
	PitchAlignmentMap PitchAlignment = iota
	PitchAlignmentViewport
)

// RotationAlignment is the typed replacement for the layer's
// text/icon-rotation-alignment string option.
type RotationAlignment int

const (
	RotationAlignmentMap RotationAlignment = iota
	RotationAlignmentViewport
)

// LayoutProperties is the subset of a symbol layer's evaluated layout
// properties the engine reads (spec.md §6 "Layer option keys"). A real
// host resolves these once per layer via style/expression evaluation
// (out of scope here, spec.md §1) and hands the engine the resolved
// struct.
type LayoutProperties struct {
	TextOptional         bool
	IconOptional         bool
	TextAllowOverlap     bool
	IconAllowOverlap     bool
	TextIgnorePlacement  bool
	IconIgnorePlacement  bool
	TextPitchAlignment   PitchAlignment
	TextRotationAlign    RotationAlignment
	IconPitchAlignment   PitchAlignment
	IconRotationAlign    RotationAlignment
	DynamicTextAnchor    []AnchorKeyword // possibly beginning with AnchorAuto
	DynamicTextOffset    float64         // radial offset, in ems
	LayoutTextSize       float64         // evaluated text-size at this zoom, in ems
}

// Layer is the minimal symbol-layer surface the engine reads.
type Layer interface {
	ID() string
	Layout() LayoutProperties
}

// Transform is the host's camera/viewport state (spec.md §6).
type Transform interface {
	Zoom() float64
	Angle() float64
	Clone() Transform
	CalculatePosMatrix(tileID TileID) Matrix
}

// TileID identifies one tile's position within the pyramid, unwrapped to
// account for antimeridian wraparound.
type TileID struct {
	Z, X, Y int
	Wrap    int
}

// CollisionBoxKey identifies a box previously inserted into the
// CollisionIndex, used by CollisionGroup predicates (spec.md §4.1) and by
// hit-query resolution.
type CollisionBoxKey struct {
	BucketInstanceID BucketInstanceID
	FeatureIndex     int
	CollisionGroupID int
	IgnorePlacement  bool
}

// PlaceBoxResult is the outcome of a single CollisionIndex.placeCollisionBox
// query (spec.md §6).
type PlaceBoxResult struct {
	Box       Box
	Placed    bool
	Offscreen bool
}

// PlaceCirclesResult is the outcome of a CollisionIndex.placeCollisionCircles
// query, used for along-line label placement.
type PlaceCirclesResult struct {
	Circles   []float64 // (x, y, radius, ...) tuples, flattened; a trailing 0 marks "not used"
	Placed    bool
	Offscreen bool
}

// CollisionIndex is the screen-space spatial acceptor the placement pass
// queries and inserts into (spec.md §6). Its geometric internals are an
// external collaborator; the engine only calls this interface. The
// collisionindex subpackage ships a reference implementation for hosts
// and tests that don't bring their own.
type CollisionIndex interface {
	PlaceCollisionBox(box Box, allowOverlap bool, textPixelRatio float64, posMatrix Matrix, groupPredicate *int) PlaceBoxResult
	PlaceCollisionCircles(circles []float64, allowOverlap bool, textPixelRatio float64, posMatrix Matrix, groupPredicate *int) PlaceCirclesResult
	InsertCollisionBox(box Box, ignorePlacement bool, bucketInstanceID BucketInstanceID, featureIndex int, collisionGroupID int)
	InsertCollisionCircles(circles []float64, ignorePlacement bool, bucketInstanceID BucketInstanceID, featureIndex int, collisionGroupID int)
}

// FeatureIndexHandle is an opaque reference into the host's per-tile
// feature index, retained so hit-testing queries issued after rendering
// can resolve back to source features (spec.md §3 "RetainedQueryData").
type FeatureIndexHandle interface{}

// SymbolInstance is one label/icon candidate within a bucket, in the
// bucket's stored iteration order (spec.md §4.3).
type SymbolInstance struct {
	CrossTileID CrossTileID

	TextBox       *Box
	TextBoxScale  float64
	TextCircles   []float64 // along-line placement circles, nil if none
	IconBox       *Box

	HasGlyphVertices      [3]bool // indexed by Justification; vertical text is tracked separately in HasVerticalGlyphVerts
	HasIconVertices       bool
	HasVerticalGlyphVerts bool

	// NumGlyphVertices/NumVerticalGlyphVertices/NumIconVertices are raw
	// GPU vertex counts (four per glyph/icon quad), used by
	// updateBucketOpacities to compute how many times a packed opacity
	// value repeats (spec.md §4.6 step 3).
	NumGlyphVertices         [3]int
	NumVerticalGlyphVertices int
	NumIconVertices          int

	PlacedSymbol [3]*PlacedSymbol // indexed by Justification; nil if the bucket has no slot for that justification
	IconGlyph    *PlacedSymbol

	Width, Height float64 // label box dimensions in ems, for alignment shift math

	FeatureIndex int
}

// PlacedSymbol is the bucket's per-justification remembered placement
// slot, written by placeDynamicText and hideUnplacedJustifications and by
// updateBucketOpacities' shiftPlacedSymbols/applyDynamicOffsets; the
// dynamic-offset snapshot only reads it (spec.md §4.4, §4.6).
type PlacedSymbol struct {
	ShiftX, ShiftY float64
	Hidden         bool
	CrossTileID    CrossTileID
}

// Bucket is a per-tile container of one layer's renderable symbol
// primitives (spec.md GLOSSARY).
type Bucket struct {
	BucketInstanceID BucketInstanceID
	LayerIDs         []string // primary layer is LayerIDs[0]

	SymbolInstances []*SymbolInstance
	JustReloaded    bool

	HasIconData bool
	HasTextData bool

	CollisionArrays *CollisionDebugArrays // set by the host for buckets with collision-debug geometry; nil otherwise, and never allocated by this engine

	// TextOpacityVertices/IconOpacityVertices hold the packed 32-bit
	// value written once per glyph/icon quad (spec.md §4.7); their
	// companion *LayoutVertexCount fields are the bucket's fixed glyph
	// geometry vertex counts, four per quad, set when the bucket's
	// layout geometry was built and read-only to this engine.
	TextOpacityVertices   []uint32
	TextLayoutVertexCount int
	IconOpacityVertices   []uint32
	IconLayoutVertexCount int

	// *DebugVertices hold the four-rows-per-quad collision-debug
	// entries (spec.md §4.6 step 5); left nil for buckets built without
	// showCollisionBoxes.
	TextBoxDebugVertices []CollisionDebugRow
	IconBoxDebugVertices []CollisionDebugRow
	CircleDebugVertices  []CollisionDebugRow

	GPUBufferIDs []uint64 // opaque handles the host uses for upload scheduling
}

// PrimaryLayerID is the bucket's primary layer, used by placeLayerTile and
// updateLayerOpacities to skip buckets belonging to a different layer in
// the same source (spec.md §4.3 step 1, §4.6).
func (b *Bucket) PrimaryLayerID() string {
	if len(b.LayerIDs) == 0 {
		return ""
	}
	return b.LayerIDs[0]
}

// CollisionDebugArrays marks that a bucket carries collision-debug
// geometry (spec.md §4.6 step 5); only buckets created with
// showCollisionBoxes populate this.
type CollisionDebugArrays struct {
	HasTextBox  bool
	HasIconBox  bool
	CircleCount int
}

// Tile is a single pyramid tile as the placement pass sees it (spec.md §6).
type Tile interface {
	TileID() TileID
	TileSize() float64
	GetBucket(layer Layer) *Bucket
	HoldingForFade() bool
}
