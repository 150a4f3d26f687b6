package maplabel

// RetainedQueryData pins the feature-index metadata needed to answer
// post-render hit queries for every bucket placed (spec.md §3). It lives
// as long as the owning Placement does — the Placement's retainedQueryData
// map is the owned handle spec.md §9 describes in place of the upstream
// renderer's cyclic reference-counted pointer.
type RetainedQueryData struct {
	BucketInstanceID BucketInstanceID
	FeatureIndex     FeatureIndexHandle
	SourceLayerIndex int
	BucketIndex      int
	TileID           TileID
	FeatureSortOrder []int // nil until updateBucketOpacities computes it (spec.md §4.6 step 6)
}
