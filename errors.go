package maplabel

import "errors"

// Package errors for maplabel, following the teacher library's convention
// of package-level sentinel errors with a package-name prefix.
var (
	// ErrNoBucket is returned by callers that choose to surface a missing
	// bucket as an error instead of silently skipping it. placeLayerTile
	// itself treats a missing bucket as the normal "layer has no symbols
	// in this tile" case (spec.md §7) and never returns this.
	ErrNoBucket = errors.New("maplabel: tile has no bucket for layer")

	// ErrZeroCrossTileID signals the debug-build assertion in §7
	// ("Invariant assertion — zero crossTileID... at insertion time").
	ErrZeroCrossTileID = errors.New("maplabel: crossTileID must be non-zero at insertion")

	// ErrZeroBucketInstanceID signals the companion assertion for
	// bucketInstanceId.
	ErrZeroBucketInstanceID = errors.New("maplabel: bucketInstanceID must be non-zero at insertion")

	// ErrVertexArrayLengthMismatch signals the end-of-update invariant
	// opacityVertexArray.length*4 == layoutVertexArray.length (spec.md §3, §7).
	ErrVertexArrayLengthMismatch = errors.New("maplabel: opacity vertex array length does not match layout vertex array length")
)

// debugAssertions is flipped on by the "maplabel_debug" build tag (see
// assert_debug.go / assert_release.go). spec.md §7: "halt in debug
// builds; treat as programmer error" for the invariant violations above —
// production builds skip the check rather than panicking on host data the
// engine cannot repair.
func assert(cond bool, err error) {
	if debugAssertions && !cond {
		panic(err)
	}
}
