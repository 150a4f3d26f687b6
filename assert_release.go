//go:build !maplabel_debug

package maplabel

// debugAssertions is false in normal builds: invariant violations from
// malformed host data degrade to missing/default placements rather than
// crashing the render thread (spec.md §7).
const debugAssertions = false
