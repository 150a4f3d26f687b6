//go:build maplabel_debug

package maplabel

// debugAssertions is true when built with -tags maplabel_debug, halting on
// the programmer-error invariants listed in spec.md §7.
const debugAssertions = true
