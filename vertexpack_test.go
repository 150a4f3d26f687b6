package maplabel

import "testing"

func TestPackOpacityFastPaths(t *testing.T) {
	if got := PackOpacity(OpacityState{Opacity: 0, Placed: false}); got != 0 {
		t.Errorf("PackOpacity(hidden) = %#x, want 0", got)
	}
	if got := PackOpacity(OpacityState{Opacity: 1, Placed: true}); got != 0xFFFFFFFF {
		t.Errorf("PackOpacity(full+placed) = %#x, want 0xFFFFFFFF", got)
	}
}

func TestPackOpacityGeneralCaseBytesMatch(t *testing.T) {
	states := []OpacityState{
		{Opacity: 0.5, Placed: true},
		{Opacity: 0.5, Placed: false},
		{Opacity: 0.25, Placed: true},
		{Opacity: 1, Placed: false}, // not a fast path: placed is false
		{Opacity: 0, Placed: true},  // not a fast path: opacity is 0 but placed
	}
	for _, s := range states {
		packed := PackOpacity(s)
		o := uint32(s.Opacity * 127)
		p := uint32(0)
		if s.Placed {
			p = 1
		}
		want := (o << 1) | p

		for shift := 0; shift < 32; shift += 8 {
			byteVal := (packed >> shift) & 0xFF
			if byteVal != want {
				t.Errorf("PackOpacity(%+v) byte at shift %d = %#x, want %#x", s, shift, byteVal, want)
			}
		}
	}
}

func TestPackOpacityInvariant(t *testing.T) {
	// The hidden state packs to 0 and the fully opaque placed state packs
	// to 0xFFFFFFFF. (An unplaced state with opacity below 1/127 also
	// packs to 0, since floor(opacity*127) is then 0.)
	hidden := OpacityState{Opacity: 0, Placed: false}
	if PackOpacity(hidden) != 0 {
		t.Error("hidden state should pack to 0")
	}
	visible := OpacityState{Opacity: 1, Placed: true}
	if PackOpacity(visible) != 0xFFFFFFFF {
		t.Error("fully-placed state should pack to 0xFFFFFFFF")
	}
}

func TestDebugQuadRepeatsFourTimes(t *testing.T) {
	row := CollisionDebugRow{Placed: true, NotUsed: false, ShiftX: 1, ShiftY: 2}
	quad := DebugQuad(row)
	if len(quad) != 4 {
		t.Fatalf("DebugQuad length = %d, want 4", len(quad))
	}
	for i, r := range quad {
		if r != row {
			t.Errorf("DebugQuad[%d] = %+v, want %+v", i, r, row)
		}
	}
}
