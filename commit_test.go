package maplabel

import "testing"

func TestCommitFreshStateFadesIn(t *testing.T) {
	p := NewPlacement(&fakeTransform{}, 300, true)
	p.placements[1] = JointPlacement{Text: true, SkipFade: false}

	p.Commit(nil, 0)

	got := p.opacities[1]
	if got.Text.Opacity != 0 || !got.Text.Placed {
		t.Errorf("fresh non-skipFade state = %+v, want {Opacity:0 Placed:true}", got.Text)
	}
	if p.lastPlacementChangeTime != 0 {
		t.Errorf("lastPlacementChangeTime = %v, want 0 (first-seen placed symbol changes)", p.lastPlacementChangeTime)
	}
}

func TestCommitFreshStateSkipFadeIsImmediatelyVisible(t *testing.T) {
	p := NewPlacement(&fakeTransform{}, 300, true)
	p.placements[1] = JointPlacement{Text: true, SkipFade: true}

	p.Commit(nil, 42)

	got := p.opacities[1]
	if got.Text.Opacity != 1 || !got.Text.Placed {
		t.Errorf("fresh skipFade state = %+v, want {Opacity:1 Placed:true}", got.Text)
	}
}

func TestCommitAdvancesExistingOpacityTowardPlaced(t *testing.T) {
	prev := NewPlacement(&fakeTransform{}, 300, true)
	prev.commitTime = 0
	prev.lastPlacementChangeTime = 10
	prev.opacities[1] = JointOpacityState{Text: OpacityState{Opacity: 0.5, Placed: true}}

	p := NewPlacement(&fakeTransform{}, 300, true)
	p.placements[1] = JointPlacement{Text: true}

	p.Commit(prev, 150) // increment = (150-0)/300 = 0.5

	got := p.opacities[1].Text
	if got.Opacity != 1 || !got.Placed {
		t.Errorf("advanced opacity = %+v, want {Opacity:1 Placed:true}", got)
	}
	// the placed bit didn't change (was and remains true), so the change
	// time should carry forward from prev rather than reset to now.
	if p.lastPlacementChangeTime != 10 {
		t.Errorf("lastPlacementChangeTime = %v, want 10 (carried forward, no placement change)", p.lastPlacementChangeTime)
	}
}

func TestCommitFadesOutAndCarriesDroppedCrossTileID(t *testing.T) {
	prev := NewPlacement(&fakeTransform{}, 300, true)
	prev.commitTime = 0
	prev.opacities[5] = JointOpacityState{Text: OpacityState{Opacity: 1, Placed: true}}

	p := NewPlacement(&fakeTransform{}, 300, true)
	// crossTileID 5 is not placed this frame at all (e.g. its tile left view).

	p.Commit(prev, 150) // increment = 0.5

	got, ok := p.opacities[5]
	if !ok {
		t.Fatal("dropped crossTileID should still carry a fading-out opacity entry")
	}
	if got.Text.Opacity != 0.5 || got.Text.Placed {
		t.Errorf("faded opacity = %+v, want {Opacity:0.5 Placed:false}", got.Text)
	}
	if p.lastPlacementChangeTime != 150 {
		t.Errorf("lastPlacementChangeTime = %v, want 150 (placed->unplaced is a placement change)", p.lastPlacementChangeTime)
	}
}

func TestCommitDropsFullyFadedOutEntries(t *testing.T) {
	prev := NewPlacement(&fakeTransform{}, 300, true)
	prev.commitTime = 0
	prev.lastPlacementChangeTime = 99
	prev.opacities[7] = JointOpacityState{Text: OpacityState{Opacity: 0, Placed: false}}

	p := NewPlacement(&fakeTransform{}, 300, true)
	p.Commit(prev, 150)

	if _, ok := p.opacities[7]; ok {
		t.Error("a crossTileID that fully faded out and stayed unplaced should not be carried forward")
	}
	if p.lastPlacementChangeTime != 99 {
		t.Errorf("lastPlacementChangeTime = %v, want 99 (no placement change this commit)", p.lastPlacementChangeTime)
	}
}

func TestCommitNilPrevWithNoPlacementsDefaultsChangeTimeToNow(t *testing.T) {
	p := NewPlacement(&fakeTransform{}, 300, true)
	p.Commit(nil, 77)

	if p.lastPlacementChangeTime != 77 {
		t.Errorf("lastPlacementChangeTime = %v, want 77 (first commit with nothing placed)", p.lastPlacementChangeTime)
	}
	if len(p.opacities) != 0 {
		t.Errorf("expected no opacity entries, got %v", p.opacities)
	}
}

func TestCommitZeroFadeDurationSkipsIncrementMath(t *testing.T) {
	prev := NewPlacement(&fakeTransform{}, 0, true)
	prev.commitTime = 0
	prev.opacities[1] = JointOpacityState{Text: OpacityState{Opacity: 0.3, Placed: true}}

	p := NewPlacement(&fakeTransform{}, 0, true)
	p.placements[1] = JointPlacement{Text: true}
	p.Commit(prev, 1) // fadeDuration 0 => increment defaults to 1.0, no divide-by-zero

	if got := p.opacities[1].Text.Opacity; got != 1 {
		t.Errorf("opacity with zero fadeDuration = %v, want 1 (full jump)", got)
	}
}
