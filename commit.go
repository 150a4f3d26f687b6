package maplabel

// Commit merges this pass's placement decisions with prev's animated
// opacities, advances the fade clock by the fraction of fadeDuration
// elapsed since prev's commit, and records whether any symbol's placed
// bit actually changed (spec.md §4.5). prev may be nil for the very
// first Placement a renderer ever commits.
//
// After Commit, every key in p.placements has a corresponding entry in
// p.opacities, and any crossTileID from prev.opacities that has fully
// faded out (IsHidden) is dropped rather than carried forward
// (spec.md §3 invariant).
func (p *Placement) Commit(prev *Placement, now float64) {
	p.commitTime = now

	increment := 1.0
	if prev != nil && p.fadeDuration != 0 {
		increment = (now - prev.commitTime) / p.fadeDuration
	}

	placementChanged := false

	for crossTileID, decision := range p.placements {
		var prevOpacity JointOpacityState
		var hadPrev bool
		if prev != nil {
			prevOpacity, hadPrev = prev.opacities[crossTileID]
		}

		if hadPrev {
			next := NewJointOpacityState(prevOpacity, increment, decision)
			if next.Text.Placed != prevOpacity.Text.Placed || next.Icon.Placed != prevOpacity.Icon.Placed {
				placementChanged = true
			}
			p.opacities[crossTileID] = next
			continue
		}

		next := DefaultJointOpacityState(decision)
		if next.Text.Placed || next.Icon.Placed {
			placementChanged = true
		}
		p.opacities[crossTileID] = next
	}

	if prev != nil {
		for crossTileID, prevOpacity := range prev.opacities {
			if _, stillPresent := p.placements[crossTileID]; stillPresent {
				continue
			}

			faded := NewJointOpacityState(prevOpacity, increment, JointPlacement{})
			if prevOpacity.Text.Placed || prevOpacity.Icon.Placed {
				placementChanged = true
			}
			if !faded.IsHidden() {
				p.opacities[crossTileID] = faded
			}
		}
	}

	switch {
	case placementChanged:
		p.lastPlacementChangeTime = now
	case prev != nil:
		p.lastPlacementChangeTime = prev.lastPlacementChangeTime
	default:
		p.lastPlacementChangeTime = now
	}
}
