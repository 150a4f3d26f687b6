package maplabel

// OpacityState is the per-symbol scalar fade value and last-known
// placement decision for one of a symbol's text or icon halves
// (spec.md §3).
type OpacityState struct {
	Opacity float64 // always in [0, 1]
	Placed  bool
}

// NewOpacityState advances prev by increment (a fraction of fadeDuration
// elapsed) toward or away from full opacity depending on the new placed
// decision, per spec.md §3:
//
//	sign = +1 if prev.Placed else -1
//	new opacity = clamp(prev.opacity + sign*increment, 0, 1)
func NewOpacityState(prev OpacityState, increment float64, placed bool) OpacityState {
	sign := -1.0
	if prev.Placed {
		sign = 1.0
	}
	opacity := clamp01(prev.Opacity + sign*increment)
	return OpacityState{Opacity: opacity, Placed: placed}
}

// DefaultOpacityState constructs the initial state for a symbol that has
// never been seen before: fully visible with no fade-in when skipFade and
// placed both hold, otherwise fully hidden (spec.md §3).
func DefaultOpacityState(placed, skipFade bool) OpacityState {
	if skipFade && placed {
		return OpacityState{Opacity: 1, Placed: placed}
	}
	return OpacityState{Opacity: 0, Placed: placed}
}

// IsHidden reports the invariant isHidden <=> opacity == 0 && !placed
// (spec.md §3, §8 property 1).
func (s OpacityState) IsHidden() bool {
	return s.Opacity == 0 && !s.Placed
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// JointOpacityState is the coherently-advanced pair of text and icon
// OpacityStates for one crossTileID (spec.md §3).
type JointOpacityState struct {
	Text OpacityState
	Icon OpacityState
}

// NewJointOpacityState advances both halves of prev by increment toward
// the decisions in placement.
func NewJointOpacityState(prev JointOpacityState, increment float64, placement JointPlacement) JointOpacityState {
	return JointOpacityState{
		Text: NewOpacityState(prev.Text, increment, placement.Text),
		Icon: NewOpacityState(prev.Icon, increment, placement.Icon),
	}
}

// DefaultJointOpacityState seeds a fresh JointOpacityState from a
// first-seen placement decision, per spec.md §4.5 step 3 ("create a fresh
// state seeded from skipFade").
func DefaultJointOpacityState(placement JointPlacement) JointOpacityState {
	return JointOpacityState{
		Text: DefaultOpacityState(placement.Text, placement.SkipFade),
		Icon: DefaultOpacityState(placement.Icon, placement.SkipFade),
	}
}

// IsHidden reports whether both the text and icon halves are hidden
// (spec.md §3: "Hidden iff both components hidden").
func (s JointOpacityState) IsHidden() bool {
	return s.Text.IsHidden() && s.Icon.IsHidden()
}

// JointPlacement is this pass's placement decision for one crossTileID
// (spec.md §3).
type JointPlacement struct {
	Text     bool
	Icon     bool
	SkipFade bool
}
