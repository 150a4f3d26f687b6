package maplabel

import "math"

// GetDynamicOffset returns the label center displacement in ems for the
// given anchor and radial offset (spec.md §4.2).
//
// Diagonal anchors split the radial offset evenly across both axes using
// the leg of a right isoceles triangle (h = r/sqrt(2)); the sign is chosen
// so the anchor names the corner the label points *from* — e.g.
// top-right means the label sits below-left of the anchor point.
// Cardinal anchors apply the full offset to their single non-zero axis.
// Center returns the zero offset.
func GetDynamicOffset(anchor AnchorKeyword, radialOffset float64) Point {
	switch anchor {
	case AnchorCenter:
		return Point{}
	case AnchorTop:
		return Point{X: 0, Y: radialOffset}
	case AnchorBottom:
		return Point{X: 0, Y: -radialOffset}
	case AnchorLeft:
		return Point{X: radialOffset, Y: 0}
	case AnchorRight:
		return Point{X: -radialOffset, Y: 0}
	case AnchorTopLeft:
		h := radialLeg(radialOffset)
		return Point{X: h, Y: h}
	case AnchorTopRight:
		h := radialLeg(radialOffset)
		return Point{X: -h, Y: h}
	case AnchorBottomLeft:
		h := radialLeg(radialOffset)
		return Point{X: h, Y: -h}
	case AnchorBottomRight:
		h := radialLeg(radialOffset)
		return Point{X: -h, Y: -h}
	default:
		return Point{}
	}
}

// ShiftDynamicCollisionBox produces a translated axis-aligned box whose
// four edges are offset by (shiftX + offsetEms.X*textBoxScale,
// shiftY + offsetEms.Y*textBoxScale). The anchor point in tile coordinates
// is preserved unchanged (spec.md §4.2) — the shift is applied to the box
// corners, not to some separately tracked anchor field.
func ShiftDynamicCollisionBox(box Box, textBoxScale, shiftX, shiftY float64, offsetEms Point) Box {
	dx := shiftX + offsetEms.X*textBoxScale
	dy := shiftY + offsetEms.Y*textBoxScale
	return box.Translate(dx, dy)
}

// GetAnchorJustification maps a dynamic anchor to the horizontal text
// justification it implies (spec.md §4.3: "Compute the justification
// implied by the anchor").
func GetAnchorJustification(anchor AnchorKeyword) Justification {
	switch anchor {
	case AnchorLeft, AnchorTopLeft, AnchorBottomLeft:
		return JustificationLeft
	case AnchorRight, AnchorTopRight, AnchorBottomRight:
		return JustificationRight
	default:
		return JustificationCenter
	}
}

// anchorAlignment holds the (horizontal, vertical) alignment fractions
// (0, 0.5, or 1) used to compute the static alignment shift for an anchor
// (spec.md §4.3: "shiftX = -horizontalAlign * width").
type anchorAlignment struct {
	Horizontal, Vertical float64
}

// GetAnchorAlignment returns the alignment fractions implied by an anchor.
// A "top" anchor aligns the label's top edge to the anchor point, so the
// label's vertical alignment fraction is 0; "bottom" is 1; anything
// without a vertical/horizontal component aligns at its center (0.5).
func GetAnchorAlignment(anchor AnchorKeyword) anchorAlignment {
	h, v := 0.5, 0.5
	switch anchor {
	case AnchorLeft, AnchorTopLeft, AnchorBottomLeft:
		h = 0
	case AnchorRight, AnchorTopRight, AnchorBottomRight:
		h = 1
	}
	switch anchor {
	case AnchorTop, AnchorTopLeft, AnchorTopRight:
		v = 0
	case AnchorBottom, AnchorBottomLeft, AnchorBottomRight:
		v = 1
	}
	return anchorAlignment{Horizontal: h, Vertical: v}
}

// AlignmentShift computes (shiftX, shiftY) = (-horizontalAlign*width,
// -verticalAlign*height) for the given anchor and label box dimensions in
// ems (spec.md §4.3).
func AlignmentShift(anchor AnchorKeyword, width, height float64) (shiftX, shiftY float64) {
	align := GetAnchorAlignment(anchor)
	return -align.Horizontal * width, -align.Vertical * height
}

// PixelsPerEm computes the scale factor (spec.md §4.3: "textBoxScale =
// pixelsPerEm(tilePixelRatio, layoutTextSize)") used to convert an em-unit
// dynamic offset into the same tile-pixel units as the stored box.
func PixelsPerEm(tilePixelRatio, layoutTextSize float64) float64 {
	return tilePixelRatio * layoutTextSize
}

// resolveAnchorList expands a dynamic-text-anchor list, turning a leading
// "auto" into AutoAnchorOrder and dropping any later "auto" occurrence
// with a one-shot warning (spec.md §4.2, §7).
//
// warnOnce is the per-Placement set of already-emitted warning keys
// (spec.md §9: "keep a per-Placement or per-process boolean set of
// already-emitted warning keys; do not use process-wide mutable state
// without explicit init").
func resolveAnchorList(anchors []AnchorKeyword, warnOnce map[string]struct{}) []AnchorKeyword {
	if len(anchors) == 0 {
		return nil
	}

	resolved := make([]AnchorKeyword, 0, len(anchors)+len(AutoAnchorOrder))
	for i, a := range anchors {
		if a == AnchorAuto {
			if i == 0 {
				resolved = append(resolved, AutoAnchorOrder...)
				continue
			}
			warnAutoNotFirst(warnOnce)
			continue
		}
		resolved = append(resolved, a)
	}
	return resolved
}

func warnAutoNotFirst(warnOnce map[string]struct{}) {
	const key = "dynamic-text-anchor:auto-not-first"
	if _, seen := warnOnce[key]; seen {
		return
	}
	warnOnce[key] = struct{}{}
	Logger().Warn("dynamic-text-anchor: \"auto\" is only valid as the first entry; later occurrence ignored")
}

// epsilon guards the division by textBoxScale in placeDynamicText and the
// division by the zoom scale in writeCollisionDebugVertices against a
// degenerate zero scale.
const epsilon = 1e-9

func nonZero(v float64) float64 {
	if math.Abs(v) < epsilon {
		return epsilon
	}
	return v
}
