package maplabel

// PackOpacity encodes an OpacityState into the 32-bit value the vertex
// shader reads, repeated as four identical bytes so any of the quad's
// four vertices can unpack it independently (spec.md §4.7, §8 property 2).
//
// Fast paths match the hidden and fully-placed-and-visible states exactly;
// the general case packs o = floor(opacity*127) (7 bits) and the placed
// bit p into four copies of (o<<1)|p, one per byte, via shifts rather than
// floating point (spec.md §9: "reimplement as integer shifts/ors... to
// avoid floating-point in vertex writing").
func PackOpacity(s OpacityState) uint32 {
	if s.Opacity == 0 && !s.Placed {
		return 0
	}
	if s.Opacity == 1 && s.Placed {
		return 0xFFFFFFFF
	}

	o := uint32(s.Opacity * 127)
	var p uint32
	if s.Placed {
		p = 1
	}
	byteVal := (o << 1) | p
	return byteVal<<24 | byteVal<<16 | byteVal<<8 | byteVal
}

// CollisionDebugRow is one (placed, notUsed, shiftX, shiftY) vertex
// emitted four times per quad into a bucket's collision-debug vertex array
// (spec.md §4.6 step 5, §4.7).
type CollisionDebugRow struct {
	Placed  bool
	NotUsed bool
	ShiftX  float64
	ShiftY  float64
}

// DebugQuad returns the four identical CollisionDebugRow entries covering
// one quad (spec.md §4.7: "emitted four times to cover the quad").
func DebugQuad(row CollisionDebugRow) [4]CollisionDebugRow {
	return [4]CollisionDebugRow{row, row, row, row}
}
