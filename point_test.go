package maplabel

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a, b := Pt(1, 2), Pt(3, 4)

	if got := a.Add(b); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4,6)", got)
	}
	if got := b.Sub(a); got != Pt(2, 2) {
		t.Errorf("Sub = %v, want (2,2)", got)
	}
	if got := a.Mul(3); got != Pt(3, 6) {
		t.Errorf("Mul = %v, want (3,6)", got)
	}
}

func TestPointLength(t *testing.T) {
	if got := Pt(3, 4).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
}

func TestPointIsNegInf(t *testing.T) {
	if !NegInfPoint.IsNegInf() {
		t.Error("NegInfPoint.IsNegInf() = false, want true")
	}
	if Pt(0, 0).IsNegInf() {
		t.Error("Pt(0,0).IsNegInf() = true, want false")
	}
	if !Pt(math.Inf(-1), 5).IsNegInf() {
		t.Error("Pt(-Inf, 5).IsNegInf() = false, want true")
	}
}
