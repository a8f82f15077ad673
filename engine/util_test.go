package engine

import "testing"

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Error("Min(3,5) should be 3")
	}
	if Max(3, 5) != 5 {
		t.Error("Max(3,5) should be 5")
	}
	if Min(-1, 1) != -1 {
		t.Error("Min(-1,1) should be -1")
	}
}

func TestAbs16(t *testing.T) {
	if abs16(-7) != 7 {
		t.Error("abs16(-7) should be 7")
	}
	if abs16(7) != 7 {
		t.Error("abs16(7) should be 7")
	}
	if abs16(0) != 0 {
		t.Error("abs16(0) should be 0")
	}
}
