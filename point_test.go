package curve3

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0, 5), Pt(0, 0, 0).Translate(Vec(-10, 0, 5)))
	diff(t, Vec(3, -2, 1), Pt(4, 0, 1).Sub(Pt(1, 2, 0)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 3, 4)
	p2 := Pt(0, 0, 0)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(2, -1, 7)
	p4 := Pt(4, 3, 3)
	if d := p3.DistanceSquared(p4); d != 36 {
		t.Errorf("got squared distance %v, want 36", d)
	}
}

func TestPointLerp(t *testing.T) {
	diff(t, Pt(5, 10, -5), Pt(0, 0, 0).Lerp(Pt(10, 20, -10), 0.5))
	diff(t, Pt(5, 10, -5), Pt(0, 0, 0).Midpoint(Pt(10, 20, -10)))
	diff(t, Pt(10, 20, -10), Pt(0, 0, 0).Lerp(Pt(10, 20, -10), 1))
}
