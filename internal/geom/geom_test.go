package geom

import (
	"math"
	"testing"
)

func TestVec3CrossOrthogonal(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	z := x.Cross(y)
	if z != (Vec3{Z: 1}) {
		t.Errorf("expected +Z, got %+v", z)
	}
}

func TestVec3NormalizedZero(t *testing.T) {
	n := Vec3{}.Normalized()
	if n != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %+v", n)
	}
	if math.IsNaN(n.X) {
		t.Error("normalizing zero vector produced NaN")
	}
}

func TestBox3ExpandAndSize(t *testing.T) {
	b := EmptyBox3()
	if !b.IsEmpty() {
		t.Fatal("fresh box should be empty")
	}
	b = b.ExpandByPoint(Vec3{X: 1, Y: 2, Z: 3})
	b = b.ExpandByPoint(Vec3{X: -1, Y: 0, Z: 5})
	s := b.Size()
	if s != (Vec3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("unexpected size %+v", s)
	}
}

func TestBox3Intersection(t *testing.T) {
	a := NewBox3(Vec3{}, Vec3{X: 10, Y: 10, Z: 10})
	b := NewBox3(Vec3{X: 5, Y: 5, Z: 5}, Vec3{X: 15, Y: 15, Z: 15})
	inter := a.Intersection(b)
	if inter.Volume() != 125 {
		t.Errorf("expected overlap volume 125, got %f", inter.Volume())
	}

	c := NewBox3(Vec3{X: 20, Y: 20, Z: 20}, Vec3{X: 30, Y: 30, Z: 30})
	if v := a.Intersection(c).Volume(); v != 0 {
		t.Errorf("disjoint boxes should have 0 overlap, got %f", v)
	}
}
