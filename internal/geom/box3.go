package geom

import "math"

// Box3 is an axis-aligned bounding box. A freshly created empty box has
// inverted bounds so that the first ExpandByPoint sets both corners.
type Box3 struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// EmptyBox3 returns a box that contains nothing.
func EmptyBox3() Box3 {
	inf := math.Inf(1)
	return Box3{
		Min: Vec3{X: inf, Y: inf, Z: inf},
		Max: Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// NewBox3 returns a box spanning min..max.
func NewBox3(min, max Vec3) Box3 {
	return Box3{Min: min, Max: max}
}

// IsEmpty reports whether the box contains no volume at all (inverted on
// any axis).
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint grows the box to contain p.
func (b Box3) ExpandByPoint(p Vec3) Box3 {
	return Box3{
		Min: Vec3{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: Vec3{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Size returns the extent of the box per axis, or the zero vector for an
// empty box.
func (b Box3) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Volume returns the enclosed volume, 0 for an empty box.
func (b Box3) Volume() float64 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Intersection returns the overlapping region of b and o. The result may be
// empty.
func (b Box3) Intersection(o Box3) Box3 {
	return Box3{
		Min: Vec3{X: math.Max(b.Min.X, o.Min.X), Y: math.Max(b.Min.Y, o.Min.Y), Z: math.Max(b.Min.Z, o.Min.Z)},
		Max: Vec3{X: math.Min(b.Max.X, o.Max.X), Y: math.Min(b.Max.Y, o.Max.Y), Z: math.Min(b.Max.Z, o.Max.Z)},
	}
}

// Translate shifts the box by delta.
func (b Box3) Translate(delta Vec3) Box3 {
	return Box3{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}
