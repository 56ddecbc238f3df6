package kernel

import (
	"context"
	"errors"
	"math"

	"github.com/woodshop-tools/panelforge/internal/geom"
	"github.com/woodshop-tools/panelforge/internal/mesh"
)

// Box is a solid represented by its axis-aligned bounds. It is the only
// solid type the BoxKernel understands.
type Box struct {
	Box3 geom.Box3
}

// NewBox returns a box solid spanning min..max.
func NewBox(min, max geom.Vec3) Box {
	return Box{Box3: geom.NewBox3(min, max)}
}

// Bounds implements Solid.
func (b Box) Bounds() geom.Box3 {
	return b.Box3
}

// BoxKernel performs exact axis-aligned box arithmetic. Cuts are only
// representable when the result is again a single box: the tool must span
// the base fully on two axes and reach past one base face on the third.
// Anything else fails with a kernel Error, which exercises the same
// degradation path a real B-rep kernel failure would.
type BoxKernel struct{}

// boxEps absorbs float noise when comparing box extents.
const boxEps = 1e-6

// ErrNotABox reports a cut whose result cannot be represented as a single
// axis-aligned box.
var ErrNotABox = errors.New("cut result is not a box")

func asBox(op string, s Solid) (Box, error) {
	b, ok := s.(Box)
	if !ok {
		return Box{}, &Error{Op: op, Err: errors.New("solid is not a BoxKernel box")}
	}
	return b, nil
}

// Cut implements Kernel.
func (BoxKernel) Cut(ctx context.Context, base, tool Solid) (Solid, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: "cut", Err: err}
	}
	bb, err := asBox("cut", base)
	if err != nil {
		return nil, err
	}
	tb, err := asBox("cut", tool)
	if err != nil {
		return nil, err
	}

	inter := bb.Box3.Intersection(tb.Box3)
	if inter.IsEmpty() || inter.Volume() <= boxEps {
		return base, nil
	}

	for axis := 0; axis < 3; axis++ {
		if !spansOtherAxes(bb.Box3, inter, axis) {
			continue
		}
		bMin, bMax := axisRange(bb.Box3, axis)
		iMin, iMax := axisRange(inter, axis)
		switch {
		case math.Abs(iMin-bMin) < boxEps && iMax < bMax-boxEps:
			// Tool eats the low end of this axis.
			out := bb.Box3
			setAxisMin(&out, axis, iMax)
			return Box{Box3: out}, nil
		case math.Abs(iMax-bMax) < boxEps && iMin > bMin+boxEps:
			// Tool eats the high end.
			out := bb.Box3
			setAxisMax(&out, axis, iMin)
			return Box{Box3: out}, nil
		case math.Abs(iMin-bMin) < boxEps && math.Abs(iMax-bMax) < boxEps:
			// Tool swallows the base entirely on this axis too; the
			// result is empty.
			return Box{Box3: geom.EmptyBox3()}, nil
		}
	}
	return nil, &Error{Op: "cut", Err: ErrNotABox}
}

// Fillet implements Kernel. Rounded edges do not change a box's bounds, so
// the box kernel treats fillets as identity.
func (BoxKernel) Fillet(ctx context.Context, s Solid, sel EdgeSelector) (Solid, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Op: "fillet", Err: err}
	}
	if _, err := asBox("fillet", s); err != nil {
		return nil, err
	}
	return s, nil
}

// Translate implements Kernel.
func (BoxKernel) Translate(s Solid, delta geom.Vec3) (Solid, error) {
	b, err := asBox("translate", s)
	if err != nil {
		return nil, err
	}
	return Box{Box3: b.Box3.Translate(delta)}, nil
}

// ToMesh implements Kernel: an indexed mesh with two triangles per face and
// outward normals.
func (BoxKernel) ToMesh(s Solid) (mesh.TriangleMesh, error) {
	b, err := asBox("toMesh", s)
	if err != nil {
		return mesh.TriangleMesh{}, err
	}
	min, max := b.Box3.Min, b.Box3.Max
	positions := []geom.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z}, {X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z}, {X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z}, {X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z}, {X: min.X, Y: max.Y, Z: max.Z},
	}
	quads := [6][4]int{
		{1, 2, 6, 5}, // +X
		{3, 0, 4, 7}, // -X
		{3, 7, 6, 2}, // +Y
		{0, 1, 5, 4}, // -Y
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
	}
	var indices []int
	for _, q := range quads {
		indices = append(indices,
			q[0], q[1], q[2],
			q[0], q[2], q[3])
	}
	return mesh.TriangleMesh{Positions: positions, Indices: indices}, nil
}

func axisRange(b geom.Box3, axis int) (float64, float64) {
	switch axis {
	case 0:
		return b.Min.X, b.Max.X
	case 1:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}

func setAxisMin(b *geom.Box3, axis int, v float64) {
	switch axis {
	case 0:
		b.Min.X = v
	case 1:
		b.Min.Y = v
	default:
		b.Min.Z = v
	}
}

func setAxisMax(b *geom.Box3, axis int, v float64) {
	switch axis {
	case 0:
		b.Max.X = v
	case 1:
		b.Max.Y = v
	default:
		b.Max.Z = v
	}
}

// spansOtherAxes reports whether inter covers base fully on both axes other
// than axis.
func spansOtherAxes(base, inter geom.Box3, axis int) bool {
	for a := 0; a < 3; a++ {
		if a == axis {
			continue
		}
		bMin, bMax := axisRange(base, a)
		iMin, iMax := axisRange(inter, a)
		if iMin > bMin+boxEps || iMax < bMax-boxEps {
			return false
		}
	}
	return true
}
