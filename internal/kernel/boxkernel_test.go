package kernel

import (
	"context"
	"errors"
	"testing"

	"github.com/woodshop-tools/panelforge/internal/geom"
	"github.com/woodshop-tools/panelforge/internal/mesh"
)

func TestBoxKernelCutTrimsHighEnd(t *testing.T) {
	k := BoxKernel{}
	// Side panel, full height.
	base := NewBox(geom.Vec3{}, geom.Vec3{X: 18, Y: 600, Z: 560})
	// Top panel slab overlapping the side's upper 18mm.
	tool := NewBox(geom.Vec3{Y: 582}, geom.Vec3{X: 600, Y: 600, Z: 560})

	out, err := k.Cut(context.Background(), base, tool)
	if err != nil {
		t.Fatalf("cut failed: %v", err)
	}
	if got := out.Bounds().Max.Y; got != 582 {
		t.Errorf("expected trimmed height 582, got %f", got)
	}
	if got := out.Bounds().Size().X; got != 18 {
		t.Errorf("width should be untouched, got %f", got)
	}
}

func TestBoxKernelCutDisjointReturnsBase(t *testing.T) {
	k := BoxKernel{}
	base := NewBox(geom.Vec3{}, geom.Vec3{X: 10, Y: 10, Z: 10})
	tool := NewBox(geom.Vec3{X: 100, Y: 100, Z: 100}, geom.Vec3{X: 110, Y: 110, Z: 110})

	out, err := k.Cut(context.Background(), base, tool)
	if err != nil {
		t.Fatalf("cut failed: %v", err)
	}
	if out.Bounds() != base.Bounds() {
		t.Error("disjoint cut should return the base unchanged")
	}
}

func TestBoxKernelCutUnrepresentable(t *testing.T) {
	k := BoxKernel{}
	base := NewBox(geom.Vec3{}, geom.Vec3{X: 100, Y: 100, Z: 100})
	// A bar through the middle: would split the base in two.
	tool := NewBox(geom.Vec3{X: 40, Y: -10, Z: -10}, geom.Vec3{X: 60, Y: 110, Z: 110})

	_, err := k.Cut(context.Background(), base, tool)
	if err == nil {
		t.Fatal("expected error for non-box cut result")
	}
	var kerr *Error
	if !errors.As(err, &kerr) {
		t.Errorf("expected *kernel.Error, got %T", err)
	}
	if !errors.Is(err, ErrNotABox) {
		t.Errorf("expected ErrNotABox, got %v", err)
	}
}

func TestBoxKernelCutCancelledContext(t *testing.T) {
	k := BoxKernel{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	base := NewBox(geom.Vec3{}, geom.Vec3{X: 1, Y: 1, Z: 1})
	if _, err := k.Cut(ctx, base, base); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestBoxKernelToMeshGroupsIntoSixFaces(t *testing.T) {
	k := BoxKernel{}
	m, err := k.ToMesh(NewBox(geom.Vec3{}, geom.Vec3{X: 600, Y: 720, Z: 560}))
	if err != nil {
		t.Fatalf("toMesh failed: %v", err)
	}
	if m.TriangleCount() != 12 {
		t.Fatalf("expected 12 triangles, got %d", m.TriangleCount())
	}
	groups := mesh.GroupCoplanar(mesh.ExtractFaces(m), mesh.DefaultGroupTolerance())
	if len(groups) != 6 {
		t.Errorf("expected 6 coplanar groups, got %d", len(groups))
	}
}

func TestBoxKernelTranslate(t *testing.T) {
	k := BoxKernel{}
	b := NewBox(geom.Vec3{}, geom.Vec3{X: 10, Y: 10, Z: 10})
	out, err := k.Translate(b, geom.Vec3{Y: 100})
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if out.Bounds().Min.Y != 100 || out.Bounds().Max.Y != 110 {
		t.Errorf("unexpected translated bounds %+v", out.Bounds())
	}
}
