// Package kernel defines the narrow interface to the boundary-representation
// solid modeler the engine consumes, plus an exact axis-aligned box
// implementation used by tests and the CLI demo. The engine never depends on
// a concrete kernel: constructing true B-rep solids is out of scope here.
package kernel

import (
	"context"
	"fmt"

	"github.com/woodshop-tools/panelforge/internal/geom"
	"github.com/woodshop-tools/panelforge/internal/mesh"
)

// Solid is an opaque handle to a kernel-owned solid body. The engine only
// ever needs its bounding box; everything else goes back through the Kernel.
type Solid interface {
	Bounds() geom.Box3
}

// EdgeSelector picks edges of a solid for fillet operations.
type EdgeSelector func(a, b geom.Vec3) bool

// Kernel is the boolean/meshing collaborator. Cut calls may be slow and are
// context-aware; callers must await them sequentially, since concurrent cuts
// against the same kernel session are not assumed safe.
type Kernel interface {
	// Cut returns base minus tool. The inputs are not mutated.
	Cut(ctx context.Context, base, tool Solid) (Solid, error)
	// Fillet rounds the selected edges of a solid.
	Fillet(ctx context.Context, s Solid, sel EdgeSelector) (Solid, error)
	// Translate returns the solid shifted by delta.
	Translate(s Solid, delta geom.Vec3) (Solid, error)
	// ToMesh triangulates a solid.
	ToMesh(s Solid) (mesh.TriangleMesh, error)
}

// Error wraps a kernel failure with the operation that produced it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("kernel %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
