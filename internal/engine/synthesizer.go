// Package engine is the control core of the panel designer: it synthesizes
// physical panels from tagged face groups and resolves the joint conflicts
// between them. All computation here is synchronous over immutable input
// snapshots; only the kernel cut calls block.
package engine

import (
	"fmt"
	"sort"

	"github.com/woodshop-tools/panelforge/internal/geom"
	"github.com/woodshop-tools/panelforge/internal/kernel"
	"github.com/woodshop-tools/panelforge/internal/mesh"
	"github.com/woodshop-tools/panelforge/internal/model"
)

// Synthesizer turns tagged face groups into offset-extruded panel shells.
type Synthesizer struct {
	Tol mesh.GroupTolerance
}

// NewSynthesizer returns a synthesizer with default grouping tolerances.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{Tol: mesh.DefaultGroupTolerance()}
}

// extremeEps is the tolerance for deciding that a vertex lies on a face
// group's bounding extreme and therefore moves under an edge adjustment.
const extremeEps = 1e-6

// SynthesizePanels builds one panel per tagged face group of the body mesh.
// Each panel extrudes inward from its face plane by the given thickness
// (the back panel uses the back-panel config thickness instead) and carries
// the neighbor adjustments dictated by the joint configuration: unexpanded
// corners narrow the top/bottom panel by the side thickness, expanded
// corners shorten the side panel instead, and plinth bodies shorten the
// sides by the plinth height.
func (s *Synthesizer) SynthesizePanels(body model.Body, m mesh.TriangleMesh, roles map[int]model.Role, thickness float64, jc model.JointConfig, bc model.BackPanelConfig) ([]model.Panel, error) {
	if err := jc.Validate(); err != nil {
		return nil, err
	}

	faces := mesh.ExtractFaces(m)
	groups := mesh.GroupCoplanar(faces, s.Tol)

	// Role assignments must be 1:1 per parent solid.
	assigned := make(map[model.Role]int)
	indices := make([]int, 0, len(roles))
	for idx, role := range roles {
		if !role.Assignable() {
			return nil, fmt.Errorf("face %d: role %s cannot be assigned", idx, role)
		}
		if idx < 0 || idx >= len(groups) {
			return nil, fmt.Errorf("face index %d out of range (%d groups)", idx, len(groups))
		}
		if prev, dup := assigned[role]; dup {
			return nil, fmt.Errorf("role %s assigned to faces %d and %d", role, prev, idx)
		}
		assigned[role] = idx
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	present := func(r model.Role) bool { _, ok := assigned[r]; return ok }

	panels := make([]model.Panel, 0, len(indices))
	for _, idx := range indices {
		role := roles[idx]
		t := thickness
		if role == model.RoleBack {
			t = bc.Thickness
		}
		adj, inset := adjustmentsFor(role, present, thickness, jc, bc, body)
		p := s.synthesizeShell(body, groups[idx], faces, role, t, adj, inset)
		panels = append(panels, p)
	}
	return panels, nil
}

// adjustmentsFor derives the per-role shrink record and rear inset.
// presentRole reports whether a neighboring role is assigned at all; a
// missing neighbor never shrinks anything.
func adjustmentsFor(role model.Role, present func(model.Role) bool, thickness float64, jc model.JointConfig, bc model.BackPanelConfig, body model.Body) (model.Adjustments, float64) {
	var adj model.Adjustments
	var inset float64

	switch {
	case role.IsSide():
		if body.Type.RequiresPlinth() {
			adj.HeightShrink.Bottom += body.Plinth.Height
		}
		if present(model.RoleTop) && jc.CornerExpanded(role, model.RoleTop) {
			adj.HeightShrink.Top += thickness
		}
		if present(model.RoleBottom) && jc.CornerExpanded(role, model.RoleBottom) {
			adj.HeightShrink.Bottom += thickness
		}
		delta := jc.Extend.ByRole(role) - jc.Shrink.ByRole(role)
		adj.HeightShrink.Top -= delta / 2
		adj.HeightShrink.Bottom -= delta / 2

	case role.IsHorizontal():
		if present(model.RoleLeft) && !jc.CornerExpanded(model.RoleLeft, role) {
			adj.WidthShrink.Left += thickness
		}
		if present(model.RoleRight) && !jc.CornerExpanded(model.RoleRight, role) {
			adj.WidthShrink.Right += thickness
		}
		delta := jc.Extend.ByRole(role) - jc.Shrink.ByRole(role)
		adj.WidthShrink.Left -= delta / 2
		adj.WidthShrink.Right -= delta / 2

	case role == model.RoleBack:
		// Enlarged by the groove depth per side, reduced by the clearance
		// allowance per side, and inset from the rear face by the groove
		// offset.
		edge := bc.Clearance - bc.GrooveDepth
		adj.WidthShrink.Left = edge
		adj.WidthShrink.Right = edge
		adj.HeightShrink.Top = edge
		adj.HeightShrink.Bottom = edge
		delta := jc.Extend.ByRole(role) - jc.Shrink.ByRole(role)
		adj.WidthShrink.Left -= delta / 2
		adj.WidthShrink.Right -= delta / 2
		inset = bc.GrooveOffset
	}
	return adj, inset
}

// synthesizeShell builds the extruded shell for one face group: an outer
// sheet at the (adjusted) face plane, an inner sheet offset inward by the
// panel thickness, and side walls stitched along the group's boundary
// edges. Panels always build into the solid, so the extrusion direction is
// the negated group normal.
func (s *Synthesizer) synthesizeShell(body model.Body, g mesh.FaceGroup, faces []mesh.FaceRecord, role model.Role, thickness float64, adj model.Adjustments, inset float64) model.Panel {
	inward := g.Normal.Scale(-1)
	shift := inward.Scale(inset)

	// Outer sheet: group triangles with edge adjustments applied.
	outer := make([]mesh.FaceRecord, 0, len(g.Triangles))
	for _, ti := range g.Triangles {
		f := faces[ti]
		var rec mesh.FaceRecord
		for i, v := range f.Verts {
			rec.Verts[i] = applyAdjustments(v, g.Bounds, adj).Add(shift)
		}
		outer = append(outer, rec)
	}

	offset := inward.Scale(thickness)
	var shell mesh.TriangleMesh
	for _, f := range outer {
		// Outer face keeps its winding, inner face is reversed so both
		// sheets face out of the shell.
		shell.Positions = append(shell.Positions, f.Verts[0], f.Verts[1], f.Verts[2])
		shell.Positions = append(shell.Positions,
			f.Verts[2].Add(offset), f.Verts[1].Add(offset), f.Verts[0].Add(offset))
	}
	for _, e := range mesh.BoundaryEdgesOf(outer) {
		a, b := e.A, e.B
		ai, bi := a.Add(offset), b.Add(offset)
		shell.Positions = append(shell.Positions, a, b, bi)
		shell.Positions = append(shell.Positions, a, bi, ai)
	}

	p := model.NewPanel(body.ID, role, thickness)
	p.Shell = shell
	bounds := shell.Bounds()
	p.SetGeometry(kernel.NewBox(bounds.Min, bounds.Max))
	return p
}

// applyAdjustments moves vertices sitting on a bounding extreme inward by
// the configured distance. Width is the X axis, height the Y axis; the
// depth shrink applies at the front (max Z) edge. Negative distances move
// outward, extending the panel.
func applyAdjustments(v geom.Vec3, b geom.Box3, adj model.Adjustments) geom.Vec3 {
	if v.X >= b.Max.X-extremeEps {
		v.X -= adj.WidthShrink.Right
	} else if v.X <= b.Min.X+extremeEps {
		v.X += adj.WidthShrink.Left
	}
	if v.Y >= b.Max.Y-extremeEps {
		v.Y -= adj.HeightShrink.Top
	} else if v.Y <= b.Min.Y+extremeEps {
		v.Y += adj.HeightShrink.Bottom
	}
	if v.Z >= b.Max.Z-extremeEps {
		v.Z -= adj.DepthShrink
	}
	return v
}
