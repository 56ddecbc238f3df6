package model

import (
	"github.com/google/uuid"

	"github.com/woodshop-tools/panelforge/internal/geom"
	"github.com/woodshop-tools/panelforge/internal/kernel"
	"github.com/woodshop-tools/panelforge/internal/mesh"
)

// Panel is a physical panel synthesized from a tagged face group: an
// offset-extruded shell plus the state the joint resolver needs.
//
// Original is the untrimmed geometry. It is captured once, at creation or
// at the first pending trim, and never overwritten afterwards; every trim
// starts from it so repeated resolution cannot compound error.
type Panel struct {
	ID        string  `json:"id"`
	ParentID  string  `json:"parent_id"`
	Role      Role    `json:"role"`
	Thickness float64 `json:"thickness"`

	Geometry kernel.Solid `json:"-"`
	Original kernel.Solid `json:"-"`

	Shell    mesh.TriangleMesh `json:"-"`
	Bounds   geom.Box3         `json:"bounds"`   // footprint in the parent frame
	Position geom.Vec3         `json:"position"` // footprint center

	JointTrimmed bool `json:"joint_trimmed"`
}

// NewPanel returns a panel with a fresh short id.
func NewPanel(parentID string, role Role, thickness float64) Panel {
	return Panel{
		ID:        uuid.New().String()[:8],
		ParentID:  parentID,
		Role:      role,
		Thickness: thickness,
	}
}

// SetGeometry replaces the panel's current geometry and rederives the
// footprint.
func (p *Panel) SetGeometry(s kernel.Solid) {
	p.Geometry = s
	p.Bounds = s.Bounds()
	p.Position = p.Bounds.Center()
}

// CaptureOriginal records the untrimmed geometry if it has not been
// captured yet.
func (p *Panel) CaptureOriginal() {
	if p.Original == nil {
		p.Original = p.Geometry
	}
}

// Adjustments are the neighbor-driven shrink distances applied during
// synthesis, before any joint trimming. Negative values extend instead,
// which the back-panel groove enlarge relies on.
type Adjustments struct {
	WidthShrink  WidthShrink  `json:"width_shrink"`
	HeightShrink HeightShrink `json:"height_shrink"`
	DepthShrink  float64      `json:"depth_shrink"`
}

// WidthShrink reduces the panel's in-plane X extent per side.
type WidthShrink struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// HeightShrink reduces the panel's vertical extent per end.
type HeightShrink struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}
