package model

import (
	"fmt"
	"math"

	"github.com/woodshop-tools/panelforge/internal/geom"
)

// JointConfig declares how panel conflicts at the four body corners are
// resolved. An expanded corner means the top/bottom panel keeps its full
// width there and the side panel is shortened; an unexpanded corner means
// the side panel runs full height and the top/bottom panel is narrowed.
type JointConfig struct {
	TopLeftExpanded     bool `json:"top_left_expanded"`
	TopRightExpanded    bool `json:"top_right_expanded"`
	BottomLeftExpanded  bool `json:"bottom_left_expanded"`
	BottomRightExpanded bool `json:"bottom_right_expanded"`

	// Per-role distances added to (Extend) or removed from (Shrink) the
	// synthesized panel along its primary extent.
	Extend RoleOffsets `json:"extend"`
	Shrink RoleOffsets `json:"shrink"`
}

// RoleOffsets holds a distance per assignable panel role, in mm.
type RoleOffsets struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Back   float64 `json:"back"`
}

// ByRole returns the offset for a role, 0 for roles without one.
func (o RoleOffsets) ByRole(r Role) float64 {
	switch r {
	case RoleLeft:
		return o.Left
	case RoleRight:
		return o.Right
	case RoleTop:
		return o.Top
	case RoleBottom:
		return o.Bottom
	case RoleBack:
		return o.Back
	default:
		return 0
	}
}

// DefaultJointConfig returns the documented fallback used when a profile
// has no stored joint configuration: all corners unexpanded (sides run
// full height) and no extra offsets.
func DefaultJointConfig() JointConfig {
	return JointConfig{}
}

// CornerExpanded returns the expansion flag for the corner shared by a side
// role and a horizontal role. Order of the arguments does not matter.
func (c JointConfig) CornerExpanded(a, b Role) bool {
	side, horz := a, b
	if !side.IsSide() {
		side, horz = horz, side
	}
	switch {
	case side == RoleLeft && horz == RoleTop:
		return c.TopLeftExpanded
	case side == RoleRight && horz == RoleTop:
		return c.TopRightExpanded
	case side == RoleLeft && horz == RoleBottom:
		return c.BottomLeftExpanded
	case side == RoleRight && horz == RoleBottom:
		return c.BottomRightExpanded
	default:
		return false
	}
}

// Validate rejects configurations that would synthesize inside-out panels.
func (c JointConfig) Validate() error {
	for _, v := range []float64{
		c.Extend.Left, c.Extend.Right, c.Extend.Top, c.Extend.Bottom, c.Extend.Back,
		c.Shrink.Left, c.Shrink.Right, c.Shrink.Top, c.Shrink.Bottom, c.Shrink.Back,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("joint config contains non-finite offset %f", v)
		}
		if v < 0 {
			return fmt.Errorf("joint config offsets must be >= 0, got %f", v)
		}
	}
	return nil
}

// BackPanelConfig controls the groove the back panel seats in.
type BackPanelConfig struct {
	Thickness    float64 `json:"thickness"`     // back panel thickness in mm
	GrooveOffset float64 `json:"groove_offset"` // inset from the rear face in mm
	GrooveDepth  float64 `json:"groove_depth"`  // enlargement per side in mm
	Clearance    float64 `json:"clearance"`     // allowance per side in mm
}

// DefaultBackPanelConfig returns the documented fallback for profiles
// without a stored back-panel configuration: a 3mm back seated 10mm from
// the rear face in a 6mm groove with 1mm of clearance.
func DefaultBackPanelConfig() BackPanelConfig {
	return BackPanelConfig{
		Thickness:    3,
		GrooveOffset: 10,
		GrooveDepth:  6,
		Clearance:    1,
	}
}

// PlinthConfig sizes the recessed base raising a floor-standing body.
type PlinthConfig struct {
	Height         float64 `json:"height"`          // mm
	FrontInset     float64 `json:"front_inset"`     // mm from the front face
	BackInset      float64 `json:"back_inset"`      // mm from the rear face
	PanelThickness float64 `json:"panel_thickness"` // mm
}

// DefaultPlinthConfig returns the standard 100mm plinth.
func DefaultPlinthConfig() PlinthConfig {
	return PlinthConfig{
		Height:         100,
		FrontInset:     50,
		BackInset:      30,
		PanelThickness: 18,
	}
}

// BodyType distinguishes floor-standing bodies (which carry a plinth) from
// hanging ones.
type BodyType int

const (
	BodyBase    BodyType = iota // floor-standing, requires a plinth
	BodyHanging                 // wall-mounted, no plinth
)

func (t BodyType) String() string {
	if t == BodyHanging {
		return "Hanging"
	}
	return "Base"
}

// RequiresPlinth reports whether bodies of this type stand on a plinth.
func (t BodyType) RequiresPlinth() bool {
	return t == BodyBase
}

// Body is the parent solid a panel set belongs to. The engine threads it
// through as a value; persistence ownership stays with the caller.
type Body struct {
	ID     string       `json:"id"`
	Type   BodyType     `json:"type"`
	Bounds geom.Box3    `json:"bounds"` // outer footprint of the solid
	Plinth PlinthConfig `json:"plinth"`
}
