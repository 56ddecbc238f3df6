// Package model holds the shared value types of the panel engine: semantic
// face roles, synthesized panels, and the joint/back-panel/plinth
// configuration records.
package model

import "fmt"

// Role is the semantic tag a user assigns to a planar face group. It drives
// which synthesis conventions apply and who wins a joint conflict.
type Role int

const (
	RoleNone   Role = iota // Unassigned face
	RoleLeft               // Left side panel, extrudes along X
	RoleRight              // Right side panel, extrudes along X
	RoleTop                // Top panel, extrudes along Y
	RoleBottom             // Bottom panel, extrudes along Y
	RoleBack               // Back panel, extrudes along Z, seats in a groove
	RoleDoor               // Door front; never participates in joint dominance

	// Plinth support panels are generated, not assigned; they carry their
	// own roles so the resolver can delete-and-recreate them.
	RolePlinthFront
	RolePlinthBack
)

func (r Role) String() string {
	switch r {
	case RoleLeft:
		return "Left"
	case RoleRight:
		return "Right"
	case RoleTop:
		return "Top"
	case RoleBottom:
		return "Bottom"
	case RoleBack:
		return "Back"
	case RoleDoor:
		return "Door"
	case RolePlinthFront:
		return "PlinthFront"
	case RolePlinthBack:
		return "PlinthBack"
	default:
		return "None"
	}
}

// ParseRole converts a persisted role name back to a Role.
func ParseRole(s string) (Role, error) {
	for r := RoleNone; r <= RolePlinthBack; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return RoleNone, fmt.Errorf("unknown role %q", s)
}

// IsSide reports whether the role is a vertical side panel.
func (r Role) IsSide() bool {
	return r == RoleLeft || r == RoleRight
}

// IsHorizontal reports whether the role is a top or bottom panel.
func (r Role) IsHorizontal() bool {
	return r == RoleTop || r == RoleBottom
}

// IsPlinth reports whether the role is a generated plinth support panel.
func (r Role) IsPlinth() bool {
	return r == RolePlinthFront || r == RolePlinthBack
}

// Assignable reports whether the role can be assigned to a face group by a
// user. Exactly one face group per parent solid may carry each assignable
// role.
func (r Role) Assignable() bool {
	return r >= RoleLeft && r <= RoleDoor
}
