package model

import "testing"

func TestRoleStringRoundTrip(t *testing.T) {
	for r := RoleNone; r <= RolePlinthBack; r++ {
		parsed, err := ParseRole(r.String())
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", r.String(), err)
		}
		if parsed != r {
			t.Errorf("round trip %s: got %s", r, parsed)
		}
	}
	if _, err := ParseRole("Shelf"); err == nil {
		t.Error("expected error for unknown role name")
	}
}

func TestRolePredicates(t *testing.T) {
	if !RoleLeft.IsSide() || !RoleRight.IsSide() {
		t.Error("left/right should be sides")
	}
	if RoleTop.IsSide() {
		t.Error("top is not a side")
	}
	if !RoleTop.IsHorizontal() || !RoleBottom.IsHorizontal() {
		t.Error("top/bottom should be horizontal")
	}
	if !RolePlinthFront.IsPlinth() || RolePlinthFront.Assignable() {
		t.Error("plinth roles are generated, not assignable")
	}
	if !RoleDoor.Assignable() {
		t.Error("door is assignable")
	}
	if RoleNone.Assignable() {
		t.Error("none is not assignable")
	}
}

func TestCornerExpandedMapping(t *testing.T) {
	cfg := JointConfig{TopLeftExpanded: true, BottomRightExpanded: true}

	cases := []struct {
		a, b Role
		want bool
	}{
		{RoleLeft, RoleTop, true},
		{RoleTop, RoleLeft, true}, // argument order must not matter
		{RoleRight, RoleTop, false},
		{RoleLeft, RoleBottom, false},
		{RoleRight, RoleBottom, true},
	}
	for _, c := range cases {
		if got := cfg.CornerExpanded(c.a, c.b); got != c.want {
			t.Errorf("CornerExpanded(%s, %s) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestJointConfigValidate(t *testing.T) {
	if err := DefaultJointConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	bad := DefaultJointConfig()
	bad.Shrink.Top = -3
	if err := bad.Validate(); err == nil {
		t.Error("negative shrink should be rejected")
	}
}

func TestNewPanelShortID(t *testing.T) {
	p := NewPanel("body-1", RoleLeft, 18)
	if len(p.ID) != 8 {
		t.Errorf("expected 8-char id, got %q", p.ID)
	}
	if p.ParentID != "body-1" || p.Role != RoleLeft || p.Thickness != 18 {
		t.Errorf("unexpected panel %+v", p)
	}
}

func TestBodyTypeRequiresPlinth(t *testing.T) {
	if !BodyBase.RequiresPlinth() {
		t.Error("base bodies stand on a plinth")
	}
	if BodyHanging.RequiresPlinth() {
		t.Error("hanging bodies have no plinth")
	}
}

func TestRoleOffsetsByRole(t *testing.T) {
	o := RoleOffsets{Left: 1, Right: 2, Top: 3, Bottom: 4, Back: 5}
	if o.ByRole(RoleTop) != 3 {
		t.Errorf("ByRole(Top) = %f", o.ByRole(RoleTop))
	}
	if o.ByRole(RoleDoor) != 0 {
		t.Error("roles without offsets should return 0")
	}
}
