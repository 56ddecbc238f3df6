package engine

import (
	"context"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/woodshop-tools/panelforge/internal/geom"
	"github.com/woodshop-tools/panelforge/internal/kernel"
	"github.com/woodshop-tools/panelforge/internal/model"
)

// overlapTol is the minimum footprint intersection volume (mm³) for two
// panels to be considered in conflict.
const overlapTol = 1e-6

// Resolver detects joint conflicts between a body's panels and trims the
// subordinate panel of each conflict against the dominant one. It is
// re-entered on every role-set or dimension change and is idempotent:
// every trim starts from the panel's original geometry, so resolving twice
// with unchanged inputs yields bit-identical output.
//
// Overlapping invocations for the same parent solid are serialized
// internally; concurrent kernel cuts are never issued.
type Resolver struct {
	kernel kernel.Kernel
	log    *zap.Logger

	mu   sync.Mutex
	busy map[string]*sync.Mutex
}

// NewResolver returns a resolver using the given kernel. A nil logger is
// replaced with a no-op one.
func NewResolver(k kernel.Kernel, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		kernel: k,
		log:    log,
		busy:   make(map[string]*sync.Mutex),
	}
}

// Dominant returns the role that stays untrimmed when panels of roles a and
// b collide, and whether any dominance exists at all:
//
//   - equal roles, Door, or plinth support panels: none
//   - side × top/bottom: the shared corner's expansion flag decides;
//     expanded means the top/bottom panel wins, unexpanded the side
//   - back × any of left/right/top/bottom: the non-back role wins
func Dominant(a, b model.Role, cfg model.JointConfig) (model.Role, bool) {
	if a == b || a == model.RoleDoor || b == model.RoleDoor || a.IsPlinth() || b.IsPlinth() {
		return model.RoleNone, false
	}
	switch {
	case a.IsSide() && b.IsHorizontal(), a.IsHorizontal() && b.IsSide():
		side, horz := a, b
		if !side.IsSide() {
			side, horz = horz, side
		}
		if cfg.CornerExpanded(side, horz) {
			return horz, true
		}
		return side, true
	case a == model.RoleBack && (b.IsSide() || b.IsHorizontal()):
		return b, true
	case b == model.RoleBack && (a.IsSide() || a.IsHorizontal()):
		return a, true
	default:
		return model.RoleNone, false
	}
}

// Resolve runs one full joint-resolution pass over the body's panel set and
// returns a new panel slice; the input is never mutated. A failed kernel
// cut is logged and skips only that panel's update for the round; the rest
// of the pass proceeds, leaving the failed panel in its last-known-good
// state.
func (r *Resolver) Resolve(ctx context.Context, body model.Body, panels []model.Panel, cfg model.JointConfig) []model.Panel {
	lock := r.parentLock(body.ID)
	lock.Lock()
	defer lock.Unlock()

	out := make([]model.Panel, len(panels))
	copy(out, panels)

	// Dominance pass: each subordinate accumulates the ids of every
	// dominant panel that must cut it, in discovery order.
	pending := make(map[string][]string)
	byID := make(map[string]*model.Panel, len(out))
	for i := range out {
		byID[out[i].ID] = &out[i]
	}
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			a, b := &out[i], &out[j]
			winner, ok := Dominant(a.Role, b.Role, cfg)
			if !ok || !footprintsOverlap(a, b) {
				continue
			}
			dom, sub := a, b
			if winner == b.Role {
				dom, sub = b, a
			}
			pending[sub.ID] = append(pending[sub.ID], dom.ID)
		}
	}

	// Capture originals before snapshotting cut tools so that a panel that
	// is both dominant and subordinate presents a stable tool across
	// passes.
	for id := range pending {
		byID[id].CaptureOriginal()
	}
	tools := make(map[string]kernel.Solid, len(out))
	for i := range out {
		p := &out[i]
		if p.Original != nil {
			tools[p.ID] = p.Original
		} else {
			tools[p.ID] = p.Geometry
		}
	}

	// Trim pass. Cuts are awaited one at a time; the kernel session is not
	// assumed safe for concurrent booleans.
	for i := range out {
		p := &out[i]
		cuts := pending[p.ID]
		if len(cuts) == 0 {
			continue
		}
		geomNow := p.Original
		failed := false
		for _, domID := range cuts {
			next, err := r.kernel.Cut(ctx, geomNow, tools[domID])
			if err != nil {
				r.log.Warn("joint cut failed, keeping prior geometry",
					zap.String("parent", body.ID),
					zap.String("panel", p.ID),
					zap.Stringer("role", p.Role),
					zap.String("dominant", domID),
					zap.Error(err))
				failed = true
				break
			}
			geomNow = next
		}
		if failed {
			continue
		}
		p.SetGeometry(geomNow)
		p.JointTrimmed = true
		r.refreshShell(p)
	}

	// Restore pass: previously trimmed panels with no pending cuts this
	// round return to their original geometry.
	for i := range out {
		p := &out[i]
		if p.JointTrimmed && p.Original != nil && len(pending[p.ID]) == 0 {
			p.SetGeometry(p.Original)
			p.JointTrimmed = false
			r.refreshShell(p)
		}
	}

	out = r.applyPlinth(body, out)
	return out
}

// applyPlinth raises bottom panels onto the plinth and regenerates the
// plinth support panels from the body's outer footprint. The bottom offset
// is target-absolute (bottom face at body bottom + plinth height), so
// re-running the pass moves nothing.
func (r *Resolver) applyPlinth(body model.Body, panels []model.Panel) []model.Panel {
	kept := panels[:0]
	for _, p := range panels {
		if !p.Role.IsPlinth() {
			kept = append(kept, p)
		}
	}
	panels = kept

	if !body.Type.RequiresPlinth() {
		return panels
	}

	targetY := body.Bounds.Min.Y + body.Plinth.Height
	for i := range panels {
		p := &panels[i]
		if p.Role != model.RoleBottom {
			continue
		}
		delta := targetY - p.Bounds.Min.Y
		if math.Abs(delta) <= overlapTol {
			continue
		}
		moved, err := r.kernel.Translate(p.Geometry, geom.Vec3{Y: delta})
		if err != nil {
			r.log.Warn("plinth offset failed, keeping prior geometry",
				zap.String("parent", body.ID),
				zap.String("panel", p.ID),
				zap.Error(err))
			continue
		}
		p.SetGeometry(moved)
		r.refreshShell(p)
	}

	sideThickness := 0.0
	for _, p := range panels {
		if p.Role.IsSide() {
			sideThickness = p.Thickness
			break
		}
	}
	supports := GeneratePlinth(body, sideThickness)
	for i := range supports {
		r.refreshShell(&supports[i])
	}
	return append(panels, supports...)
}

// refreshShell re-triangulates a panel whose geometry just changed so the
// render mesh does not go stale. A meshing failure is not fatal; the panel
// keeps its previous shell.
func (r *Resolver) refreshShell(p *model.Panel) {
	shell, err := r.kernel.ToMesh(p.Geometry)
	if err != nil {
		r.log.Warn("panel remesh failed, keeping prior shell",
			zap.String("panel", p.ID),
			zap.Error(err))
		return
	}
	p.Shell = shell
}

func (r *Resolver) parentLock(parentID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.busy[parentID]
	if !ok {
		l = &sync.Mutex{}
		r.busy[parentID] = l
	}
	return l
}

// footprintsOverlap reports whether two panel footprints intersect above
// tolerance. Footprints are taken from the untrimmed geometry when it has
// been captured: a panel that was already cut back must keep conflicting
// with its dominant neighbor, otherwise the next pass would restore it and
// resolution would oscillate.
func footprintsOverlap(a, b *model.Panel) bool {
	inter := footprint(a).Intersection(footprint(b))
	if inter.IsEmpty() {
		return false
	}
	return inter.Volume() > overlapTol
}

func footprint(p *model.Panel) geom.Box3 {
	if p.Original != nil {
		return p.Original.Bounds()
	}
	return p.Bounds
}
