package mesh

import "github.com/woodshop-tools/panelforge/internal/geom"

// FaceDescriptor is an orientation/position fingerprint that re-locates a
// face group after the parent solid has been rescaled or remeshed. The
// center is stored as a 0..1 fraction of the parent bounding box per axis,
// so the descriptor survives dimension edits.
type FaceDescriptor struct {
	Normal   geom.Vec3 `json:"normal"`
	Fraction geom.Vec3 `json:"fraction"`
}

// matchNormalGate is the minimum normal alignment for a candidate group to
// be considered at all.
const matchNormalGate = 0.9

// DescribeFace fingerprints a group relative to the parent solid's bounds.
// Axes with zero extent record the midpoint fraction 0.5.
func DescribeFace(g FaceGroup, parentBounds geom.Box3) FaceDescriptor {
	size := parentBounds.Size()
	rel := g.Center.Sub(parentBounds.Min)
	return FaceDescriptor{
		Normal: g.Normal,
		Fraction: geom.Vec3{
			X: axisFraction(rel.X, size.X),
			Y: axisFraction(rel.Y, size.Y),
			Z: axisFraction(rel.Z, size.Z),
		},
	}
}

func axisFraction(rel, size float64) float64 {
	if size == 0 {
		return 0.5
	}
	return rel / size
}

// MatchFace re-locates the group a descriptor was taken from in a freshly
// extracted group list. The descriptor's fraction is denormalized into the
// new bounds; candidates must align with the stored normal (dot > 0.9) and
// are scored by alignment weighted with inverse distance to the
// denormalized center. Returns nil when no candidate passes the gate;
// callers must treat that as "feature stale", never as fatal.
func MatchFace(desc FaceDescriptor, groups []FaceGroup, parentBounds geom.Box3) *FaceGroup {
	size := parentBounds.Size()
	target := geom.Vec3{
		X: parentBounds.Min.X + desc.Fraction.X*size.X,
		Y: parentBounds.Min.Y + desc.Fraction.Y*size.Y,
		Z: parentBounds.Min.Z + desc.Fraction.Z*size.Z,
	}

	best := -1
	bestScore := 0.0
	for i, g := range groups {
		align := desc.Normal.Dot(g.Normal)
		if align <= matchNormalGate {
			continue
		}
		score := align / (1 + g.Center.Dist(target))
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		return nil
	}
	return &groups[best]
}
