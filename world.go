package voyager

// WorldIndex is the capability trait for spatial queries (spec.md 4.C),
// replacing an inheritance hierarchy of index implementations with a
// pluggable interface per spec.md 9. The reference implementation
// (WorldData below) is a linear scan; a uniform-grid or R-tree index can
// be substituted as long as it returns identical results on ties.
type WorldIndex interface {
	QueryCelestials(x Vec2, r, tu float64) []*CelestialBody
	QueryWormHoles(x Vec2, r, tu float64) []*WormHole
	QueryArtifacts(x Vec2, r, tu float64) []*Artifact
}

// WorldData owns every entity for the lifetime of a run (spec.md 3/5:
// "constructed once, then treated as immutable during search"). It is
// the spec.md 4.C linear-scan reference WorldIndex.
//
// Grounded on the teacher's model of celestial bodies as a flat,
// by-reference collection (celestial.go's package-level Sun/Earth/.../
// vars), generalized into an owned, queryable collection per body kind
// instead of global variables, per spec.md 9's "arena plus integer
// handles" note -- BodyID/WormholeID/ArtifactID already play that role.
type WorldData struct {
	Bodies    []*CelestialBody
	Wormholes []*WormHole
	Artifacts []*Artifact
	MaxRadius float64
}

// NewWorldData validates and constructs a WorldData.
func NewWorldData(bodies []*CelestialBody, wormholes []*WormHole, artifacts []*Artifact, maxRadius float64) (*WorldData, error) {
	if maxRadius <= 0 {
		return nil, newConfigError("WorldData.MaxRadius", "must be > 0")
	}
	return &WorldData{Bodies: bodies, Wormholes: wormholes, Artifacts: artifacts, MaxRadius: maxRadius}, nil
}

// QueryCelestials returns every body whose position at tu lies within r of
// x (spec.md 4.C).
func (w *WorldData) QueryCelestials(x Vec2, r, tu float64) []*CelestialBody {
	out := make([]*CelestialBody, 0)
	for _, b := range w.Bodies {
		if Norm2(x.Sub(b.PositionAt(tu))) <= r {
			out = append(out, b)
		}
	}
	return out
}

// QueryWormHoles returns every wormhole whose (static) entry position lies
// within r of x (spec.md 4.C). Openness at tu is a separate predicate
// (WormHole.IsOpen); the spatial query does not filter on it, matching
// spec.md 4.C which only specifies position-based radius filtering here.
func (w *WorldData) QueryWormHoles(x Vec2, r, tu float64) []*WormHole {
	out := make([]*WormHole, 0)
	for _, wh := range w.Wormholes {
		if Norm2(x.Sub(wh.PositionAt(tu))) <= r {
			out = append(out, wh)
		}
	}
	return out
}

// QueryArtifacts returns every artifact within r of x (spec.md 4.C).
func (w *WorldData) QueryArtifacts(x Vec2, r, tu float64) []*Artifact {
	out := make([]*Artifact, 0)
	for _, a := range w.Artifacts {
		if Norm2(x.Sub(a.PositionAt(tu))) <= r {
			out = append(out, a)
		}
	}
	return out
}
