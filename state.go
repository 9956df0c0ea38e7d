package voyager

// StateVertex is the planner's continuous search-state vertex (spec.md
// 4.F): position, velocity, global time, remaining fuel and the set of
// collected artifacts. Two StateVertex values with identical Quantize
// output are treated as the same search node (state.go/quantizer.go
// split: StateVertex carries full precision, DiscreteState is the map
// key derived from it).
type StateVertex struct {
	X         Vec2
	V         Vec2
	TU        float64
	Fuel      float64
	Collected map[ArtifactID]struct{}
}

// NewStateVertex constructs a StateVertex with a fresh, empty Collected
// set (spec.md 4.F: the start vertex begins with no artifacts collected).
func NewStateVertex(x, v Vec2, tu, fuel float64) StateVertex {
	return StateVertex{X: x, V: v, TU: tu, Fuel: fuel, Collected: make(map[ArtifactID]struct{})}
}

// Valid reports whether s satisfies the StateVertex invariants of
// spec.md 4.F: fuel non-negative and global time within the horizon.
func (s StateVertex) Valid(tMax float64) bool {
	return s.Fuel >= 0 && s.TU <= tMax
}

// Clone returns a StateVertex sharing no mutable state with s, so an
// action model can derive a successor without aliasing the Collected set
// of its predecessor.
func (s StateVertex) Clone() StateVertex {
	collected := make(map[ArtifactID]struct{}, len(s.Collected))
	for id := range s.Collected {
		collected[id] = struct{}{}
	}
	return StateVertex{X: s.X, V: s.V, TU: s.TU, Fuel: s.Fuel, Collected: collected}
}

// WithArtifact returns a copy of s with id added to Collected (spec.md
// 4.F/4.E: collection is monotone -- artifacts are never un-collected).
func (s StateVertex) WithArtifact(id ArtifactID) StateVertex {
	next := s.Clone()
	next.Collected[id] = struct{}{}
	return next
}

// HasCollected reports whether id is already in s.Collected.
func (s StateVertex) HasCollected(id ArtifactID) bool {
	_, ok := s.Collected[id]
	return ok
}
