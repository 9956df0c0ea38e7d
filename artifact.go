package voyager

// ArtifactID uniquely identifies an Artifact within a WorldData.
type ArtifactID uint32

// Artifact is the stationary collectible entity of spec.md 3:
// {id, position}.
type Artifact struct {
	ID       ArtifactID
	Position Vec2
}

// NewArtifact constructs an Artifact. Artifacts have no invariants beyond
// carrying an id and a position, so construction cannot fail; the
// constructor exists for symmetry with the other entity kinds and as the
// one place a future invariant would be added.
func NewArtifact(id ArtifactID, pos Vec2) *Artifact {
	return &Artifact{ID: id, Position: pos}
}

// PositionAt satisfies the shared spatial-query accessor convention; an
// artifact's position does not depend on time (spec.md 4.C: "artifact
// position is static").
func (a *Artifact) PositionAt(t float64) Vec2 {
	return a.Position
}
