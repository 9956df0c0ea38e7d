package voyager

// WormholeID uniquely identifies a WormHole within a WorldData.
type WormholeID uint32

// WormHole is the timed-portal entity of spec.md 3:
// {id, entry, exit, t_open < t_close}; isOpen(t) = t_open <= t <= t_close.
//
// The core (per spec.md 1 scope) only has to know whether a wormhole is
// open at a queried time and where its endpoints are; it does not
// implement teleportation -- that belongs to a future action model not
// named by this spec.
type WormHole struct {
	ID            WormholeID
	Entry, Exit   Vec2
	TOpen, TClose float64
}

// NewWormHole validates and constructs a WormHole.
func NewWormHole(id WormholeID, entry, exit Vec2, tOpen, tClose float64) (*WormHole, error) {
	if !(tOpen < tClose) {
		return nil, newConfigError("WormHole.TOpen/TClose", "t_open must be < t_close")
	}
	return &WormHole{ID: id, Entry: entry, Exit: exit, TOpen: tOpen, TClose: tClose}, nil
}

// IsOpen reports whether the wormhole is traversable at global time t.
func (w *WormHole) IsOpen(t float64) bool {
	return t >= w.TOpen && t <= w.TClose
}

// PositionAt satisfies the spatial-query convention shared by all entity
// kinds (world.go queries every kind by a PositionAt(t)-shaped accessor);
// a wormhole's "position" for radius queries is its static entry point,
// per spec.md 4.C ("wormhole entry position is static").
func (w *WormHole) PositionAt(t float64) Vec2 {
	return w.Entry
}
