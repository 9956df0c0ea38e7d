package voyager

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// Frontier is the pluggable exploration-order trait (spec.md 9): the
// reference solver is breadth-first (FIFO), but a priority-queue
// Frontier (e.g. cost-ordered) can be substituted without touching the
// search loop itself.
type Frontier interface {
	Push(DiscreteState)
	Pop() (DiscreteState, bool)
	Empty() bool
}

// FIFOFrontier is the reference Frontier: plain FIFO order, giving
// breadth-first search over the quantized state graph.
type FIFOFrontier struct {
	items []DiscreteState
}

// NewFIFOFrontier constructs an empty FIFOFrontier.
func NewFIFOFrontier() *FIFOFrontier { return &FIFOFrontier{} }

func (f *FIFOFrontier) Push(d DiscreteState) { f.items = append(f.items, d) }

func (f *FIFOFrontier) Pop() (DiscreteState, bool) {
	if len(f.items) == 0 {
		return DiscreteState{}, false
	}
	d := f.items[0]
	f.items = f.items[1:]
	return d, true
}

func (f *FIFOFrontier) Empty() bool { return len(f.items) == 0 }

// SolverResult is the outcome of a Solve call: the sequence of actions
// and the StateVertex reached by each, plus the accumulated cost
// (spec.md 4.I).
type SolverResult struct {
	Found     bool
	Path      []Action
	States    []StateVertex
	TotalCost float64
}

// Solver is the spec.md 4.I reference graph search: breadth-first over
// states quantized to DiscreteState, visiting each DiscreteState at
// most once, until a state with at least K collected artifacts is
// found.
//
// Grounded on katalvlaran/lvlath/bfs's walker vocabulary (queue, visited
// map, parent map) for the search loop shape, and on lvlath/core.Graph
// as an explored-state ledger recording every vertex and edge the search
// discovers -- used directly rather than through bfs.BFS, since that
// walker assumes a graph whose neighbors are all known via one
// NeighborIDs call, while here successors are produced lazily by
// RK4-integrating an ActionModel.
type Solver struct {
	Actions ActionModel
	Quant   QuantizationConfig
	K       int
	// MaxCost is an optional advisory pruning bound: a successor whose
	// accumulated cost would exceed it is discarded after Apply, before it
	// is recorded or queued. MaxCost<=0 disables it (spec.md 9 Open
	// Question: off by default).
	MaxCost float64

	ledger *core.Graph
}

// NewSolver constructs a Solver.
func NewSolver(actions ActionModel, quant QuantizationConfig, k int, maxCost float64) (*Solver, error) {
	if k < 0 {
		return nil, newConfigError("Solver.K", "must be >= 0")
	}
	ledger := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	return &Solver{Actions: actions, Quant: quant, K: k, MaxCost: maxCost, ledger: ledger}, nil
}

// Ledger returns the graph recording every state and transition the most
// recent Solve call discovered, for inspection or visualization.
func (s *Solver) Ledger() *core.Graph { return s.ledger }

func dsKey(d DiscreteState) string {
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d,%s", d.QX, d.QY, d.QVX, d.QVY, d.QT, d.QF, d.Coll)
}

// Solve runs breadth-first search from start until a vertex with at
// least K collected artifacts is reached, the frontier is exhausted, or
// ctx is cancelled (spec.md 4.I). The start vertex is never inserted
// into the parent map (spec.md 9), so path reconstruction naturally
// terminates there.
func (s *Solver) Solve(ctx context.Context, start StateVertex, frontier Frontier) (*SolverResult, error) {
	startDS := Quantize(start, s.Quant)
	s.ledger = core.NewGraph(core.WithDirected(true), core.WithWeighted())

	visited := map[DiscreteState]StateVertex{startDS: start}
	parent := map[DiscreteState]DiscreteState{}
	parentAction := map[DiscreteState]Action{}
	cost := map[DiscreteState]float64{startDS: 0}

	if err := s.ledger.AddVertex(dsKey(startDS)); err != nil {
		return nil, fmt.Errorf("voyager: seeding solver ledger: %w", err)
	}

	frontier.Push(startDS)

	for !frontier.Empty() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		cur, ok := frontier.Pop()
		if !ok {
			break
		}
		curState := visited[cur]

		if len(curState.Collected) >= s.K {
			return s.reconstruct(cur, visited, parent, parentAction, cost), nil
		}

		for _, action := range s.Actions.Enumerate(curState) {
			next, err := s.Actions.Apply(curState, action)
			if err != nil {
				continue
			}
			nds := Quantize(*next, s.Quant)
			if _, seen := visited[nds]; seen {
				continue
			}
			newCost := cost[cur] + action.Cost()
			if s.MaxCost > 0 && newCost > s.MaxCost {
				continue
			}

			visited[nds] = *next
			parent[nds] = cur
			parentAction[nds] = action
			cost[nds] = newCost

			if !s.ledger.HasVertex(dsKey(nds)) {
				if err := s.ledger.AddVertex(dsKey(nds)); err != nil {
					return nil, fmt.Errorf("voyager: recording solver vertex: %w", err)
				}
			}
			if _, err := s.ledger.AddEdge(dsKey(cur), dsKey(nds), int64(action.Cost()*1e6)); err != nil {
				return nil, fmt.Errorf("voyager: recording solver edge: %w", err)
			}

			frontier.Push(nds)
		}
	}

	return &SolverResult{Found: false}, nil
}

func (s *Solver) reconstruct(goal DiscreteState, visited map[DiscreteState]StateVertex, parent map[DiscreteState]DiscreteState, parentAction map[DiscreteState]Action, cost map[DiscreteState]float64) *SolverResult {
	var path []Action
	var states []StateVertex

	cur := goal
	for {
		states = append([]StateVertex{visited[cur]}, states...)
		p, ok := parent[cur]
		if !ok {
			break
		}
		path = append([]Action{parentAction[cur]}, path...)
		cur = p
	}

	return &SolverResult{
		Found:     true,
		Path:      path,
		States:    states,
		TotalCost: cost[goal],
	}
}
