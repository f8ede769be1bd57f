package corridor

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/PennIARC/GridTesting/distfield"
	"github.com/PennIARC/GridTesting/terrain"
)

// Search finds the shortest start-to-exit path over g that keeps width W clear
// of visible mines (per visible) except for at most budget crossed mines.
//
// Preconditions and validation (in order):
//  1. g and visible must be non-nil (ErrNilGrid, ErrNilField).
//  2. visible must cover g exactly (ErrDimension).
//  3. width ≥ 0, budget ≥ 0 (ErrInvalidWidth, ErrInvalidBudget).
//  4. options must be valid (ErrOptionViolation).
//
// A context cancellation returns ctx.Err(). Everything else, including an
// exhausted expansion cap, yields a Result.
func Search(g *terrain.Grid, visible *distfield.Field, width, budget int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if visible == nil {
		return nil, ErrNilField
	}
	if visible.Width != g.Width || visible.Height != g.Height {
		return nil, fmt.Errorf("Search: field %dx%d, grid %dx%d: %w",
			visible.Width, visible.Height, g.Width, g.Height, ErrDimension)
	}
	if width < 0 {
		return nil, fmt.Errorf("Search: width=%d: %w", width, ErrInvalidWidth)
	}
	if budget < 0 {
		return nil, fmt.Errorf("Search: budget=%d: %w", budget, ErrInvalidBudget)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner{
		grid:    g,
		field:   visible,
		width:   width,
		budget:  budget,
		opts:    o,
		sets:    newSetTable(visible.Sources()),
		best:    make(map[stateKey]int32),
		res:     &Result{},
		goal:    g.End(),
		goalIdx: int32(g.Index(g.End().X, g.End().Y)),
	}
	if !r.init() {
		return r.res, nil
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// stateKey identifies a search state: a cell and an interned violated set.
type stateKey struct {
	cell int32
	set  int32
}

// node is one recorded arrival at a state; parent indexes runner.nodes.
type node struct {
	stateKey
	g      int32
	parent int32
}

// runner holds the mutable state for a single search.
type runner struct {
	grid    *terrain.Grid
	field   *distfield.Field
	width   int
	budget  int
	opts    Options
	sets    *setTable
	best    map[stateKey]int32 // lowest g seen per state
	nodes   []node
	pq      nodePQ
	seq     uint64
	res     *Result
	goal    terrain.Point
	goalIdx int32
}

// init seeds the frontier with the start state. It returns false when the
// start cell alone already exceeds the budget.
func (r *runner) init() bool {
	start := r.grid.Start()
	cell := r.grid.Index(start.X, start.Y)
	set := int32(0)
	if id, ok := r.field.WithinAt(cell, r.width); ok {
		set = r.sets.add(set, id)
	}
	if r.sets.sizes[set] > r.budget {
		return false
	}
	heap.Init(&r.pq)
	r.push(stateKey{cell: int32(cell), set: set}, 0, -1)
	return true
}

// push records a new arrival and queues it with priority g + h.
func (r *runner) push(k stateKey, g int32, parent int32) {
	r.best[k] = g
	r.nodes = append(r.nodes, node{stateKey: k, g: g, parent: parent})
	p := r.grid.Coordinate(int(k.cell))
	heap.Push(&r.pq, &pqItem{
		node: int32(len(r.nodes) - 1),
		f:    float64(g) + heuristic(p, r.goal),
		seq:  r.seq,
	})
	r.seq++
}

// process pops states until the exit is reached, the frontier empties, the
// expansion cap is hit, or the context is cancelled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*pqItem)
		n := r.nodes[item.node]
		if n.g > r.best[n.stateKey] {
			continue // stale
		}
		if n.cell == r.goalIdx {
			r.finish(item.node)
			return nil
		}
		if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
			r.res.Exhausted = true
			return nil
		}
		r.res.Expanded++
		r.opts.OnExpand(r.grid.Coordinate(int(n.cell)), int(n.g), r.sets.sizes[n.set])
		r.relax(item.node)
	}
	return nil
}

// relax pushes every admissible neighbour of nodes[ni].
func (r *runner) relax(ni int32) {
	n := r.nodes[ni]
	p := r.grid.Coordinate(int(n.cell))
	for _, d := range terrain.Offsets4 {
		qx, qy := p.X+d[0], p.Y+d[1]
		if !r.grid.InBounds(qx, qy) {
			continue
		}
		qi := r.grid.Index(qx, qy)
		if k := r.grid.AtIndex(qi); k == terrain.Obstacle || k == terrain.MineVisible {
			continue
		}

		set := n.set
		if id, ok := r.field.WithinAt(qi, r.width); ok && !r.sets.sets[set].Has(id) {
			if r.sets.sizes[set]+1 > r.budget {
				continue // wall for this risk history
			}
			set = r.sets.add(set, id)
		}

		k := stateKey{cell: int32(qi), set: set}
		ng := n.g + 1
		if old, seen := r.best[k]; seen && ng >= old {
			continue
		}
		r.push(k, ng, ni)
	}
}

// finish reconstructs the path ending at nodes[ni].
func (r *runner) finish(ni int32) {
	n := r.nodes[ni]
	path := make([]terrain.Point, 0, n.g+1)
	for at := ni; at >= 0; at = r.nodes[at].parent {
		path = append(path, r.grid.Coordinate(int(r.nodes[at].cell)))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	r.res.Found = true
	r.res.Path = path
	r.res.Violated = r.sets.sets[n.set].IDs()
}

// heuristic is Manhattan distance plus a small Euclidean tie-breaker.
func heuristic(a, b terrain.Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	return dx + dy + tieBreakWeight*math.Sqrt(dx*dx+dy*dy)
}

// pqItem is a queued arrival ordered by f, then by insertion sequence.
type pqItem struct {
	node int32
	f    float64
	seq  uint64
}

// nodePQ is a min-heap of *pqItem with lazy decrease-key: improved arrivals
// are pushed again and stale entries are skipped when popped.
type nodePQ []*pqItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
