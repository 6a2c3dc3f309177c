package layout

import (
	"fmt"
	"slices"
	"time"

	"github.com/grindlemire/go-spatial/internal/debug"
)

// Root is the dirty-tracking scheduler for one attached subtree. It owns the
// two sets of nodes waiting for measuring and for layout, shared by every
// node under its top. Whoever drives the frame loop owns the Root and calls
// Update once per frame.
type Root struct {
	tree        *Tree
	top         NodeID
	measureDirt nodeSet
	layoutDirt  nodeSet
}

// NewRoot attaches the detached node top, with its subtree, to a new
// scheduler. Marks pending on those nodes move into the scheduler's sets.
func NewRoot(t *Tree, top NodeID) *Root {
	n := t.get(top)
	if n.parent != NoNode {
		panic(fmt.Sprintf("layout: root top %d has parent %d", top, n.parent))
	}
	if n.root != nil {
		panic(fmt.Sprintf("layout: node %d is already attached to a root", top))
	}
	r := &Root{tree: t, top: top}
	t.setRootRecursive(top, r)
	debug.Log("layout: root attached at node %d (%d measure, %d layout pending)",
		top, r.measureDirt.len(), r.layoutDirt.len())
	return r
}

// Tree returns the arena the root schedules.
func (r *Root) Tree() *Tree {
	return r.tree
}

// Top returns the node the root is attached to, or NoNode after Detach.
func (r *Root) Top() NodeID {
	return r.top
}

// Pending returns the number of nodes waiting for measuring and for layout.
func (r *Root) Pending() (measure, layout int) {
	return r.measureDirt.len(), r.layoutDirt.len()
}

// HasPending reports whether Update has any work to do.
func (r *Root) HasPending() bool {
	return r.measureDirt.len() > 0 || r.layoutDirt.len() > 0
}

// SetViewport assigns the top node's frame, the space the application gives
// the whole tree, and queues it for layout.
func (r *Root) SetViewport(f Frame) {
	r.mustAttached()
	r.tree.SetFrame(r.top, f)
}

// Detach releases the subtree. Pending marks move back onto the nodes as
// local flags so a later attach picks them up.
func (r *Root) Detach() {
	r.mustAttached()
	r.detach()
}

func (r *Root) detach() {
	top := r.top
	r.tree.setRootRecursive(top, nil)
	r.top = NoNode
	debug.Log("layout: root detached from node %d", top)
}

func (r *Root) mustAttached() {
	if r.top == NoNode {
		panic("layout: root is detached")
	}
}

// Update brings every queued node up to date. All queued measuring finishes
// before any layout starts:
//
//  1. Each node queued for measuring climbs again while it uses its
//     children's measures, in case the tree changed shape since it was
//     marked. The subtree of the node reached is measured once and the
//     node is queued for layout.
//  2. Queued layouts run shallowest first. A node whose ancestor was laid
//     out earlier in the same update is skipped, since layout recomputes the
//     whole subtree.
//  3. Processed entries leave the sets.
//
// Callbacks are not guarded. If one panics the panic propagates and the
// sets keep their entries, so the next Update retries.
func (r *Root) Update() {
	if !r.HasPending() {
		return
	}
	start := time.Now()
	t := r.tree

	measured := r.measureDirt.snapshot()
	tops := make(map[NodeID]struct{}, len(measured))
	for _, id := range measured {
		if !t.Contains(id) {
			continue
		}
		top := t.settle(id)
		if _, ok := tops[top]; ok {
			continue
		}
		tops[top] = struct{}{}
		t.measureNode(top)
		r.layoutDirt.add(top)
		measurePassTotal.Inc()
	}

	queued := r.layoutDirt.snapshot()
	ordered := slices.Clone(queued)
	depths := make(map[NodeID]int, len(ordered))
	for _, id := range ordered {
		if t.Contains(id) {
			depths[id] = t.Depth(id)
		}
	}
	slices.SortStableFunc(ordered, func(a, b NodeID) int {
		return depths[a] - depths[b]
	})

	done := make(map[NodeID]struct{}, len(ordered))
	ran, skipped := 0, 0
	for _, id := range ordered {
		if !t.Contains(id) {
			continue
		}
		if r.coveredBy(id, done) {
			skipped++
			continue
		}
		t.layoutNode(id)
		done[id] = struct{}{}
		ran++
	}

	r.measureDirt.drop(measured)
	r.layoutDirt.drop(queued)

	updateTotal.Inc()
	layoutPassTotal.WithLabelValues("run").Add(float64(ran))
	layoutPassTotal.WithLabelValues("skipped").Add(float64(skipped))
	updateDuration.Observe(time.Since(start).Seconds())
	debug.Log("layout: update measured %d, laid out %d, skipped %d", len(measured), ran, skipped)
}

// coveredBy reports whether an ancestor of id is in done.
func (r *Root) coveredBy(id NodeID, done map[NodeID]struct{}) bool {
	for p := r.tree.nodes[id].parent; p != NoNode; p = r.tree.nodes[p].parent {
		if _, ok := done[p]; ok {
			return true
		}
	}
	return false
}
