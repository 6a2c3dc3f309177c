package spatial

import (
	"cmp"
	"slices"
)

// ClickBinding represents a node-to-function binding for pointer clicks.
type ClickBinding struct {
	Node NodeID
	Fn   func(Hit)
}

// Click creates a click binding for use with HandleClicks.
func Click(node NodeID, fn func(Hit)) ClickBinding {
	return ClickBinding{Node: node, Fn: fn}
}

// Picked is a node hit by a ray.
type Picked struct {
	Node NodeID
	Hit  Hit
}

// Pick intersects ray with each candidate's frame and returns the hits
// sorted from closest to furthest. Hits at the same distance put the node
// with the higher depth offset first, since it draws on top.
func Pick(t *Tree, candidates []NodeID, ray Ray) []Picked {
	var picked []Picked
	for _, id := range candidates {
		if hit := t.Intersect(id, ray); hit.OK {
			picked = append(picked, Picked{Node: id, Hit: hit})
		}
	}
	slices.SortStableFunc(picked, func(a, b Picked) int {
		if c := cmp.Compare(a.Hit.Distance, b.Hit.Distance); c != 0 {
			return c
		}
		return cmp.Compare(t.DepthOffset(b.Node), t.DepthOffset(a.Node))
	})
	return picked
}

// PickLeaves picks among the leaves of the subtree under top.
func PickLeaves(t *Tree, top NodeID, ray Ray) []Picked {
	return Pick(t, t.Leaves(top), ray)
}

// HandleClicks calls the binding of the nearest bound node the pointer
// ray hits. Returns true if a binding ran.
//
//	spatial.HandleClicks(tree, ev.Ray,
//	    spatial.Click(saveBtn, func(spatial.Hit) { save() }),
//	    spatial.Click(cancelBtn, func(spatial.Hit) { cancel() }),
//	)
func HandleClicks(t *Tree, ray Ray, bindings ...ClickBinding) bool {
	nodes := make([]NodeID, len(bindings))
	for i, b := range bindings {
		nodes[i] = b.Node
	}
	picked := Pick(t, nodes, ray)
	if len(picked) == 0 {
		return false
	}
	for _, b := range bindings {
		if b.Node == picked[0].Node {
			if b.Fn != nil {
				b.Fn(picked[0].Hit)
			}
			return true
		}
	}
	return false
}
