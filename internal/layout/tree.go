package layout

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-spatial/internal/debug"
)

// AddChild appends detached nodes to parent's children. Each child subtree
// joins the parent's Root, bringing any pending marks with it, and the
// parent's measure is marked dirty.
func (t *Tree) AddChild(parent NodeID, children ...NodeID) {
	p := t.get(parent)
	for _, child := range children {
		c := t.get(child)
		if c.parent != NoNode {
			panic(fmt.Sprintf("layout: node %d already has parent %d", child, c.parent))
		}
		if c.root != nil && c.root.top == child {
			panic(fmt.Sprintf("layout: node %d is the top of a root; detach the root first", child))
		}
		if t.cycleCheck {
			t.checkCycle(parent, child)
		}
		c.parent = parent
		p.children = append(p.children, child)
		t.setRootRecursive(child, p.root)
	}
	t.MarkMeasureDirty(parent)
}

// checkCycle panics if child is parent or one of its ancestors.
func (t *Tree) checkCycle(parent, child NodeID) {
	for n := parent; n != NoNode; n = t.nodes[n].parent {
		if n == child {
			panic(fmt.Sprintf("layout: adding node %d under %d would create a cycle", child, parent))
		}
	}
}

// RemoveChild detaches child from parent, keeping the order of the
// remaining children. The child keeps its own subtree and carries its
// pending marks as local flags. Returns true if the child was found.
func (t *Tree) RemoveChild(parent, child NodeID) bool {
	p := t.get(parent)
	i := slices.Index(p.children, child)
	if i < 0 {
		return false
	}
	p.children = slices.Delete(p.children, i, i+1)
	t.nodes[child].parent = NoNode
	t.setRootRecursive(child, nil)
	t.MarkMeasureDirty(parent)
	return true
}

// RemoveAllChildren detaches every child of a node.
func (t *Tree) RemoveAllChildren(parent NodeID) {
	p := t.get(parent)
	children := p.children
	p.children = nil
	for _, child := range children {
		t.nodes[child].parent = NoNode
		t.setRootRecursive(child, nil)
	}
	t.MarkMeasureDirty(parent)
}

// Destroy removes a node and its whole subtree from the tree, detaching it
// from its parent and clearing any pending marks. The ids become invalid
// and may be reused by later calls to New.
func (t *Tree) Destroy(id NodeID) {
	n := t.get(id)
	if n.root != nil && n.root.top == id {
		n.root.detach()
	}
	if n.parent != NoNode {
		t.RemoveChild(n.parent, id)
	}
	t.setRootRecursive(id, nil)
	t.destroyRecursive(id)
}

func (t *Tree) destroyRecursive(id NodeID) {
	n := &t.nodes[id]
	children := n.children
	*n = node{parent: NoNode}
	t.free = append(t.free, id)
	t.live--
	for _, child := range children {
		t.destroyRecursive(child)
	}
}

// setRootRecursive points a subtree at root. Marks pending in the previous
// root move back into local flags; local flags move into the new root.
func (t *Tree) setRootRecursive(id NodeID, root *Root) {
	n := &t.nodes[id]
	if root != nil && n.root == root {
		return
	}
	if old := n.root; old != nil {
		if old.measureDirt.remove(id) {
			n.measureDirty = true
		}
		if old.layoutDirt.remove(id) {
			n.layoutDirty = true
		}
	}
	n.root = root
	if root != nil {
		if n.measureDirty {
			root.measureDirt.add(id)
		}
		if n.layoutDirty {
			root.layoutDirt.add(id)
		}
		n.measureDirty = false
		n.layoutDirty = false
	}
	for _, child := range n.children {
		t.setRootRecursive(child, root)
	}
}

// Walk calls fn for id and each of its descendants, parents before children.
// Returning false from fn skips that node's subtree.
func (t *Tree) Walk(id NodeID, fn func(NodeID) bool) {
	if !fn(id) {
		return
	}
	for _, child := range t.get(id).children {
		t.Walk(child, fn)
	}
}

// Leaves returns the ids of every node under id, inclusive, that has no
// children, in depth-first order.
func (t *Tree) Leaves(id NodeID) []NodeID {
	var leaves []NodeID
	t.Walk(id, func(n NodeID) bool {
		if len(t.nodes[n].children) == 0 {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

func logUnmeasured(id NodeID, kind Kind) {
	debug.Log("layout: %s node %d laid out before it was measured", kind, id)
}
