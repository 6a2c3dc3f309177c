package layout

// MarkMeasureDirty signals that a node's intrinsic extent may have changed.
// The mark climbs to the parent and keeps climbing while the node reached
// uses its children's measures. The first ancestor whose measure ignores
// its children stops the climb and is itself the node queued for both
// measuring and layout, since it still places the changed subtree.
func (t *Tree) MarkMeasureDirty(id NodeID) {
	top := t.measureTop(id)
	n := &t.nodes[top]
	if n.root != nil {
		n.root.measureDirt.add(top)
		n.root.layoutDirt.add(top)
		return
	}
	n.measureDirty = true
	n.layoutDirty = true
}

// MarkLayoutDirty queues a node, and only that node, for layout.
func (t *Tree) MarkLayoutDirty(id NodeID) {
	n := t.get(id)
	if n.root != nil {
		n.root.layoutDirt.add(id)
		return
	}
	n.layoutDirty = true
}

// IsMeasureDirty reports whether the node itself is queued for measuring,
// either in its Root or as a local flag.
func (t *Tree) IsMeasureDirty(id NodeID) bool {
	n := t.get(id)
	if n.root != nil {
		return n.root.measureDirt.has(id)
	}
	return n.measureDirty
}

// IsLayoutDirty reports whether the node itself is queued for layout.
func (t *Tree) IsLayoutDirty(id NodeID) bool {
	n := t.get(id)
	if n.root != nil {
		return n.root.layoutDirt.has(id)
	}
	return n.layoutDirty
}

// measureTop returns the node a measure change at id lands on: the first
// ancestor that ignores its children's measures, or the tree top.
func (t *Tree) measureTop(id NodeID) NodeID {
	p := t.get(id).parent
	if p == NoNode {
		return id
	}
	return t.settle(p)
}

// settle climbs from id while the node reached uses its children's
// measures. It is the second half of measureTop and leaves an existing
// firewall in place, so re-applying it to a queued node is a no-op unless
// the tree changed shape.
func (t *Tree) settle(id NodeID) NodeID {
	for t.nodes[id].usesChildMeasures {
		p := t.nodes[id].parent
		if p == NoNode {
			break
		}
		id = p
	}
	return id
}

// nodeSet is an insertion-ordered set of node ids. Removal only clears the
// index; an entry of order is live when index maps its id back to its
// position. Dead entries are compacted away by drop, or by remove once
// they outnumber the live ones.
type nodeSet struct {
	order []NodeID
	index map[NodeID]int
	dead  int
}

func (s *nodeSet) add(id NodeID) {
	if s.index == nil {
		s.index = make(map[NodeID]int)
	}
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = len(s.order)
	s.order = append(s.order, id)
}

func (s *nodeSet) has(id NodeID) bool {
	_, ok := s.index[id]
	return ok
}

// remove deletes id and reports whether it was present.
func (s *nodeSet) remove(id NodeID) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	s.dead++
	if s.dead > len(s.index) {
		s.compact()
	}
	return true
}

func (s *nodeSet) len() int {
	return len(s.index)
}

// snapshot returns a copy of the current members in insertion order.
func (s *nodeSet) snapshot() []NodeID {
	out := make([]NodeID, 0, len(s.index))
	for i, id := range s.order {
		if pos, ok := s.index[id]; ok && pos == i {
			out = append(out, id)
		}
	}
	return out
}

// drop removes every id in ids, typically the members captured by an
// earlier snapshot. Members added since stay queued in order.
func (s *nodeSet) drop(ids []NodeID) {
	for _, id := range ids {
		delete(s.index, id)
	}
	s.compact()
}

func (s *nodeSet) compact() {
	live := s.order[:0]
	for i, id := range s.order {
		if pos, ok := s.index[id]; ok && pos == i {
			s.index[id] = len(live)
			live = append(live, id)
		}
	}
	s.order = live
	s.dead = 0
}
