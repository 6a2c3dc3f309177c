package layout

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Flexible wraps one child of a Flex and carries its growth weight.
// A weight of zero keeps the child at its measured main-axis extent.
type Flexible struct {
	Weight float32
}

func (fl *Flexible) Kind() Kind { return KindFlexible }

func (fl *Flexible) usesChildMeasures() bool { return true }

func (fl *Flexible) measure(t *Tree, id NodeID) mgl32.Vec3 {
	c := t.onlyChild(id)
	t.measureNode(c)
	return t.nodes[c].measure
}

func (fl *Flexible) layout(t *Tree, id NodeID, f Frame) {
	t.place(t.onlyChild(id), f)
}

// Flex distributes its children along a main axis. Every child must be a
// Flexible node.
//
// Children without weight get exactly their measured main-axis extent. The
// remaining space is shared by weight, but the space per unit of weight is
// first raised so no weighted child drops below its own measure. Flex only
// ever grows content; when space runs out the children overflow.
type Flex struct {
	Axis    Axis
	Spacing float32
	Order   Order

	// CrossAlign holds the alignment for each axis, indexed by Axis.
	// The entry for the main axis is ignored. Zero means AlignStretch.
	CrossAlign [3]Align
}

func (fx *Flex) Kind() Kind { return KindFlex }

func (fx *Flex) usesChildMeasures() bool { return true }

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node     NodeID
	weight   float32
	measure  mgl32.Vec3
	mainSize float32
}

// items collects the Flexible children of id with their weights.
func (fx *Flex) items(t *Tree, id NodeID) []flexItem {
	children := t.Children(id)
	items := make([]flexItem, len(children))
	for i, c := range children {
		fl, ok := t.nodes[c].behavior.(*Flexible)
		if !ok {
			panic(fmt.Sprintf("layout: flex node %d child %d is %s, not flexible",
				id, c, t.nodes[c].behavior.Kind()))
		}
		if fl.Weight < 0 {
			panic(fmt.Sprintf("layout: flex node %d child %d has negative weight %v", id, c, fl.Weight))
		}
		items[i] = flexItem{node: c, weight: fl.Weight, measure: t.nodes[c].measure}
	}
	return items
}

func (fx *Flex) measure(t *Tree, id NodeID) mgl32.Vec3 {
	t.measureChildren(id)
	items := fx.items(t, id)

	var m mgl32.Vec3
	for _, item := range items {
		m[fx.Axis] += item.measure[fx.Axis]
		for _, a := range fx.Axis.Cross() {
			m[a] = max(m[a], item.measure[a])
		}
	}
	m[fx.Axis] += fx.gaps(len(items))
	return m
}

func (fx *Flex) gaps(n int) float32 {
	if n < 2 {
		return 0
	}
	return fx.Spacing * float32(n-1)
}

// reversed reports whether the first child sits at the high end.
func (fx *Flex) reversed(t *Tree) bool {
	switch fx.Order {
	case OrderForward:
		return false
	case OrderReverse:
		return true
	default:
		return fx.Axis == AxisY && t.verticalReverse
	}
}

func (fx *Flex) layout(t *Tree, id NodeID, f Frame) {
	items := fx.items(t, id)
	if len(items) == 0 {
		return
	}
	main := fx.Axis

	// Phase 1: split fixed and weighted demand
	var fixed, totalWeight float32
	for _, item := range items {
		if item.weight == 0 {
			fixed += item.measure[main]
		} else {
			totalWeight += item.weight
		}
	}

	// Phase 2: space per unit of weight, never below any weighted child's
	// own measure per unit
	var base float32
	if totalWeight > 0 {
		base = (f.Size[main] - fixed - fx.gaps(len(items))) / totalWeight
		for _, item := range items {
			if item.weight > 0 {
				base = max(base, item.measure[main]/item.weight)
			}
		}
	}
	for i := range items {
		if items[i].weight == 0 {
			items[i].mainSize = items[i].measure[main]
		} else {
			items[i].mainSize = base * items[i].weight
		}
	}

	// Phase 3: place sequentially from the low end, or from the high end
	// when reversed, aligning each cross axis
	reverse := fx.reversed(t)
	offset := float32(0)
	if reverse {
		offset = f.Size[main]
	}
	for _, item := range items {
		var local, size mgl32.Vec3
		size[main] = item.mainSize
		if reverse {
			offset -= item.mainSize
			local[main] = offset
			offset -= fx.Spacing
		} else {
			local[main] = offset
			offset += item.mainSize + fx.Spacing
		}
		for _, a := range main.Cross() {
			size[a], local[a] = fx.CrossAlign[a].span(f.Size[a], item.measure[a])
		}
		t.place(item.node, f.child(local, size))
	}
}
