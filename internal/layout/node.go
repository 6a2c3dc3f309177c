package layout

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// NodeID identifies a node inside its Tree.
type NodeID int32

// NoNode is the absent node, used for the parent of a detached node.
const NoNode NodeID = -1

// node is one slot of the Tree arena.
type node struct {
	alive    bool
	behavior Behavior
	children []NodeID
	parent   NodeID
	root     *Root

	frame    Frame
	measure  mgl32.Vec3
	measured bool

	usesChildMeasures bool

	// Pending marks held while the node is not attached to a Root.
	measureDirty bool
	layoutDirty  bool
}

// Tree is the arena that owns every layout node. Nodes reference their
// parent and children by NodeID, never by pointer.
//
// A Tree is not safe for concurrent use; all mutation and updates happen on
// the goroutine that drives the frame loop.
type Tree struct {
	nodes []node
	free  []NodeID
	live  int

	stackDelta      float32
	stackAxis       Axis
	verticalReverse bool
	cycleCheck      bool
}

// NewTree creates an empty Tree with the given options applied.
func NewTree(opts ...Option) (*Tree, error) {
	t := &Tree{
		stackDelta:      DefaultStackDelta,
		stackAxis:       AxisZ,
		verticalReverse: true,
		cycleCheck:      true,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// New creates a detached node with the given behavior and appends children
// to it. New nodes need measuring and layout.
func (t *Tree) New(b Behavior, children ...NodeID) NodeID {
	if b == nil {
		panic("layout: nil behavior")
	}
	n := node{
		alive:             true,
		behavior:          b,
		parent:            NoNode,
		frame:             IdentityFrame(),
		usesChildMeasures: b.usesChildMeasures(),
		measureDirty:      true,
		layoutDirty:       true,
	}

	var id NodeID
	if last := len(t.free) - 1; last >= 0 {
		id = t.free[last]
		t.free = t.free[:last]
		t.nodes[id] = n
	} else {
		id = NodeID(len(t.nodes))
		t.nodes = append(t.nodes, n)
	}
	t.live++

	if len(children) > 0 {
		t.AddChild(id, children...)
	}
	return id
}

// get returns the slot for id, panicking on ids that were never allocated
// or have been destroyed.
func (t *Tree) get(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) || !t.nodes[id].alive {
		panic(fmt.Sprintf("layout: invalid or destroyed node %d", id))
	}
	return &t.nodes[id]
}

// Contains reports whether id refers to a live node.
func (t *Tree) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes) && t.nodes[id].alive
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.live
}

// Behavior returns the composition policy of a node.
func (t *Tree) Behavior(id NodeID) Behavior {
	return t.get(id).behavior
}

// SetBehavior replaces the composition policy of a node and marks its
// measure dirty. The node's UsesChildMeasures flag is reset to the new
// policy's default.
func (t *Tree) SetBehavior(id NodeID, b Behavior) {
	if b == nil {
		panic("layout: nil behavior")
	}
	n := t.get(id)
	n.behavior = b
	n.usesChildMeasures = b.usesChildMeasures()
	t.MarkMeasureDirty(id)
}

// Children returns the ordered children of a node.
// The returned slice must not be modified.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.get(id).children
}

// Parent returns the parent of a node, or NoNode if it is detached.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.get(id).parent
}

// Root returns the scheduler the node is attached to, or nil.
func (t *Tree) Root(id NodeID) *Root {
	return t.get(id).root
}

// Depth returns the number of ancestors above a node.
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	for p := t.get(id).parent; p != NoNode; p = t.nodes[p].parent {
		depth++
	}
	return depth
}

// Frame returns the placement assigned to a node by its last layout.
func (t *Tree) Frame(id NodeID) Frame {
	return t.get(id).frame
}

// Position returns the world-space position of a node.
func (t *Tree) Position(id NodeID) mgl32.Vec3 {
	return t.get(id).frame.Position
}

// Rotation returns the world-space rotation of a node.
func (t *Tree) Rotation(id NodeID) mgl32.Quat {
	return t.get(id).frame.Rotation
}

// Size returns the extent assigned to a node by its parent.
func (t *Tree) Size(id NodeID) mgl32.Vec3 {
	return t.get(id).frame.Size
}

// DepthOffset returns the depth bias index of a node.
func (t *Tree) DepthOffset(id NodeID) int {
	return t.get(id).frame.DepthOffset
}

// SetFrame assigns a node's placement directly and marks it for layout.
// Used for nodes whose placement is not owned by a parent, such as the top
// node of a Root.
func (t *Tree) SetFrame(id NodeID, f Frame) {
	t.get(id).frame = f
	t.MarkLayoutDirty(id)
}

// SetPosition moves a node and marks it for layout.
func (t *Tree) SetPosition(id NodeID, p mgl32.Vec3) {
	t.get(id).frame.Position = p
	t.MarkLayoutDirty(id)
}

// SetRotation orients a node and marks it for layout.
func (t *Tree) SetRotation(id NodeID, q mgl32.Quat) {
	t.get(id).frame.Rotation = q
	t.MarkLayoutDirty(id)
}

// SetSize resizes a node and marks it for layout.
func (t *Tree) SetSize(id NodeID, s mgl32.Vec3) {
	t.get(id).frame.Size = s
	t.MarkLayoutDirty(id)
}

// Measure returns the intrinsic extent computed by the node's last measure.
func (t *Tree) Measure(id NodeID) mgl32.Vec3 {
	return t.get(id).measure
}

// Measured reports whether the node has been measured at least once.
func (t *Tree) Measured(id NodeID) bool {
	return t.get(id).measured
}

// UsesChildMeasures reports whether the node's measure depends on its
// children's measures.
func (t *Tree) UsesChildMeasures(id NodeID) bool {
	return t.get(id).usesChildMeasures
}

// SetUsesChildMeasures overrides the policy default, for example to pin a
// node to an externally fixed size. Measure dirt propagating from below
// stops at the first ancestor that reports false.
func (t *Tree) SetUsesChildMeasures(id NodeID, uses bool) {
	t.get(id).usesChildMeasures = uses
}

// measureNode runs the node's measure policy and stores the result.
func (t *Tree) measureNode(id NodeID) {
	m := t.get(id).behavior.measure(t, id)
	n := &t.nodes[id]
	n.measure = m
	n.measured = true
}

// layoutNode runs the node's layout policy against its current frame.
func (t *Tree) layoutNode(id NodeID) {
	n := t.get(id)
	if !n.measured {
		logUnmeasured(id, n.behavior.Kind())
	}
	n.behavior.layout(t, id, n.frame)
}

// measureChildren measures every child of id and returns their measures in
// child order.
func (t *Tree) measureChildren(id NodeID) []mgl32.Vec3 {
	children := t.get(id).children
	measures := make([]mgl32.Vec3, len(children))
	for i, c := range children {
		t.measureNode(c)
		measures[i] = t.nodes[c].measure
	}
	return measures
}

// place writes a direct child's frame and immediately lays the child out,
// so its descendants see the new placement in the same pass.
func (t *Tree) place(child NodeID, f Frame) {
	t.get(child).frame = f
	t.layoutNode(child)
}

// onlyChild returns the single child of id, panicking if the node does not
// have exactly one.
func (t *Tree) onlyChild(id NodeID) NodeID {
	n := t.get(id)
	if len(n.children) != 1 {
		panic(fmt.Sprintf("layout: %s node %d requires exactly one child, has %d",
			n.behavior.Kind(), id, len(n.children)))
	}
	return n.children[0]
}
