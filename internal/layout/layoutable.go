package layout

import "github.com/go-gl/mathgl/mgl32"

// Kind enumerates the composition policies a node can carry.
type Kind uint8

const (
	KindLeaf     Kind = iota // widget-supplied measure and layout callbacks
	KindFlex                 // linear distribution with weighted growth
	KindFlexible             // flex weight wrapper around one Flex child
	KindStack                // overlapping layers
	KindPadding              // inset box
	KindAligned              // single-axis alignment
	KindCuboid               // six-face box
	KindSized                // fixed measure, children fill the node
	KindMeasured             // pass-through of one child's measure
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindFlex:
		return "flex"
	case KindFlexible:
		return "flexible"
	case KindStack:
		return "stack"
	case KindPadding:
		return "padding"
	case KindAligned:
		return "aligned"
	case KindCuboid:
		return "cuboid"
	case KindSized:
		return "sized"
	case KindMeasured:
		return "measured"
	default:
		return "unknown"
	}
}

// Behavior is the composition policy attached to a node. The set of
// implementations is closed: *Leaf, *Flex, *Flexible, *Stack, *Padding,
// *Aligned, *Cuboid, *Sized and *Measured. Widgets plug in through Leaf.
type Behavior interface {
	// Kind identifies the policy.
	Kind() Kind

	// measure computes the node's intrinsic extent. Composite policies
	// measure their children first.
	measure(t *Tree, id NodeID) mgl32.Vec3

	// layout recomputes the whole subtree under id from the node's
	// current frame. It must place and lay out every child.
	layout(t *Tree, id NodeID, f Frame)

	// usesChildMeasures reports whether the node's measure depends on the
	// measures of its children.
	usesChildMeasures() bool
}

var (
	_ Behavior = (*Leaf)(nil)
	_ Behavior = (*Flex)(nil)
	_ Behavior = (*Flexible)(nil)
	_ Behavior = (*Stack)(nil)
	_ Behavior = (*Padding)(nil)
	_ Behavior = (*Aligned)(nil)
	_ Behavior = (*Cuboid)(nil)
	_ Behavior = (*Sized)(nil)
	_ Behavior = (*Measured)(nil)
)
