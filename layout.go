// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package spatial

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/grindlemire/go-spatial/internal/layout"
)

// Tree is the arena owning every layout node.
type Tree = layout.Tree

// NodeID identifies a node inside its Tree.
type NodeID = layout.NodeID

// NoNode is the absent node.
const NoNode = layout.NoNode

// Root schedules measuring and layout for one attached subtree.
type Root = layout.Root

// Frame holds the world-space placement of a node.
type Frame = layout.Frame

// Behavior is the composition policy attached to a node.
type Behavior = layout.Behavior

// Kind enumerates the composition policies.
type Kind = layout.Kind

const (
	KindLeaf     = layout.KindLeaf
	KindFlex     = layout.KindFlex
	KindFlexible = layout.KindFlexible
	KindStack    = layout.KindStack
	KindPadding  = layout.KindPadding
	KindAligned  = layout.KindAligned
	KindCuboid   = layout.KindCuboid
	KindSized    = layout.KindSized
	KindMeasured = layout.KindMeasured
)

// Composition behaviors.
type (
	Leaf     = layout.Leaf
	Flex     = layout.Flex
	Flexible = layout.Flexible
	Stack    = layout.Stack
	Padding  = layout.Padding
	Aligned  = layout.Aligned
	Cuboid   = layout.Cuboid
	Sized    = layout.Sized
	Measured = layout.Measured
)

// Axis selects one of the three world axes.
type Axis = layout.Axis

const (
	AxisX = layout.AxisX
	AxisY = layout.AxisY
	AxisZ = layout.AxisZ
)

// Align specifies how a child fills one axis of its assigned space.
type Align = layout.Align

const (
	AlignStretch = layout.AlignStretch
	AlignStart   = layout.AlignStart
	AlignCenter  = layout.AlignCenter
	AlignEnd     = layout.AlignEnd
)

// Order specifies the direction in which Flex places its children.
type Order = layout.Order

const (
	OrderDefault = layout.OrderDefault
	OrderForward = layout.OrderForward
	OrderReverse = layout.OrderReverse
)

// Face identifies one side of a Cuboid.
type Face = layout.Face

const (
	FaceFront  = layout.FaceFront
	FaceBack   = layout.FaceBack
	FaceLeft   = layout.FaceLeft
	FaceRight  = layout.FaceRight
	FaceTop    = layout.FaceTop
	FaceBottom = layout.FaceBottom
)

// EdgeInsets holds low and high insets on each of the three axes.
type EdgeInsets = layout.EdgeInsets

// Ray is a half-line in world space.
type Ray = layout.Ray

// Hit is the result of intersecting a ray with a node's box.
type Hit = layout.Hit

// GeometryError describes a node with degenerate geometry.
type GeometryError = layout.GeometryError

// TreeOption is a functional option for configuring a Tree.
type TreeOption = layout.Option

// DefaultStackDelta is the default distance between Stack layers.
const DefaultStackDelta = layout.DefaultStackDelta

// NewTree creates an empty Tree.
func NewTree(opts ...TreeOption) (*Tree, error) {
	return layout.NewTree(opts...)
}

// NewRoot attaches a detached node and its subtree to a new scheduler.
func NewRoot(t *Tree, top NodeID) *Root {
	return layout.NewRoot(t, top)
}

// IdentityFrame returns a zero-sized frame at the origin with no rotation.
func IdentityFrame() Frame {
	return layout.IdentityFrame()
}

// FixedLeaf returns a Leaf whose measure is always m.
func FixedLeaf(m mgl32.Vec3) *Leaf {
	return layout.FixedLeaf(m)
}

// Insets builds EdgeInsets from 1, 2, 4 or 6 values.
func Insets(v ...float32) EdgeInsets {
	return layout.Insets(v...)
}

// InsetsAll creates EdgeInsets with the same value on all six sides.
func InsetsAll(n float32) EdgeInsets {
	return layout.InsetsAll(n)
}

// InsetsSymmetric creates EdgeInsets with x on both x sides and y on both y sides.
func InsetsSymmetric(x, y float32) EdgeInsets {
	return layout.InsetsSymmetric(x, y)
}

// IntersectBox intersects a world-space ray with a frame's box.
func IntersectBox(f Frame, r Ray) Hit {
	return layout.IntersectBox(f, r)
}

// FaceRotation returns the box-local rotation applied to a Cuboid face.
func FaceRotation(f Face) mgl32.Quat {
	return layout.FaceRotation(f)
}

// WithStackDelta sets the default distance between Stack layers.
func WithStackDelta(d float32) TreeOption {
	return layout.WithStackDelta(d)
}

// WithStackAxis sets the default axis along which Stack layers are offset.
func WithStackAxis(a Axis) TreeOption {
	return layout.WithStackAxis(a)
}

// WithVerticalReverse controls whether vertical Flex lists start at the top.
func WithVerticalReverse(reverse bool) TreeOption {
	return layout.WithVerticalReverse(reverse)
}

// WithCycleCheck enables or disables cycle rejection in AddChild.
func WithCycleCheck(enabled bool) TreeOption {
	return layout.WithCycleCheck(enabled)
}
