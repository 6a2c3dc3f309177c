// Package layout implements an incremental 3D layout engine.
//
// Nodes live in a [Tree] arena and are referenced by [NodeID]. Each node
// carries a [Behavior]: a widget-supplied [Leaf] or one of the composition
// policies ([Flex], [Stack], [Padding], [Aligned], [Cuboid], [Sized],
// [Measured]). Layout runs in two phases. Measuring computes each node's
// intrinsic extent bottom-up; layout assigns world-space [Frame]s top-down.
//
// Widgets call [Tree.MarkMeasureDirty] or [Tree.MarkLayoutDirty] when their
// content changes. A [Root] collects those marks for its subtree and
// [Root.Update], called once per frame, does the minimum work to bring the
// tree up to date. Types are re-exported through the root spatial package.
package layout
