package spatial

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

// grid lays out unit leaves in rows, top row first, and returns the leaf
// ids row by row.
func grid(t *testing.T, rows, cols int, vp Frame) (*Tree, *Root, [][]NodeID) {
	t.Helper()
	tr, err := NewTree()
	require.NoError(t, err)

	ids := make([][]NodeID, rows)
	rowNodes := make([]NodeID, rows)
	for r := range rows {
		cells := make([]NodeID, cols)
		ids[r] = make([]NodeID, cols)
		for c := range cols {
			ids[r][c] = tr.New(FixedLeaf(mgl32.Vec3{1, 1, 0}))
			cells[c] = tr.New(&Flexible{}, ids[r][c])
		}
		rowNodes[r] = tr.New(&Flexible{}, tr.New(&Flex{Axis: AxisX}, cells...))
	}
	top := tr.New(&Flex{Axis: AxisY}, rowNodes...)
	root := NewRoot(tr, top)
	root.SetViewport(vp)
	root.Update()
	return tr, root, ids
}

func flatViewport(w, h float32) Frame {
	return Frame{Rotation: mgl32.QuatIdent(), Size: mgl32.Vec3{w, h, 0}}
}
