package spatial

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClick_Type(t *testing.T) {
	var got Hit
	c := Click(NodeID(3), func(h Hit) { got = h })
	assert.Equal(t, NodeID(3), c.Node)

	c.Fn(Hit{OK: true, Distance: 2})
	assert.Equal(t, float32(2), got.Distance)
}

// layered builds a stack of two equal panels over a background card.
func layered(t *testing.T) (*Tree, NodeID, NodeID, NodeID) {
	t.Helper()
	tr, err := NewTree()
	require.NoError(t, err)
	back := tr.New(FixedLeaf(mgl32.Vec3{4, 4, 0}))
	front := tr.New(FixedLeaf(mgl32.Vec3{4, 4, 0}))
	card := tr.New(&Padding{Insets: Insets(1, 1, 1, 1)}, tr.New(FixedLeaf(mgl32.Vec3{2, 2, 0})))
	top := tr.New(&Stack{Offset: mgl32.Vec3{0, 0, 0.5}}, back, card, front)
	root := NewRoot(tr, top)
	root.SetViewport(Frame{Rotation: mgl32.QuatIdent(), Size: mgl32.Vec3{4, 4, 0}})
	root.Update()
	return tr, top, back, front
}

func TestPick_NearestFirst(t *testing.T) {
	tr, top, back, front := layered(t)
	ray := Ray{Origin: mgl32.Vec3{2, 2, 10}, Direction: mgl32.Vec3{0, 0, -1}}

	picked := PickLeaves(tr, top, ray)
	require.Len(t, picked, 3)
	assert.Equal(t, front, picked[0].Node)
	assert.InDelta(t, 9, picked[0].Hit.Distance, 1e-4)
	assert.Equal(t, back, picked[2].Node)
	assert.InDelta(t, 10, picked[2].Hit.Distance, 1e-4)

	// the card's inner leaf only covers the middle
	edge := Ray{Origin: mgl32.Vec3{0.5, 0.5, 10}, Direction: mgl32.Vec3{0, 0, -1}}
	assert.Len(t, PickLeaves(tr, top, edge), 2)
}

func TestPick_TiesPreferHigherDepthOffset(t *testing.T) {
	tr, err := NewTree()
	require.NoError(t, err)
	low := tr.New(FixedLeaf(mgl32.Vec3{1, 1, 0}))
	high := tr.New(FixedLeaf(mgl32.Vec3{1, 1, 0}))
	// a negligible sideways step keeps the layers coplanar
	top := tr.New(&Stack{Offset: mgl32.Vec3{1e-9, 0, 0}}, low, high)
	root := NewRoot(tr, top)
	root.SetViewport(Frame{Rotation: mgl32.QuatIdent(), Size: mgl32.Vec3{1, 1, 0}})
	root.Update()

	picked := Pick(tr, []NodeID{low, high}, Ray{Origin: mgl32.Vec3{0.5, 0.5, 1}, Direction: mgl32.Vec3{0, 0, -1}})
	require.Len(t, picked, 2)
	assert.Equal(t, high, picked[0].Node)
}

func TestHandleClicks(t *testing.T) {
	tr, _, back, front := layered(t)
	var clicked []string
	bindings := []ClickBinding{
		Click(back, func(Hit) { clicked = append(clicked, "back") }),
		Click(front, func(Hit) { clicked = append(clicked, "front") }),
	}

	hit := Ray{Origin: mgl32.Vec3{2, 2, 10}, Direction: mgl32.Vec3{0, 0, -1}}
	assert.True(t, HandleClicks(tr, hit, bindings...))
	assert.Equal(t, []string{"front"}, clicked)

	// only the back panel is bound: the front one does not block it
	assert.True(t, HandleClicks(tr, hit, bindings[0]))
	assert.Equal(t, []string{"front", "back"}, clicked)

	miss := Ray{Origin: mgl32.Vec3{20, 2, 10}, Direction: mgl32.Vec3{0, 0, -1}}
	assert.False(t, HandleClicks(tr, miss, bindings...))
	assert.Len(t, clicked, 2)
}
