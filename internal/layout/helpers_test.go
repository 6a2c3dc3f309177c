package layout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree(t *testing.T, opts ...Option) *Tree {
	t.Helper()
	tr, err := NewTree(opts...)
	require.NoError(t, err)
	return tr
}

// recorder is a leaf widget that records how often it is measured and laid out.
type recorder struct {
	size     mgl32.Vec3
	measures int
	layouts  int
	frame    Frame
}

func (p *recorder) leaf() *Leaf {
	return &Leaf{
		MeasureFunc: func() mgl32.Vec3 {
			p.measures++
			return p.size
		},
		LayoutFunc: func(f Frame) {
			p.layouts++
			p.frame = f
		},
	}
}

func viewport(size mgl32.Vec3) Frame {
	return Frame{Rotation: mgl32.QuatIdent(), Size: size}
}

func assertVec(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	if !want.ApproxEqualThreshold(got, 1e-4) {
		assert.Fail(t, "vectors differ", append([]any{"want %v, got %v", want, got}, msgAndArgs...)...)
	}
}

func assertQuat(t *testing.T, want, got mgl32.Quat) {
	t.Helper()
	// q and -q are the same rotation
	if !want.ApproxEqualThreshold(got, 1e-4) && !want.Scale(-1).ApproxEqualThreshold(got, 1e-4) {
		assert.Fail(t, "rotations differ", "want %v, got %v", want, got)
	}
}

// flexChildren wraps each node in a Flexible with the matching weight.
func flexChildren(tr *Tree, weights []float32, nodes ...NodeID) []NodeID {
	out := make([]NodeID, len(nodes))
	for i, n := range nodes {
		out[i] = tr.New(&Flexible{Weight: weights[i]}, n)
	}
	return out
}
