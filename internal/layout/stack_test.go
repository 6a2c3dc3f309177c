package layout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestStack_Layers(t *testing.T) {
	type tc struct {
		opts     []Option
		stack    Stack
		wantStep mgl32.Vec3
	}

	tests := map[string]tc{
		"default depth step": {
			wantStep: mgl32.Vec3{0, 0, DefaultStackDelta},
		},
		"tree axis and delta": {
			opts:     []Option{WithStackAxis(AxisX), WithStackDelta(0.5)},
			wantStep: mgl32.Vec3{0.5, 0, 0},
		},
		"explicit offset wins": {
			opts:     []Option{WithStackDelta(0.5)},
			stack:    Stack{Offset: mgl32.Vec3{0, 0.1, 0}},
			wantStep: mgl32.Vec3{0, 0.1, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := newTestTree(t, tt.opts...)
			layers := []NodeID{
				tr.New(FixedLeaf(mgl32.Vec3{1, 2, 0})),
				tr.New(FixedLeaf(mgl32.Vec3{3, 1, 0})),
				tr.New(FixedLeaf(mgl32.Vec3{2, 2, 1})),
			}
			stack := tt.stack
			top := tr.New(&stack, layers...)
			r := NewRoot(tr, top)
			vp := viewport(mgl32.Vec3{8, 6, 4})
			vp.Position = mgl32.Vec3{1, 1, 1}
			vp.DepthOffset = 2
			r.SetViewport(vp)
			r.Update()

			assertVec(t, mgl32.Vec3{3, 2, 1}, tr.Measure(top))
			for i, layer := range layers {
				assertVec(t, vp.Position.Add(tt.wantStep.Mul(float32(i))), tr.Position(layer), "layer %d", i)
				assertVec(t, vp.Size, tr.Size(layer))
				assert.Equal(t, 2+i, tr.DepthOffset(layer))
			}
		})
	}
}

func TestStack_RotatedStep(t *testing.T) {
	tr := newTestTree(t)
	back := tr.New(&Leaf{})
	front := tr.New(&Leaf{})
	top := tr.New(&Stack{Offset: mgl32.Vec3{0, 0, 1}}, back, front)
	r := NewRoot(tr, top)
	vp := viewport(mgl32.Vec3{1, 1, 1})
	vp.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	r.SetViewport(vp)
	r.Update()

	// the layer step is local and turns with the stack
	assertVec(t, mgl32.Vec3{1, 0, 0}, tr.Position(front))
	assertQuat(t, vp.Rotation, tr.Rotation(front))
}
