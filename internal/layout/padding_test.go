package layout

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestPadding_Measure(t *testing.T) {
	type tc struct {
		insets EdgeInsets
		child  mgl32.Vec3
		want   mgl32.Vec3
	}

	tests := map[string]tc{
		"x only": {
			insets: Insets(2, 2, 0, 0, 0, 0),
			child:  mgl32.Vec3{10, 5, 0},
			want:   mgl32.Vec3{14, 5, 0},
		},
		"uniform": {
			insets: Insets(1),
			child:  mgl32.Vec3{10, 5, 0},
			want:   mgl32.Vec3{12, 7, 2},
		},
		"symmetric": {
			insets: Insets(1, 3),
			child:  mgl32.Vec3{1, 1, 1},
			want:   mgl32.Vec3{3, 7, 1},
		},
		"asymmetric four": {
			insets: Insets(1, 2, 3, 4),
			child:  mgl32.Vec3{},
			want:   mgl32.Vec3{3, 7, 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tr := newTestTree(t)
			top := tr.New(&Padding{Insets: tt.insets}, tr.New(FixedLeaf(tt.child)))
			NewRoot(tr, top).Update()
			assertVec(t, tt.want, tr.Measure(top))
		})
	}
}

func TestPadding_RoundTrip(t *testing.T) {
	rotations := map[string]mgl32.Quat{
		"identity":     mgl32.QuatIdent(),
		"quarter on y": mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0}),
		"oblique":      mgl32.QuatRotate(1.1, mgl32.Vec3{1, 2, 3}.Normalize()),
	}
	insets := Insets(1, 2, 3, 4, 0.5, 0.25)

	for name, q := range rotations {
		t.Run(name, func(t *testing.T) {
			tr := newTestTree(t)
			child := tr.New(FixedLeaf(mgl32.Vec3{1, 1, 1}))
			top := tr.New(&Padding{Insets: insets}, child)
			r := NewRoot(tr, top)
			vp := Frame{Position: mgl32.Vec3{5, -2, 7}, Rotation: q, Size: mgl32.Vec3{20, 10, 4}}
			r.SetViewport(vp)
			r.Update()

			assertVec(t, tr.Size(top), tr.Size(child).Add(insets.Low).Add(insets.High))
			assertVec(t, vp.Position.Add(q.Rotate(insets.Low)), tr.Position(child))
			assertQuat(t, q, tr.Rotation(child))
		})
	}
}

func TestPadding_RequiresOneChild(t *testing.T) {
	tr := newTestTree(t)
	top := tr.New(&Padding{Insets: Insets(1)})
	assert.Panics(t, NewRoot(tr, top).Update)
}
