package layout

import "github.com/go-gl/mathgl/mgl32"

// Stack layers its children over the same box. Every child gets the full
// frame, shifted by a strictly increasing multiple of the layer offset so
// coplanar surfaces never fight, and one more depth offset than the child
// before it. The first child is the bottom layer.
type Stack struct {
	// Offset is the local-space step between consecutive layers.
	// Zero uses the tree's stack axis and delta.
	Offset mgl32.Vec3
}

func (s *Stack) Kind() Kind { return KindStack }

func (s *Stack) usesChildMeasures() bool { return true }

func (s *Stack) measure(t *Tree, id NodeID) mgl32.Vec3 {
	var m mgl32.Vec3
	for _, cm := range t.measureChildren(id) {
		m = maxVec3(m, cm)
	}
	return m
}

func (s *Stack) step(t *Tree) mgl32.Vec3 {
	if s.Offset != (mgl32.Vec3{}) {
		return s.Offset
	}
	return t.stackAxis.Unit().Mul(t.stackDelta)
}

func (s *Stack) layout(t *Tree, id NodeID, f Frame) {
	step := s.step(t)
	for i, c := range t.Children(id) {
		cf := f.child(step.Mul(float32(i)), f.Size)
		cf.DepthOffset = f.DepthOffset + i
		t.place(c, cf)
	}
}

func maxVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}
