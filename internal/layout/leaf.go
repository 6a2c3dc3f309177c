package layout

import "github.com/go-gl/mathgl/mgl32"

// Leaf is the policy for widget nodes such as text or rectangles. The widget
// computes its own measure from its content and receives its final frame to
// regenerate render data. Either callback may be nil.
type Leaf struct {
	MeasureFunc func() mgl32.Vec3
	LayoutFunc  func(Frame)
}

// FixedLeaf returns a Leaf whose measure is always m.
func FixedLeaf(m mgl32.Vec3) *Leaf {
	return &Leaf{MeasureFunc: func() mgl32.Vec3 { return m }}
}

func (l *Leaf) Kind() Kind { return KindLeaf }

func (l *Leaf) usesChildMeasures() bool { return false }

func (l *Leaf) measure(t *Tree, id NodeID) mgl32.Vec3 {
	if l.MeasureFunc == nil {
		return mgl32.Vec3{}
	}
	return l.MeasureFunc()
}

func (l *Leaf) layout(t *Tree, id NodeID, f Frame) {
	if l.LayoutFunc != nil {
		l.LayoutFunc(f)
	}
}

// Sized fixes a node's measure to Size regardless of its content. Its
// children are measured for their own layout and each fills the node's
// frame. A Sized node stops measure dirt from climbing past it.
type Sized struct {
	Size mgl32.Vec3
}

func (s *Sized) Kind() Kind { return KindSized }

func (s *Sized) usesChildMeasures() bool { return false }

func (s *Sized) measure(t *Tree, id NodeID) mgl32.Vec3 {
	t.measureChildren(id)
	return s.Size
}

func (s *Sized) layout(t *Tree, id NodeID, f Frame) {
	for _, c := range t.Children(id) {
		t.place(c, f)
	}
}

// Measured passes its single child's measure through and gives the child
// its whole frame.
type Measured struct{}

func (m *Measured) Kind() Kind { return KindMeasured }

func (m *Measured) usesChildMeasures() bool { return true }

func (m *Measured) measure(t *Tree, id NodeID) mgl32.Vec3 {
	c := t.onlyChild(id)
	t.measureNode(c)
	return t.nodes[c].measure
}

func (m *Measured) layout(t *Tree, id NodeID, f Frame) {
	t.place(t.onlyChild(id), f)
}
