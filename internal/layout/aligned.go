package layout

import "github.com/go-gl/mathgl/mgl32"

// Aligned positions its single child on one axis. With AlignStretch the
// child fills the box; otherwise it keeps its measured extent on Axis and
// sits at the start, center or end. The other axes pass through.
type Aligned struct {
	Axis  Axis
	Align Align
}

func (a *Aligned) Kind() Kind { return KindAligned }

func (a *Aligned) usesChildMeasures() bool { return true }

func (a *Aligned) measure(t *Tree, id NodeID) mgl32.Vec3 {
	c := t.onlyChild(id)
	t.measureNode(c)
	return t.nodes[c].measure
}

func (a *Aligned) layout(t *Tree, id NodeID, f Frame) {
	c := t.onlyChild(id)
	var local mgl32.Vec3
	size := f.Size
	size[a.Axis], local[a.Axis] = a.Align.span(f.Size[a.Axis], t.nodes[c].measure[a.Axis])
	t.place(c, f.child(local, size))
}
