package layout

import "github.com/go-gl/mathgl/mgl32"

// Padding insets its single child by Insets on each side of each axis.
// Insets are local to the node and rotate with it.
type Padding struct {
	Insets EdgeInsets
}

func (p *Padding) Kind() Kind { return KindPadding }

func (p *Padding) usesChildMeasures() bool { return true }

func (p *Padding) measure(t *Tree, id NodeID) mgl32.Vec3 {
	c := t.onlyChild(id)
	t.measureNode(c)
	return t.nodes[c].measure.Add(p.Insets.Total())
}

func (p *Padding) layout(t *Tree, id NodeID, f Frame) {
	c := t.onlyChild(id)
	t.place(c, f.child(p.Insets.Low, f.Size.Sub(p.Insets.Total())))
}
