package layout

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// GeometryError describes a node whose frame holds degenerate geometry.
type GeometryError struct {
	Node   NodeID
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("node %d: %s", e.Node, e.Reason)
}

// CheckGeometry walks the subtree under id and reports every node with a
// NaN or infinite frame component, a negative size, or a rotation that is
// not a unit quaternion. Layout itself never validates geometry; this is
// for callers that want to catch degenerate trees.
func (t *Tree) CheckGeometry(id NodeID) []error {
	var errs []error
	t.Walk(id, func(n NodeID) bool {
		f := t.nodes[n].frame
		switch {
		case !finite(f.Position):
			errs = append(errs, &GeometryError{Node: n, Reason: "position is not finite"})
		case !finite(f.Size):
			errs = append(errs, &GeometryError{Node: n, Reason: "size is not finite"})
		case f.Size[0] < 0 || f.Size[1] < 0 || f.Size[2] < 0:
			errs = append(errs, &GeometryError{Node: n, Reason: fmt.Sprintf("negative size %v", f.Size)})
		case math.Abs(float64(f.Rotation.Len())-1) > 1e-3:
			errs = append(errs, &GeometryError{Node: n, Reason: "rotation is not a unit quaternion"})
		}
		return true
	})
	return errs
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}
