package layout

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line in world space. Direction need not be normalized.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Hit is the result of intersecting a ray with a node's box.
type Hit struct {
	OK       bool
	Point    mgl32.Vec3 // world space
	Distance float32    // from the ray origin to Point
}

// IntersectBox intersects a world-space ray with the box [0, f.Size] in the
// frame's local space. A ray starting inside the box hits at its origin.
func IntersectBox(f Frame, r Ray) Hit {
	inv := f.Rotation.Inverse()
	origin := inv.Rotate(r.Origin.Sub(f.Position))
	dir := inv.Rotate(r.Direction)

	tnear := float32(math.Inf(-1))
	tfar := float32(math.Inf(1))
	for a := range 3 {
		if dir[a] == 0 {
			if origin[a] < 0 || origin[a] > f.Size[a] {
				return Hit{}
			}
			continue
		}
		t0 := (0 - origin[a]) / dir[a]
		t1 := (f.Size[a] - origin[a]) / dir[a]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tnear = max(tnear, t0)
		tfar = min(tfar, t1)
		if tnear > tfar {
			return Hit{}
		}
	}

	t := max(tnear, 0)
	if tfar < t {
		return Hit{}
	}
	local := origin.Add(dir.Mul(t))
	point := f.ToWorld(local)
	return Hit{
		OK:       true,
		Point:    point,
		Distance: point.Sub(r.Origin).Len(),
	}
}

// Intersect tests a ray against a node's current frame.
func (t *Tree) Intersect(id NodeID, r Ray) Hit {
	return IntersectBox(t.get(id).frame, r)
}
