package layout

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one side of a Cuboid. Cuboid children are the faces in
// this order.
type Face uint8

const (
	FaceFront  Face = iota // +Z
	FaceBack               // -Z
	FaceLeft               // -X
	FaceRight              // +X
	FaceTop                // +Y
	FaceBottom             // -Y

	faceCount = 6
)

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

var halfSqrt2 = float32(math.Sqrt2 / 2)

// faceRotations map a face laid out in the XY plane facing +Z onto each
// side of the box.
var faceRotations = [faceCount]mgl32.Quat{
	FaceFront:  mgl32.QuatIdent(),
	FaceBack:   {W: 0, V: mgl32.Vec3{0, 1, 0}},
	FaceLeft:   {W: halfSqrt2, V: mgl32.Vec3{0, -halfSqrt2, 0}},
	FaceRight:  {W: halfSqrt2, V: mgl32.Vec3{0, halfSqrt2, 0}},
	FaceTop:    {W: halfSqrt2, V: mgl32.Vec3{-halfSqrt2, 0, 0}},
	FaceBottom: {W: halfSqrt2, V: mgl32.Vec3{halfSqrt2, 0, 0}},
}

// FaceRotation returns the box-local rotation applied to a face.
func FaceRotation(f Face) mgl32.Quat {
	return faceRotations[f]
}

// Cuboid tiles six children over the faces of a box. Each face is laid out
// in its own plane with its measured z as thickness, outside the box
// volume, so adjoining faces meet exactly at the box edges.
type Cuboid struct{}

func (c *Cuboid) Kind() Kind { return KindCuboid }

func (c *Cuboid) usesChildMeasures() bool { return true }

func (c *Cuboid) faces(t *Tree, id NodeID) []NodeID {
	children := t.Children(id)
	if len(children) != faceCount {
		panic(fmt.Sprintf("layout: cuboid node %d requires 6 children, has %d", id, len(children)))
	}
	return children
}

// measure takes each box axis from the faces spanning it: width from
// front, back, top and bottom; height from front, back, left and right;
// depth from left, right, top and bottom.
func (c *Cuboid) measure(t *Tree, id NodeID) mgl32.Vec3 {
	c.faces(t, id)
	m := t.measureChildren(id)
	return mgl32.Vec3{
		max(m[FaceFront][0], m[FaceBack][0], m[FaceTop][0], m[FaceBottom][0]),
		max(m[FaceFront][1], m[FaceBack][1], m[FaceLeft][1], m[FaceRight][1]),
		max(m[FaceLeft][0], m[FaceRight][0], m[FaceTop][1], m[FaceBottom][1]),
	}
}

func (c *Cuboid) layout(t *Tree, id NodeID, f Frame) {
	faces := c.faces(t, id)
	w, h, d := f.Size[0], f.Size[1], f.Size[2]

	origins := [faceCount]mgl32.Vec3{
		FaceFront:  {0, 0, d},
		FaceBack:   {w, 0, 0},
		FaceLeft:   {0, 0, 0},
		FaceRight:  {w, 0, d},
		FaceTop:    {0, h, d},
		FaceBottom: {0, 0, 0},
	}
	extents := [faceCount][2]float32{
		FaceFront:  {w, h},
		FaceBack:   {w, h},
		FaceLeft:   {d, h},
		FaceRight:  {d, h},
		FaceTop:    {w, d},
		FaceBottom: {w, d},
	}

	for i, face := range faces {
		thickness := t.nodes[face].measure[2]
		t.place(face, Frame{
			Position:    f.ToWorld(origins[i]),
			Rotation:    f.Rotation.Mul(faceRotations[i]),
			Size:        mgl32.Vec3{extents[i][0], extents[i][1], thickness},
			DepthOffset: f.DepthOffset,
		})
	}
}
