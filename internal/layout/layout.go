package layout

import "github.com/go-gl/mathgl/mgl32"

// Frame holds the world-space placement assigned to a node during layout.
// It is what the renderer and hit testing read once an update completes.
type Frame struct {
	// Position is the world-space location of the node's local origin,
	// the low corner of its box.
	Position mgl32.Vec3

	// Rotation is the world-space orientation of the node.
	Rotation mgl32.Quat

	// Size is the extent assigned by the parent, in local axes.
	Size mgl32.Vec3

	// DepthOffset biases depth comparisons between coplanar surfaces.
	// Higher values draw over lower ones.
	DepthOffset int
}

// IdentityFrame returns a zero-sized frame at the origin with no rotation.
func IdentityFrame() Frame {
	return Frame{Rotation: mgl32.QuatIdent()}
}

// ToWorld converts a point in the frame's local space into world space.
func (f Frame) ToWorld(local mgl32.Vec3) mgl32.Vec3 {
	return f.Position.Add(f.Rotation.Rotate(local))
}

// ToLocal converts a world-space point into the frame's local space.
func (f Frame) ToLocal(world mgl32.Vec3) mgl32.Vec3 {
	return f.Rotation.Inverse().Rotate(world.Sub(f.Position))
}

// Center returns the world-space center of the frame's box.
func (f Frame) Center() mgl32.Vec3 {
	return f.ToWorld(f.Size.Mul(0.5))
}

// child returns a frame sharing f's rotation and depth, offset by local and
// sized to size.
func (f Frame) child(local, size mgl32.Vec3) Frame {
	return Frame{
		Position:    f.ToWorld(local),
		Rotation:    f.Rotation,
		Size:        size,
		DepthOffset: f.DepthOffset,
	}
}
