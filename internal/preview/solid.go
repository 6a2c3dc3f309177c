package preview

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/grindlemire/go-spatial/internal/layout"
)

// solid builds the SDF of a frame's box. The box keeps its low corner at
// the frame position and turns with the frame rotation. Extents below
// minThickness are raised to it.
func solid(f layout.Frame, minThickness float64) (sdf.SDF3, error) {
	size := v3.Vec{
		X: max(float64(f.Size[0]), minThickness),
		Y: max(float64(f.Size[1]), minThickness),
		Z: max(float64(f.Size[2]), minThickness),
	}
	box, err := sdf.Box3D(size, 0)
	if err != nil {
		return nil, fmt.Errorf("box %v: %w", size, err)
	}
	x, y, z := eulerZYX(f.Rotation)
	m := sdf.Translate3d(v3.Vec{X: float64(f.Position[0]), Y: float64(f.Position[1]), Z: float64(f.Position[2])}).
		Mul(sdf.RotateZ(z)).
		Mul(sdf.RotateY(y)).
		Mul(sdf.RotateX(x)).
		Mul(sdf.Translate3d(v3.Vec{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}))
	return sdf.Transform3D(box, m), nil
}

// eulerZYX decomposes q into angles, in radians, such that
// q = Rz(z) * Ry(y) * Rx(x).
func eulerZYX(q mgl32.Quat) (x, y, z float64) {
	m := q.Normalize().Mat4()
	at := func(r, c int) float64 { return float64(m.At(r, c)) }

	sy := math.Max(-1, math.Min(1, -at(2, 0)))
	y = math.Asin(sy)
	if math.Abs(sy) > 1-1e-6 {
		// gimbal lock: fold z into x
		return math.Atan2(-at(1, 2), at(1, 1)), y, 0
	}
	return math.Atan2(at(2, 1), at(2, 2)), y, math.Atan2(at(1, 0), at(0, 0))
}

// toMesh runs marching cubes over s with cells on its longest axis.
func toMesh(s sdf.SDF3, cells int) *Mesh {
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	m := &Mesh{
		Vertices: make([]float32, 0, len(triangles)*9),
		Normals:  make([]float32, 0, len(triangles)*9),
		Indices:  make([]uint32, 0, len(triangles)*3),
	}
	for i, tri := range triangles {
		n := tri.Normal()
		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
			m.Indices = append(m.Indices, uint32(i*3+j))
		}
	}
	return m
}
