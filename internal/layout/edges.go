package layout

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// EdgeInsets holds a low and a high inset on each of the three axes,
// expressed in the local space of the node they pad.
type EdgeInsets struct {
	Low  mgl32.Vec3
	High mgl32.Vec3
}

// Insets builds EdgeInsets from CSS-style shorthand extended to 3D:
//
//	Insets(a)                  a on every side of every axis
//	Insets(x, y)               x on both x sides, y on both y sides, no z
//	Insets(x0, x1, y0, y1)     explicit x and y sides, no z
//	Insets(x0, x1, y0, y1, z0, z1)
//
// Any other argument count is a programming error and panics.
func Insets(v ...float32) EdgeInsets {
	switch len(v) {
	case 1:
		return InsetsAll(v[0])
	case 2:
		return InsetsSymmetric(v[0], v[1])
	case 4:
		return EdgeInsets{
			Low:  mgl32.Vec3{v[0], v[2], 0},
			High: mgl32.Vec3{v[1], v[3], 0},
		}
	case 6:
		return EdgeInsets{
			Low:  mgl32.Vec3{v[0], v[2], v[4]},
			High: mgl32.Vec3{v[1], v[3], v[5]},
		}
	default:
		panic(fmt.Sprintf("layout: Insets takes 1, 2, 4 or 6 values, got %d", len(v)))
	}
}

// InsetsAll creates EdgeInsets with the same value on all six sides.
func InsetsAll(n float32) EdgeInsets {
	return EdgeInsets{
		Low:  mgl32.Vec3{n, n, n},
		High: mgl32.Vec3{n, n, n},
	}
}

// InsetsSymmetric creates EdgeInsets with x on both x sides and y on both y sides.
func InsetsSymmetric(x, y float32) EdgeInsets {
	return EdgeInsets{
		Low:  mgl32.Vec3{x, y, 0},
		High: mgl32.Vec3{x, y, 0},
	}
}

// Total returns the combined low and high inset on each axis.
func (e EdgeInsets) Total() mgl32.Vec3 {
	return e.Low.Add(e.High)
}

// Axis returns the low and high inset on a single axis.
func (e EdgeInsets) Axis(a Axis) (low, high float32) {
	return e.Low[a], e.High[a]
}

// IsZero returns true if all six values are zero.
func (e EdgeInsets) IsZero() bool {
	return e.Low == mgl32.Vec3{} && e.High == mgl32.Vec3{}
}
