package layout

import "github.com/go-gl/mathgl/mgl32"

// Axis selects one of the three world axes.
type Axis uint8

const (
	AxisX Axis = iota // Left to right
	AxisY             // Bottom to top
	AxisZ             // Back to front (depth)
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Unit returns the unit vector along a.
func (a Axis) Unit() mgl32.Vec3 {
	var v mgl32.Vec3
	v[a] = 1
	return v
}

// Cross returns the two axes other than a, in ascending order.
func (a Axis) Cross() [2]Axis {
	switch a {
	case AxisX:
		return [2]Axis{AxisY, AxisZ}
	case AxisY:
		return [2]Axis{AxisX, AxisZ}
	default:
		return [2]Axis{AxisX, AxisY}
	}
}

// Align specifies how a child is sized and positioned on one axis of the
// space its parent assigns to it.
type Align uint8

const (
	AlignStretch Align = iota // Fill the assigned extent
	AlignStart                // Keep the measured extent at the low end
	AlignCenter               // Keep the measured extent, centered
	AlignEnd                  // Keep the measured extent at the high end
)

func (a Align) String() string {
	switch a {
	case AlignStretch:
		return "stretch"
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unknown"
	}
}

// span returns the extent and low-end offset of a child measuring measured
// inside an assigned extent of available.
func (a Align) span(available, measured float32) (size, offset float32) {
	switch a {
	case AlignStart:
		return measured, 0
	case AlignCenter:
		return measured, (available - measured) / 2
	case AlignEnd:
		return measured, available - measured
	default: // AlignStretch
		return available, 0
	}
}

// Order specifies the direction in which Flex places its children.
type Order uint8

const (
	OrderDefault Order = iota // Reverse on the Y axis only (see WithVerticalReverse)
	OrderForward              // First child at the low end of the main axis
	OrderReverse              // First child at the high end of the main axis
)

func (o Order) String() string {
	switch o {
	case OrderDefault:
		return "default"
	case OrderForward:
		return "forward"
	case OrderReverse:
		return "reverse"
	default:
		return "unknown"
	}
}
