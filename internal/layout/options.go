package layout

import (
	"fmt"
	"math"
)

// DefaultStackDelta is the distance between consecutive Stack layers when
// neither the Stack nor the Tree overrides it.
const DefaultStackDelta = 0.001

// Option is a functional option for configuring a Tree.
type Option func(*Tree) error

// WithStackDelta sets the default distance between Stack layers.
// Must be positive and finite so that layers are strictly ordered.
func WithStackDelta(d float32) Option {
	return func(t *Tree) error {
		if d <= 0 || math.IsInf(float64(d), 0) || math.IsNaN(float64(d)) {
			return fmt.Errorf("stack delta must be a positive finite number, got %v", d)
		}
		t.stackDelta = d
		return nil
	}
}

// WithStackAxis sets the default axis along which Stack layers are offset.
// Default is AxisZ.
func WithStackAxis(a Axis) Option {
	return func(t *Tree) error {
		if a > AxisZ {
			return fmt.Errorf("invalid stack axis %d", a)
		}
		t.stackAxis = a
		return nil
	}
}

// WithVerticalReverse controls whether Flex containers on the Y axis with
// OrderDefault place their first child at the top. Default is true, which
// keeps reading order top-down in a Y-up world.
func WithVerticalReverse(reverse bool) Option {
	return func(t *Tree) error {
		t.verticalReverse = reverse
		return nil
	}
}

// WithCycleCheck enables or disables the ancestor walk that AddChild performs
// to reject cycles. Default is enabled.
func WithCycleCheck(enabled bool) Option {
	return func(t *Tree) error {
		t.cycleCheck = enabled
		return nil
	}
}
