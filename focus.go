package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/grindlemire/go-spatial/internal/debug"
)

// Focusable is implemented by widgets that can receive input focus.
// The focus manager reads the layout of Node but never changes it.
type Focusable interface {
	// Node returns the layout node whose frame represents the widget.
	Node() NodeID

	// IsFocusable returns whether this widget can currently receive focus.
	// May return false for disabled widgets.
	IsFocusable() bool

	// HandleEvent processes an input event.
	// Returns true if the event was consumed, false to allow propagation.
	HandleEvent(event Event) bool

	// Focus is called when this widget gains focus.
	Focus()

	// Blur is called when this widget loses focus.
	Blur()
}

// Direction is a spatial focus move, relative to the orientation of the
// focused widget.
type Direction uint8

const (
	DirLeft     Direction = iota // -X
	DirRight                     // +X
	DirDown                      // -Y
	DirUp                        // +Y
	DirBackward                  // -Z, away from the viewer
	DirForward                   // +Z, toward the viewer
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirBackward:
		return "backward"
	case DirForward:
		return "forward"
	default:
		return "unknown"
	}
}

// vector returns the local-space unit vector of d.
func (d Direction) vector() mgl32.Vec3 {
	switch d {
	case DirLeft:
		return mgl32.Vec3{-1, 0, 0}
	case DirRight:
		return mgl32.Vec3{1, 0, 0}
	case DirDown:
		return mgl32.Vec3{0, -1, 0}
	case DirUp:
		return mgl32.Vec3{0, 1, 0}
	case DirBackward:
		return mgl32.Vec3{0, 0, -1}
	default:
		return mgl32.Vec3{0, 0, 1}
	}
}

const (
	// offAxisWeight penalizes candidates away from the direction of travel.
	offAxisWeight = 2

	// minAlong is how far ahead a candidate must be to count as lying in
	// the direction of travel.
	minAlong = 1e-4
)

// FocusManager tracks focus state for a set of focusable widgets.
// Next and Prev cycle in registration order; Move picks the nearest
// widget in a direction using the laid-out frames.
type FocusManager struct {
	tree     *Tree
	elements []Focusable // Registered focusable widgets in order
	current  int         // Index of currently focused widget (-1 = none)
}

// NewFocusManager creates an empty FocusManager reading layout from t.
func NewFocusManager(t *Tree) *FocusManager {
	return &FocusManager{
		tree:    t,
		current: -1,
	}
}

// Register adds a focusable widget to the manager.
// The first focusable widget registered receives focus.
func (f *FocusManager) Register(elem Focusable) {
	f.elements = append(f.elements, elem)
	if f.current == -1 && elem.IsFocusable() {
		f.current = len(f.elements) - 1
		elem.Focus()
	}
	debug.Log("FocusManager.Register: node %d, total=%d, current=%d", elem.Node(), len(f.elements), f.current)
}

// Unregister removes a widget from the manager. If it held focus, focus
// moves to the next focusable widget.
func (f *FocusManager) Unregister(elem Focusable) {
	idx := f.indexOf(elem)
	if idx == -1 {
		return
	}

	wasFocused := idx == f.current
	if wasFocused {
		elem.Blur()
	}
	f.elements = append(f.elements[:idx], f.elements[idx+1:]...)

	switch {
	case len(f.elements) == 0:
		f.current = -1
	case wasFocused:
		f.current = -1
		f.focusNextFrom(idx % len(f.elements))
	case idx < f.current:
		f.current--
	}
}

// Focused returns the currently focused widget, or nil if none.
func (f *FocusManager) Focused() Focusable {
	if f.current < 0 || f.current >= len(f.elements) {
		return nil
	}
	return f.elements[f.current]
}

// SetFocus moves focus to the specified widget.
// Does nothing if the widget is not registered or not focusable.
func (f *FocusManager) SetFocus(elem Focusable) {
	idx := f.indexOf(elem)
	if idx == -1 || !elem.IsFocusable() {
		return
	}
	f.focusIndex(idx)
}

// Next moves focus to the next focusable widget, wrapping at the end.
func (f *FocusManager) Next() {
	n := len(f.elements)
	for i := 1; i <= n; i++ {
		idx := (f.current + i + n) % n
		if f.elements[idx].IsFocusable() {
			f.focusIndex(idx)
			return
		}
	}
}

// Prev moves focus to the previous focusable widget, wrapping at the start.
func (f *FocusManager) Prev() {
	n := len(f.elements)
	start := f.current
	if start < 0 {
		start = 0
	}
	for i := 1; i <= n; i++ {
		idx := ((start-i)%n + n) % n
		if f.elements[idx].IsFocusable() {
			f.focusIndex(idx)
			return
		}
	}
}

// Move shifts focus to the nearest focusable widget in direction dir, as
// seen from the focused widget's orientation. Candidates are compared by
// the centers of their frames: the distance along dir plus a penalty for
// distance off that line. Returns false if nothing lies in that direction.
func (f *FocusManager) Move(dir Direction) bool {
	cur := f.Focused()
	if cur == nil {
		return false
	}
	from := f.tree.Frame(cur.Node())
	origin := from.Center()
	axis := from.Rotation.Rotate(dir.vector())

	best, bestScore := -1, float32(math.Inf(1))
	for i, elem := range f.elements {
		if i == f.current || !elem.IsFocusable() {
			continue
		}
		d := f.tree.Frame(elem.Node()).Center().Sub(origin)
		along := d.Dot(axis)
		if along <= minAlong {
			continue
		}
		off := d.Sub(axis.Mul(along)).Len()
		if score := along + offAxisWeight*off; score < bestScore {
			best, bestScore = i, score
		}
	}
	debug.Log("FocusManager.Move: %s from node %d -> index %d", dir, cur.Node(), best)
	if best == -1 {
		return false
	}
	f.focusIndex(best)
	return true
}

// FocusAt focuses the nearest focusable widget hit by ray.
// Returns false if the ray hits none.
func (f *FocusManager) FocusAt(ray Ray) bool {
	nodes := make([]NodeID, 0, len(f.elements))
	byNode := make(map[NodeID]int, len(f.elements))
	for i, elem := range f.elements {
		if elem.IsFocusable() {
			nodes = append(nodes, elem.Node())
			byNode[elem.Node()] = i
		}
	}
	picked := Pick(f.tree, nodes, ray)
	if len(picked) == 0 {
		return false
	}
	f.focusIndex(byNode[picked[0].Node])
	return true
}

// Dispatch sends an event to the focused widget. Direction keys the widget
// does not consume move focus spatially. Returns true if the event was
// handled.
func (f *FocusManager) Dispatch(event Event) bool {
	focused := f.Focused()
	if focused == nil {
		return false
	}
	if focused.HandleEvent(event) {
		return true
	}
	if ke, ok := event.(KeyEvent); ok {
		if ke.Key == KeyTab {
			f.Next()
			return true
		}
		if dir, ok := ke.Direction(); ok {
			return f.Move(dir)
		}
	}
	return false
}

func (f *FocusManager) indexOf(elem Focusable) int {
	for i, e := range f.elements {
		if e == elem {
			return i
		}
	}
	return -1
}

// focusIndex blurs the current widget if it differs and focuses idx.
func (f *FocusManager) focusIndex(idx int) {
	if f.current == idx {
		return
	}
	if old := f.Focused(); old != nil {
		old.Blur()
	}
	f.current = idx
	f.elements[idx].Focus()
}

// focusNextFrom finds the next focusable widget starting from idx.
func (f *FocusManager) focusNextFrom(start int) {
	for i := 0; i < len(f.elements); i++ {
		idx := (start + i) % len(f.elements)
		if f.elements[idx].IsFocusable() {
			f.focusIndex(idx)
			return
		}
	}
}
