package spatial

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFocusable is a mock implementation of Focusable for testing.
type mockFocusable struct {
	id         string
	node       NodeID
	focusable  bool
	focused    bool
	focusCalls int
	blurCalls  int
	lastEvent  Event
	handled    bool
}

func newMockFocusable(id string, node NodeID, focusable bool) *mockFocusable {
	return &mockFocusable{id: id, node: node, focusable: focusable}
}

func (m *mockFocusable) Node() NodeID      { return m.node }
func (m *mockFocusable) IsFocusable() bool { return m.focusable }

func (m *mockFocusable) HandleEvent(event Event) bool {
	m.lastEvent = event
	return m.handled
}

func (m *mockFocusable) Focus() {
	m.focused = true
	m.focusCalls++
}

func (m *mockFocusable) Blur() {
	m.focused = false
	m.blurCalls++
}

func focusedID(fm *FocusManager) string {
	if f := fm.Focused(); f != nil {
		return f.(*mockFocusable).id
	}
	return ""
}

// gridFocus registers a-d over a 2x2 grid: a b on top, c d below.
func gridFocus(t *testing.T, vp Frame) (*FocusManager, map[string]*mockFocusable) {
	t.Helper()
	tr, _, ids := grid(t, 2, 2, vp)
	fm := NewFocusManager(tr)
	elems := map[string]*mockFocusable{
		"a": newMockFocusable("a", ids[0][0], true),
		"b": newMockFocusable("b", ids[0][1], true),
		"c": newMockFocusable("c", ids[1][0], true),
		"d": newMockFocusable("d", ids[1][1], true),
	}
	for _, id := range []string{"a", "b", "c", "d"} {
		fm.Register(elems[id])
	}
	return fm, elems
}

func TestFocusManager_Register(t *testing.T) {
	type tc struct {
		focusable []bool
		want      string
	}

	tests := map[string]tc{
		"first focusable wins": {focusable: []bool{true, true}, want: "0"},
		"skips disabled":       {focusable: []bool{false, true, true}, want: "1"},
		"none focusable":       {focusable: []bool{false, false}, want: ""},
		"empty":                {want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fm := NewFocusManager(nil)
			for i, f := range tt.focusable {
				fm.Register(newMockFocusable(string(rune('0'+i)), NodeID(i), f))
			}
			assert.Equal(t, tt.want, focusedID(fm))
		})
	}
}

func TestFocusManager_NextPrev(t *testing.T) {
	fm := NewFocusManager(nil)
	a := newMockFocusable("a", 0, true)
	b := newMockFocusable("b", 1, false)
	c := newMockFocusable("c", 2, true)
	fm.Register(a)
	fm.Register(b)
	fm.Register(c)

	fm.Next()
	assert.Equal(t, "c", focusedID(fm))
	assert.False(t, a.focused)
	assert.Equal(t, 1, a.blurCalls)

	fm.Next()
	assert.Equal(t, "a", focusedID(fm))

	fm.Prev()
	assert.Equal(t, "c", focusedID(fm))
	assert.Equal(t, 0, b.focusCalls)

	fm.SetFocus(b)
	assert.Equal(t, "c", focusedID(fm))
	fm.SetFocus(a)
	assert.Equal(t, "a", focusedID(fm))
	assert.True(t, a.focused)
	assert.False(t, c.focused)
}

func TestFocusManager_Unregister(t *testing.T) {
	fm := NewFocusManager(nil)
	a := newMockFocusable("a", 0, true)
	b := newMockFocusable("b", 1, true)
	c := newMockFocusable("c", 2, true)
	fm.Register(a)
	fm.Register(b)
	fm.Register(c)

	fm.SetFocus(b)
	fm.Unregister(b)
	assert.False(t, b.focused)
	assert.Equal(t, "c", focusedID(fm))

	fm.Unregister(a)
	assert.Equal(t, "c", focusedID(fm))

	fm.Unregister(c)
	assert.Nil(t, fm.Focused())
	fm.Unregister(c)
}

func TestFocusManager_Move(t *testing.T) {
	type tc struct {
		from   string
		dir    Direction
		want   string
		wantOK bool
	}

	tests := map[string]tc{
		"right along the top row": {from: "a", dir: DirRight, want: "b", wantOK: true},
		"down prefers straight":   {from: "a", dir: DirDown, want: "c", wantOK: true},
		"up from bottom right":    {from: "d", dir: DirUp, want: "b", wantOK: true},
		"left from d":             {from: "d", dir: DirLeft, want: "c", wantOK: true},
		"nothing to the left":     {from: "a", dir: DirLeft, want: "a"},
		"nothing above":           {from: "b", dir: DirUp, want: "b"},
		"nothing in depth":        {from: "a", dir: DirForward, want: "a"},
	}

	viewports := map[string]Frame{
		"flat": flatViewport(2, 2),
		"turned": {
			Position: mgl32.Vec3{4, -3, 1},
			Rotation: mgl32.QuatRotate(mgl32.DegToRad(120), mgl32.Vec3{0, 0.6, 0.8}),
			Size:     mgl32.Vec3{2, 2, 0},
		},
	}

	for vpName, vp := range viewports {
		for name, tt := range tests {
			t.Run(vpName+"/"+name, func(t *testing.T) {
				fm, elems := gridFocus(t, vp)
				fm.SetFocus(elems[tt.from])
				require.Equal(t, tt.from, focusedID(fm))

				assert.Equal(t, tt.wantOK, fm.Move(tt.dir))
				assert.Equal(t, tt.want, focusedID(fm))
			})
		}
	}
}

func TestFocusManager_Dispatch(t *testing.T) {
	fm, elems := gridFocus(t, flatViewport(2, 2))

	elems["a"].handled = true
	assert.True(t, fm.Dispatch(KeyEvent{Key: KeyRight}))
	assert.Equal(t, "a", focusedID(fm))
	assert.Equal(t, KeyEvent{Key: KeyRight}, elems["a"].lastEvent)

	elems["a"].handled = false
	assert.True(t, fm.Dispatch(KeyEvent{Key: KeyRight}))
	assert.Equal(t, "b", focusedID(fm))

	assert.True(t, fm.Dispatch(KeyEvent{Key: KeyTab}))
	assert.Equal(t, "c", focusedID(fm))

	assert.False(t, fm.Dispatch(KeyEvent{Key: KeyRune, Rune: 'x'}))
	assert.False(t, fm.Dispatch(KeyEvent{Key: KeyDown}))
}

func TestFocusManager_FocusAt(t *testing.T) {
	fm, _ := gridFocus(t, flatViewport(2, 2))

	assert.True(t, fm.FocusAt(Ray{Origin: mgl32.Vec3{1.5, 0.5, 5}, Direction: mgl32.Vec3{0, 0, -1}}))
	assert.Equal(t, "d", focusedID(fm))

	assert.False(t, fm.FocusAt(Ray{Origin: mgl32.Vec3{9, 9, 5}, Direction: mgl32.Vec3{0, 0, -1}}))
	assert.Equal(t, "d", focusedID(fm))
}
