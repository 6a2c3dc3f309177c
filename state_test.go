package spatial

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoop(t *testing.T) *Loop {
	t.Helper()
	_, root, _ := newTestRoot(t)
	l, err := NewLoop(root)
	require.NoError(t, err)
	return l
}

func TestState_SetRunsBindings(t *testing.T) {
	l := newTestLoop(t)
	s := NewState(l, 1)
	assert.Equal(t, 1, s.Get())

	var got []string
	s.Bind(func(v int) { got = append(got, "first") })
	unbind := s.Bind(func(v int) { got = append(got, "second") })

	s.Set(2)
	assert.Equal(t, 2, s.Get())
	assert.Equal(t, []string{"first", "second"}, got)

	unbind()
	got = nil
	s.Update(func(v int) int { return v * 10 })
	assert.Equal(t, 20, s.Get())
	assert.Equal(t, []string{"first"}, got)
}

func TestState_NilLoopPanics(t *testing.T) {
	assert.Panics(t, func() { NewState[int](nil, 0) })
}

func TestLoop_Batch(t *testing.T) {
	type tc struct {
		run  func(l *Loop, a, b *State[int])
		want []int
	}

	tests := map[string]tc{
		"outside batch runs every set": {
			run: func(l *Loop, a, b *State[int]) {
				a.Set(1)
				a.Set(2)
			},
			want: []int{1, 2},
		},
		"batch keeps last value": {
			run: func(l *Loop, a, b *State[int]) {
				l.Batch(func() {
					a.Set(1)
					a.Set(2)
					a.Set(3)
				})
			},
			want: []int{3},
		},
		"batch orders by first trigger": {
			run: func(l *Loop, a, b *State[int]) {
				l.Batch(func() {
					b.Set(20)
					a.Set(1)
					b.Set(30)
				})
			},
			want: []int{30, 1},
		},
		"nested batch flushes at the outermost": {
			run: func(l *Loop, a, b *State[int]) {
				l.Batch(func() {
					l.Batch(func() { a.Set(1) })
					b.Set(10)
				})
			},
			want: []int{1, 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := newTestLoop(t)
			a := NewState(l, 0)
			b := NewState(l, 0)
			var got []int
			a.Bind(func(v int) { got = append(got, v) })
			b.Bind(func(v int) { got = append(got, v) })

			tt.run(l, a, b)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoop_BatchFlushesOnPanic(t *testing.T) {
	l := newTestLoop(t)
	s := NewState(l, "")
	var got []string
	s.Bind(func(v string) { got = append(got, v) })

	assert.Panics(t, func() {
		l.Batch(func() {
			s.Set("set before panic")
			panic("boom")
		})
	})
	assert.Equal(t, []string{"set before panic"}, got)

	s.Set("after")
	assert.Equal(t, []string{"set before panic", "after"}, got)
}

func TestState_DrivesText(t *testing.T) {
	tr, err := NewTree()
	require.NoError(t, err)
	label := NewText(tr, DefaultTextMetrics, "ab")
	root := NewRoot(tr, tr.New(&Measured{}, label.Node()))
	l, err := NewLoop(root)
	require.NoError(t, err)

	title := NewState(l, "ab")
	title.Bind(func(s string) { label.SetLines(s) })

	require.True(t, l.Tick())
	assert.Equal(t, mgl32.Vec3{1, 1, 0.01}, tr.Measure(label.Node()))

	title.Set("abcd")
	require.True(t, root.HasPending())
	require.True(t, l.Tick())
	assert.Equal(t, mgl32.Vec3{2, 1, 0.01}, tr.Measure(label.Node()))
}

func TestState_DrivesSize(t *testing.T) {
	tr, root, leaf := newTestRoot(t)
	l, err := NewLoop(root)
	require.NoError(t, err)
	require.True(t, l.Tick())

	size := NewState(l, mgl32.Vec3{})
	size.Bind(func(v mgl32.Vec3) { tr.SetSize(leaf, v) })

	size.Set(mgl32.Vec3{4, 2, 1})
	assert.True(t, tr.IsLayoutDirty(leaf))
	assert.True(t, root.HasPending())
}
