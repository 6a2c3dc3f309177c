package spatial

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// TextMetrics sizes monospace text in world units.
type TextMetrics struct {
	Advance    float32 // width of one terminal cell
	LineHeight float32
	Thickness  float32 // measured depth of the text slab
}

// DefaultTextMetrics is a half-unit cell on a one-unit line.
var DefaultTextMetrics = TextMetrics{Advance: 0.5, LineHeight: 1, Thickness: 0.01}

// Text is a leaf widget showing lines of monospace text. Lines are already
// split; Text never wraps. Wide characters take two cells.
type Text struct {
	tree    *Tree
	node    NodeID
	metrics TextMetrics
	lines   []string

	// OnLayout, when set, receives the final frame after every layout,
	// for example to rebuild glyph quads.
	OnLayout func(Frame)
}

// NewText creates a detached Text leaf in t.
func NewText(t *Tree, m TextMetrics, lines ...string) *Text {
	x := &Text{tree: t, metrics: m, lines: normalize(lines)}
	x.node = t.New(&Leaf{
		MeasureFunc: x.measure,
		LayoutFunc: func(f Frame) {
			if x.OnLayout != nil {
				x.OnLayout(f)
			}
		},
	})
	return x
}

// Node returns the layout node of the text.
func (x *Text) Node() NodeID {
	return x.node
}

// Lines returns the current lines.
func (x *Text) Lines() []string {
	return slices.Clone(x.lines)
}

// SetLines replaces the text and marks its measure dirty.
func (x *Text) SetLines(lines ...string) {
	x.lines = normalize(lines)
	x.tree.MarkMeasureDirty(x.node)
}

// Columns returns the width of the widest line in terminal cells.
func (x *Text) Columns() int {
	cols := 0
	for _, line := range x.lines {
		cols = max(cols, runewidth.StringWidth(line))
	}
	return cols
}

func (x *Text) measure() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(x.Columns()) * x.metrics.Advance,
		float32(len(x.lines)) * x.metrics.LineHeight,
		x.metrics.Thickness,
	}
}

// normalize composes each line so combining sequences measure as one cell.
func normalize(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = norm.NFC.String(line)
	}
	return out
}
