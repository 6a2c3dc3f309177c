package scene

import (
	"fmt"

	"github.com/glycerine/zygomys/zygo"
	"github.com/go-gl/mathgl/mgl32"
	spatial "github.com/grindlemire/go-spatial"
	"github.com/grindlemire/go-spatial/internal/layout"
)

type builtinFunc = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// builder owns the tree a script populates.
type builder struct {
	tree    *layout.Tree
	metrics spatial.TextMetrics
	names   map[string]layout.NodeID
	texts   map[layout.NodeID]*spatial.Text
}

func newBuilder(t *layout.Tree, m spatial.TextMetrics) *builder {
	return &builder{
		tree:    t,
		metrics: m,
		names:   make(map[string]layout.NodeID),
		texts:   make(map[layout.NodeID]*spatial.Text),
	}
}

// guard turns layout panics, such as a cycle or a wrong child count, into
// script errors.
func guard(fn builtinFunc) builtinFunc {
	return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (res zygo.Sexp, err error) {
		defer func() {
			if r := recover(); r != nil {
				res, err = zygo.SexpNull, fmt.Errorf("%s: %v", name, r)
			}
		}()
		res, err = fn(env, name, args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("%s: %w", name, err)
		}
		return res, nil
	}
}

// register installs the scene builtins into env.
func (b *builder) register(env *zygo.Zlisp) {
	for name, fn := range map[string]builtinFunc{
		"vec3":     b.vec3,
		"insets":   b.insets,
		"leaf":     b.leaf,
		"text":     b.text,
		"flex":     b.flex,
		"flexible": b.flexible,
		"stack":    b.stack,
		"padding":  b.padding,
		"aligned":  b.aligned,
		"cuboid":   b.cuboid,
		"sized":    b.sized,
		"measured": b.measured,
	} {
		env.AddFunction(name, guard(fn))
	}
}

// node creates a node and records its :name.
func (b *builder) node(pa kwArgs, beh layout.Behavior, children []*sexpNode) (zygo.Sexp, error) {
	var name string
	if v, ok := pa.kw["name"]; ok {
		s, err := toString(v)
		if err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
		if _, dup := b.names[s]; dup {
			return nil, fmt.Errorf("name %q is already used", s)
		}
		name = s
	}
	ids := make([]layout.NodeID, len(children))
	for i, c := range children {
		ids[i] = c.id
	}
	id := b.tree.New(beh, ids...)
	if name != "" {
		b.names[name] = id
	}
	return &sexpNode{id: id, kind: beh.Kind(), name: name}, nil
}

// (vec3 x y z)
func (b *builder) vec3(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("requires exactly 3 arguments, got %d", len(args))
	}
	var v mgl32.Vec3
	for i, a := range args {
		f, err := toFloat32(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", layout.Axis(i), err)
		}
		v[i] = f
	}
	return &sexpVec3{v: v}, nil
}

// (insets 1) (insets x y) (insets l r b t) (insets l r b t back front)
func (b *builder) insets(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	vals := make([]float32, len(args))
	for i, a := range args {
		f, err := toFloat32(a)
		if err != nil {
			return nil, err
		}
		vals[i] = f
	}
	return &sexpInsets{e: layout.Insets(vals...)}, nil
}

// (leaf (vec3 w h d) :name "n") or (leaf w h d)
func (b *builder) leaf(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.unknown("name"); err != nil {
		return nil, err
	}
	var m mgl32.Vec3
	switch len(pa.positional) {
	case 0:
	case 1:
		v, err := toVec3(pa.positional[0])
		if err != nil {
			return nil, err
		}
		m = v
	case 3:
		v, err := b.vec3(env, name, pa.positional)
		if err != nil {
			return nil, err
		}
		m = v.(*sexpVec3).v
	default:
		return nil, fmt.Errorf("expected a vec3 or three numbers, got %d values", len(pa.positional))
	}
	return b.node(pa, layout.FixedLeaf(m), nil)
}

// (text "line" "line" :name "n")
func (b *builder) text(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.unknown("name"); err != nil {
		return nil, err
	}
	lines := make([]string, len(pa.positional))
	for i, a := range pa.positional {
		s, err := toString(a)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		lines[i] = s
	}
	x := spatial.NewText(b.tree, b.metrics, lines...)
	b.texts[x.Node()] = x
	if v, ok := pa.kw["name"]; ok {
		s, err := toString(v)
		if err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
		if _, dup := b.names[s]; dup {
			return nil, fmt.Errorf("name %q is already used", s)
		}
		b.names[s] = x.Node()
		return &sexpNode{id: x.Node(), kind: layout.KindLeaf, name: s}, nil
	}
	return &sexpNode{id: x.Node(), kind: layout.KindLeaf}, nil
}

// (flex :axis :x :spacing 1 :order :reverse :align-y :center child ...)
// Children that are not flexible are wrapped with weight 0.
func (b *builder) flex(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.unknown("name", "axis", "spacing", "order", "align-x", "align-y", "align-z"); err != nil {
		return nil, err
	}
	fx := &layout.Flex{}
	var err error
	if v, ok := pa.kw["axis"]; ok {
		if fx.Axis, err = toAxis(v); err != nil {
			return nil, fmt.Errorf("axis: %w", err)
		}
	}
	if v, ok := pa.kw["spacing"]; ok {
		if fx.Spacing, err = toFloat32(v); err != nil {
			return nil, fmt.Errorf("spacing: %w", err)
		}
	}
	if v, ok := pa.kw["order"]; ok {
		if fx.Order, err = toOrder(v); err != nil {
			return nil, fmt.Errorf("order: %w", err)
		}
	}
	for a, key := range []string{"align-x", "align-y", "align-z"} {
		if v, ok := pa.kw[key]; ok {
			if fx.CrossAlign[a], err = toAlign(v); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	children, err := toNodes(pa.positional)
	if err != nil {
		return nil, err
	}
	for i, c := range children {
		if c.kind != layout.KindFlexible {
			children[i] = &sexpNode{
				id:   b.tree.New(&layout.Flexible{}, c.id),
				kind: layout.KindFlexible,
			}
		}
	}
	return b.node(pa, fx, children)
}

// (flexible child :weight 2)
func (b *builder) flexible(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.unknown("name", "weight"); err != nil {
		return nil, err
	}
	fl := &layout.Flexible{}
	if v, ok := pa.kw["weight"]; ok {
		w, err := toFloat32(v)
		if err != nil {
			return nil, fmt.Errorf("weight: %w", err)
		}
		if w < 0 {
			return nil, fmt.Errorf("weight must not be negative, got %g", w)
		}
		fl.Weight = w
	}
	children, err := b.one(pa.positional)
	if err != nil {
		return nil, err
	}
	return b.node(pa, fl, children)
}

// (stack :offset (vec3 0 0 0.1) child ...)
func (b *builder) stack(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.unknown("name", "offset"); err != nil {
		return nil, err
	}
	s := &layout.Stack{}
	if v, ok := pa.kw["offset"]; ok {
		off, err := toVec3(v)
		if err != nil {
			return nil, fmt.Errorf("offset: %w", err)
		}
		s.Offset = off
	}
	children, err := toNodes(pa.positional)
	if err != nil {
		return nil, err
	}
	return b.node(pa, s, children)
}

// (padding (insets 1 2) child) or (padding 1 child)
func (b *builder) padding(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.unknown("name"); err != nil {
		return nil, err
	}
	if len(pa.positional) != 2 {
		return nil, fmt.Errorf("expected insets and one child, got %d values", len(pa.positional))
	}
	e, err := toInsets(pa.positional[0])
	if err != nil {
		return nil, err
	}
	children, err := b.one(pa.positional[1:])
	if err != nil {
		return nil, err
	}
	return b.node(pa, &layout.Padding{Insets: e}, children)
}

// (aligned :axis :y :align :center child)
func (b *builder) aligned(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.unknown("name", "axis", "align"); err != nil {
		return nil, err
	}
	a := &layout.Aligned{}
	var err error
	if v, ok := pa.kw["axis"]; ok {
		if a.Axis, err = toAxis(v); err != nil {
			return nil, fmt.Errorf("axis: %w", err)
		}
	}
	if v, ok := pa.kw["align"]; ok {
		if a.Align, err = toAlign(v); err != nil {
			return nil, fmt.Errorf("align: %w", err)
		}
	}
	children, err := b.one(pa.positional)
	if err != nil {
		return nil, err
	}
	return b.node(pa, a, children)
}

// (cuboid front back left right top bottom)
func (b *builder) cuboid(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.unknown("name"); err != nil {
		return nil, err
	}
	children, err := toNodes(pa.positional)
	if err != nil {
		return nil, err
	}
	if len(children) != 6 {
		return nil, fmt.Errorf("requires 6 faces (front back left right top bottom), got %d", len(children))
	}
	return b.node(pa, &layout.Cuboid{}, children)
}

// (sized (vec3 w h d) child ...)
func (b *builder) sized(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.unknown("name"); err != nil {
		return nil, err
	}
	if len(pa.positional) == 0 {
		return nil, fmt.Errorf("requires a size")
	}
	size, err := toVec3(pa.positional[0])
	if err != nil {
		return nil, err
	}
	children, err := toNodes(pa.positional[1:])
	if err != nil {
		return nil, err
	}
	return b.node(pa, &layout.Sized{Size: size}, children)
}

// (measured child)
func (b *builder) measured(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	pa := parseArgs(args)
	if err := pa.unknown("name"); err != nil {
		return nil, err
	}
	children, err := b.one(pa.positional)
	if err != nil {
		return nil, err
	}
	return b.node(pa, &layout.Measured{}, children)
}

func (b *builder) one(args []zygo.Sexp) ([]*sexpNode, error) {
	children, err := toNodes(args)
	if err != nil {
		return nil, err
	}
	if len(children) != 1 {
		return nil, fmt.Errorf("requires exactly one child, got %d", len(children))
	}
	return children, nil
}
