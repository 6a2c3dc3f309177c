package scene

import (
	"fmt"
	"strings"

	"github.com/glycerine/zygomys/zygo"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/grindlemire/go-spatial/internal/layout"
)

// sexpNode is a layout node flowing between builtins.
type sexpNode struct {
	id   layout.NodeID
	kind layout.Kind
	name string
}

func (n *sexpNode) SexpString(ps *zygo.PrintState) string {
	if n.name != "" {
		return fmt.Sprintf("(%s %q)", n.kind, n.name)
	}
	return fmt.Sprintf("(%s #%d)", n.kind, n.id)
}
func (n *sexpNode) Type() *zygo.RegisteredType { return nil }

type sexpVec3 struct {
	v mgl32.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.v[0], v.v[1], v.v[2])
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

type sexpInsets struct {
	e layout.EdgeInsets
}

func (s *sexpInsets) SexpString(ps *zygo.PrintState) string {
	l, h := s.e.Low, s.e.High
	return fmt.Sprintf("(insets %g %g %g %g %g %g)", l[0], h[0], l[1], h[1], l[2], h[2])
}
func (s *sexpInsets) Type() *zygo.RegisteredType { return nil }

// kwArgs splits a builtin's arguments into keyword and positional values.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(args []zygo.Sexp) kwArgs {
	pa := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			pa.positional = append(pa.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			pa.kw[name] = args[i+1]
			i++
		} else {
			pa.kw[name] = zygo.SexpNull
		}
	}
	return pa
}

// unknown returns an error naming the first keyword not in allowed.
func (pa kwArgs) unknown(allowed ...string) error {
	for k := range pa.kw {
		found := false
		for _, a := range allowed {
			if k == a {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown keyword :%s", k)
		}
	}
	return nil
}

func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

func toFloat32(s zygo.Sexp) (float32, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float32(v.Val), nil
	case *zygo.SexpFloat:
		return float32(v.Val), nil
	}
	return 0, fmt.Errorf("expected number, got %s", s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %s", s.SexpString(nil))
}

// toKeyword accepts :name or "name".
func toKeyword(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword, got %s", s.SexpString(nil))
	}
	return strings.TrimPrefix(str.S, kwPrefix), nil
}

func toAxis(s zygo.Sexp) (layout.Axis, error) {
	name, err := toKeyword(s)
	if err != nil {
		return 0, err
	}
	switch name {
	case "x":
		return layout.AxisX, nil
	case "y":
		return layout.AxisY, nil
	case "z":
		return layout.AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis %q, expected x, y or z", name)
}

func toAlign(s zygo.Sexp) (layout.Align, error) {
	name, err := toKeyword(s)
	if err != nil {
		return 0, err
	}
	for _, a := range []layout.Align{layout.AlignStretch, layout.AlignStart, layout.AlignCenter, layout.AlignEnd} {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("invalid align %q, expected stretch, start, center or end", name)
}

func toOrder(s zygo.Sexp) (layout.Order, error) {
	name, err := toKeyword(s)
	if err != nil {
		return 0, err
	}
	for _, o := range []layout.Order{layout.OrderDefault, layout.OrderForward, layout.OrderReverse} {
		if o.String() == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("invalid order %q, expected default, forward or reverse", name)
}

func toVec3(s zygo.Sexp) (mgl32.Vec3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.v, nil
	}
	return mgl32.Vec3{}, fmt.Errorf("expected vec3, got %s", s.SexpString(nil))
}

// toInsets accepts an (insets ...) value or a single number for all sides.
func toInsets(s zygo.Sexp) (layout.EdgeInsets, error) {
	if v, ok := s.(*sexpInsets); ok {
		return v.e, nil
	}
	n, err := toFloat32(s)
	if err != nil {
		return layout.EdgeInsets{}, fmt.Errorf("expected insets or number, got %s", s.SexpString(nil))
	}
	return layout.InsetsAll(n), nil
}

// toNodes flattens node values, lists and arrays of nodes into ids.
func toNodes(args []zygo.Sexp) ([]*sexpNode, error) {
	var out []*sexpNode
	for _, a := range args {
		switch v := a.(type) {
		case *sexpNode:
			out = append(out, v)
		case *zygo.SexpPair:
			items, err := zygo.ListToArray(v)
			if err != nil {
				return nil, err
			}
			nested, err := toNodes(items)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		case *zygo.SexpArray:
			nested, err := toNodes(v.Val)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		default:
			if a == zygo.SexpNull {
				continue
			}
			return nil, fmt.Errorf("expected node, got %s", a.SexpString(nil))
		}
	}
	return out, nil
}
