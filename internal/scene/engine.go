// Package scene builds layout trees from a small Lisp dialect evaluated by
// zygomys. A script is a sequence of expressions whose last value is the
// top node of the scene:
//
//	(def gap 0.5)
//	(flex :axis :y :spacing gap
//	  (text "Title" :name "title")
//	  (flexible (leaf 4 2 0) :weight 1))
package scene

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/glycerine/zygomys/zygo"
	spatial "github.com/grindlemire/go-spatial"
	"github.com/grindlemire/go-spatial/internal/debug"
	"github.com/grindlemire/go-spatial/internal/layout"
)

// DefaultTimeout bounds a single evaluation when the Engine has none set.
const DefaultTimeout = 5 * time.Second

// EvalError is a problem in the script itself, such as a parse error, an
// unknown symbol or a builtin rejecting its arguments.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Scene is the result of a successful evaluation. The top node is
// detached; call Attach to schedule it.
type Scene struct {
	Tree  *layout.Tree
	Top   layout.NodeID
	Names map[string]layout.NodeID
	Texts map[layout.NodeID]*spatial.Text
}

// Lookup returns the node created with :name.
func (s *Scene) Lookup(name string) (layout.NodeID, bool) {
	id, ok := s.Names[name]
	return id, ok
}

// Attach creates a Root scheduling the scene's top node.
func (s *Scene) Attach() *layout.Root {
	return layout.NewRoot(s.Tree, s.Top)
}

// Engine evaluates scene scripts. Each evaluation runs in a fresh zygomys
// sandbox and builds a fresh Tree. It is safe for concurrent use.
type Engine struct {
	timeout  time.Duration
	metrics  spatial.TextMetrics
	treeOpts []layout.Option

	mu         sync.Mutex
	generation uint64
}

// NewEngine creates an engine. Trees it builds use treeOpts.
func NewEngine(timeout time.Duration, treeOpts ...layout.Option) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Engine{
		timeout:  timeout,
		metrics:  spatial.DefaultTextMetrics,
		treeOpts: treeOpts,
	}
}

// SetTextMetrics changes the metrics used by the text builtin.
func (e *Engine) SetTextMetrics(m spatial.TextMetrics) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.metrics = m
}

type evalResult struct {
	scene  *Scene
	errors []EvalError
	err    error
}

// Evaluate runs source and returns the scene it describes.
//
// Script problems come back as EvalErrors with a nil error. The error is
// reserved for failures outside the script: a timeout, a cancelled
// context, an evaluation superseded by a newer one, invalid tree options
// or a panic in the interpreter.
func (e *Engine) Evaluate(ctx context.Context, source string) (*Scene, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	metrics := e.metrics
	e.mu.Unlock()

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		s, evalErrs, err := e.evaluate(source, metrics)
		ch <- evalResult{scene: s, errors: evalErrs, err: err}
	}()

	timer := time.NewTimer(e.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		e.mu.Lock()
		current := e.generation
		e.mu.Unlock()
		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by a newer request")
		}
		return res.scene, res.errors, res.err
	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", e.timeout)
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
}

func (e *Engine) evaluate(source string, metrics spatial.TextMetrics) (*Scene, []EvalError, error) {
	if strings.TrimSpace(source) == "" {
		return nil, []EvalError{{Message: "empty scene"}}, nil
	}

	tree, err := layout.NewTree(e.treeOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid tree options: %w", err)
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	b := newBuilder(tree, metrics)
	b.register(env)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	res, err := env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	top, ok := res.(*sexpNode)
	if !ok {
		return nil, []EvalError{{Message: fmt.Sprintf("scene must end with a node, got %s", res.SexpString(nil))}}, nil
	}
	if p := tree.Parent(top.id); p != layout.NoNode {
		return nil, []EvalError{{Message: fmt.Sprintf("scene result %s is already a child of node %d", top.SexpString(nil), p)}}, nil
	}

	debug.Log("scene: evaluated %d nodes, top %d", tree.Len(), top.id)
	return &Scene{Tree: tree, Top: top.id, Names: b.names, Texts: b.texts}, nil, nil
}

var (
	linePattern      = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
	linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)
)

// parseZygomysError extracts a line number from a zygomys error when it
// carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
