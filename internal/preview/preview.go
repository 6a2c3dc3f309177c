// Package preview turns laid-out leaf boxes into triangle meshes with the
// sdfx marching cubes renderer, for inspecting a layout outside a renderer.
package preview

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/grindlemire/go-spatial/internal/debug"
	"github.com/grindlemire/go-spatial/internal/layout"
	"golang.org/x/sync/errgroup"
)

// Options tunes tessellation.
type Options struct {
	Cells        int     // marching cubes cells on a box's longest axis
	MinThickness float32 // flat boxes are thickened to at least this
	Workers      int     // concurrent boxes; 0 means one per CPU
}

// DefaultOptions matches the default config file.
var DefaultOptions = Options{Cells: 32, MinThickness: 0.05}

// Box is one leaf's final placement.
type Box struct {
	Node  layout.NodeID
	Name  string
	Frame layout.Frame
}

// Boxes collects the frames of every leaf under top with a non-zero size.
// names maps scene names to nodes and labels the boxes that have one.
func Boxes(t *layout.Tree, top layout.NodeID, names map[string]layout.NodeID) []Box {
	byID := make(map[layout.NodeID]string, len(names))
	for name, id := range names {
		byID[id] = name
	}
	var out []Box
	for _, id := range t.Leaves(top) {
		f := t.Frame(id)
		if f.Size == (mgl32.Vec3{}) {
			continue
		}
		out = append(out, Box{Node: id, Name: byID[id], Frame: f})
	}
	return out
}

// Tessellate meshes every box concurrently. Meshes come back in the order
// of boxes.
func Tessellate(ctx context.Context, boxes []Box, opts Options) ([]*Mesh, error) {
	if opts.Cells < 2 {
		return nil, fmt.Errorf("preview: cells must be at least 2, got %d", opts.Cells)
	}
	if opts.MinThickness <= 0 {
		return nil, fmt.Errorf("preview: min thickness must be positive, got %v", opts.MinThickness)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	meshes := make([]*Mesh, len(boxes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, b := range boxes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := tessellateBox(b, opts)
			if err != nil {
				return fmt.Errorf("preview: node %d: %w", b.Node, err)
			}
			meshes[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	debug.Log("preview: tessellated %d boxes with %d workers", len(boxes), workers)
	return meshes, nil
}

func tessellateBox(b Box, opts Options) (*Mesh, error) {
	// Every axis needs two cells so marching cubes samples the inside.
	longest := max(b.Frame.Size[0], b.Frame.Size[1], b.Frame.Size[2])
	floor := max(float64(opts.MinThickness), 2*float64(longest)/float64(opts.Cells))

	s, err := solid(b.Frame, floor)
	if err != nil {
		return nil, err
	}
	m := toMesh(s, opts.Cells)
	m.Node = b.Node
	m.Name = b.Name
	return m, nil
}

// Summary is a per-mesh line of counts, sorted by node.
type Summary struct {
	Node      layout.NodeID
	Name      string
	Triangles int
}

// Summarize lists triangle counts per mesh.
func Summarize(meshes []*Mesh) []Summary {
	out := make([]Summary, 0, len(meshes))
	for _, m := range meshes {
		out = append(out, Summary{Node: m.Node, Name: m.Name, Triangles: m.TriangleCount()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node < out[j].Node })
	return out
}
