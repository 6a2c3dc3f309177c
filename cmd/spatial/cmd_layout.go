package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/grindlemire/go-spatial/internal/layout"
	"github.com/grindlemire/go-spatial/internal/scene"
	"github.com/spf13/cobra"
)

// nodeReport is one node of the layout output.
type nodeReport struct {
	Node        layout.NodeID `json:"node"`
	Kind        string        `json:"kind"`
	Name        string        `json:"name,omitempty"`
	Depth       int           `json:"depth"`
	Position    [3]jsonFloat  `json:"position"`
	Rotation    [4]jsonFloat  `json:"rotation"` // w, x, y, z
	Size        [3]jsonFloat  `json:"size"`
	Measure     [3]jsonFloat  `json:"measure"`
	DepthOffset int           `json:"depthOffset"`
}

// jsonFloat encodes NaN and infinities as the strings "NaN", "+Inf" and
// "-Inf", since degenerate frames are reported rather than rejected.
type jsonFloat float32

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 32), nil
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fmt.Errorf("invalid number %s", data)
	}
	*f = jsonFloat(v)
	return nil
}

func jsonVec3(v mgl32.Vec3) [3]jsonFloat {
	return [3]jsonFloat{jsonFloat(v[0]), jsonFloat(v[1]), jsonFloat(v[2])}
}

func vec3(v [3]jsonFloat) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func (a *app) layoutCmd() *cobra.Command {
	var (
		size     string
		asJSON   bool
		validate bool
	)
	cmd := &cobra.Command{
		Use:   "layout <scene>",
		Short: "Evaluate a scene and print every node's frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, err := parseVec3(size)
			if err != nil {
				return fmt.Errorf("--size: %w", err)
			}
			s, _, err := a.loadScene(cmd.Context(), args[0], vp)
			if err != nil {
				return err
			}
			if validate {
				if errs := s.Tree.CheckGeometry(s.Top); len(errs) > 0 {
					for _, e := range errs {
						fmt.Fprintln(cmd.ErrOrStderr(), e)
					}
					return fmt.Errorf("%d geometry problem(s)", len(errs))
				}
			}
			reports := report(s)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(reports)
			}
			printReports(cmd.OutOrStdout(), reports)
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "viewport size as x,y,z (default: the scene's measure)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of an indented tree")
	cmd.Flags().BoolVar(&validate, "check", false, "fail on non-finite or negative frames")
	return cmd
}

func report(s *scene.Scene) []nodeReport {
	names := make(map[layout.NodeID]string, len(s.Names))
	for name, id := range s.Names {
		names[id] = name
	}
	t := s.Tree
	top := t.Depth(s.Top)
	var out []nodeReport
	t.Walk(s.Top, func(id layout.NodeID) bool {
		f := t.Frame(id)
		out = append(out, nodeReport{
			Node:        id,
			Kind:        t.Behavior(id).Kind().String(),
			Name:        names[id],
			Depth:       t.Depth(id) - top,
			Position:    jsonVec3(f.Position),
			Rotation:    [4]jsonFloat{jsonFloat(f.Rotation.W), jsonFloat(f.Rotation.V[0]), jsonFloat(f.Rotation.V[1]), jsonFloat(f.Rotation.V[2])},
			Size:        jsonVec3(f.Size),
			Measure:     jsonVec3(t.Measure(id)),
			DepthOffset: f.DepthOffset,
		})
		return true
	})
	return out
}

func printReports(w io.Writer, reports []nodeReport) {
	for _, r := range reports {
		label := r.Kind
		if r.Name != "" {
			label += fmt.Sprintf(" %q", r.Name)
		}
		fmt.Fprintf(w, "%s#%d %s pos=%s size=%s",
			strings.Repeat("  ", r.Depth), r.Node, label,
			formatVec3(vec3(r.Position)), formatVec3(vec3(r.Size)))
		if r.DepthOffset != 0 {
			fmt.Fprintf(w, " layer=%d", r.DepthOffset)
		}
		fmt.Fprintln(w)
	}
}
