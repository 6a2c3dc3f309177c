package main

import (
	"fmt"

	spatial "github.com/grindlemire/go-spatial"
	"github.com/grindlemire/go-spatial/internal/layout"
	"github.com/spf13/cobra"
)

func (a *app) pickCmd() *cobra.Command {
	var (
		size   string
		origin string
		dir    string
		all    bool
	)
	cmd := &cobra.Command{
		Use:   "pick <scene>",
		Short: "Cast a ray into a scene and report the leaves it hits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, err := parseVec3(size)
			if err != nil {
				return fmt.Errorf("--size: %w", err)
			}
			o, err := parseVec3(origin)
			if err != nil {
				return fmt.Errorf("--origin: %w", err)
			}
			d, err := parseVec3(dir)
			if err != nil {
				return fmt.Errorf("--dir: %w", err)
			}
			if d.Len() == 0 {
				return fmt.Errorf("--dir must not be zero")
			}

			s, _, err := a.loadScene(cmd.Context(), args[0], vp)
			if err != nil {
				return err
			}
			names := make(map[layout.NodeID]string, len(s.Names))
			for name, id := range s.Names {
				names[id] = name
			}

			hits := spatial.PickLeaves(s.Tree, s.Top, spatial.Ray{Origin: o, Direction: d})
			w := cmd.OutOrStdout()
			if len(hits) == 0 {
				fmt.Fprintln(w, "no hit")
				return nil
			}
			if !all {
				hits = hits[:1]
			}
			for _, h := range hits {
				label := fmt.Sprintf("#%d", h.Node)
				if n := names[h.Node]; n != "" {
					label += fmt.Sprintf(" %q", n)
				}
				fmt.Fprintf(w, "%s at %s distance %g\n", label, formatVec3(h.Hit.Point), h.Hit.Distance)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "viewport size as x,y,z (default: the scene's measure)")
	cmd.Flags().StringVar(&origin, "origin", "0,0,10", "ray origin as x,y,z")
	cmd.Flags().StringVar(&dir, "dir", "0,0,-1", "ray direction as x,y,z")
	cmd.Flags().BoolVar(&all, "all", false, "list every hit, nearest first")
	return cmd
}
