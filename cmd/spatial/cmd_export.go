package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-spatial/internal/preview"
	"github.com/spf13/cobra"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		size   string
		output string
		cells  int
	)
	cmd := &cobra.Command{
		Use:   "export <scene>",
		Short: "Tessellate every leaf box and write the meshes as JSON",
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

			opts := preview.Options{
				Cells:        a.cfg.Preview.Cells,
				MinThickness: a.cfg.Preview.MinThickness,
				Workers:      a.cfg.Preview.Workers,
			}
			if cells > 0 {
				opts.Cells = cells
			}
			meshes, err := preview.Tessellate(cmd.Context(), preview.Boxes(s.Tree, s.Top, s.Names), opts)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := preview.WriteJSON(w, meshes); err != nil {
				return fmt.Errorf("writing meshes: %w", err)
			}

			total := 0
			for _, sum := range preview.Summarize(meshes) {
				total += sum.Triangles
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d meshes, %d triangles\n", len(meshes), total)
			return nil
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "viewport size as x,y,z (default: the scene's measure)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&cells, "cells", 0, "marching cubes cells per box (default: from settings)")
	return cmd
}
