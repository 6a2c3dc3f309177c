package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/grindlemire/go-spatial/internal/config"
	"github.com/grindlemire/go-spatial/internal/debug"
	"github.com/grindlemire/go-spatial/internal/layout"
	"github.com/grindlemire/go-spatial/internal/scene"
	"github.com/spf13/cobra"
)

// app carries the settings shared by every subcommand.
type app struct {
	configPath string
	debugLog   string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "spatial",
		Short:         "Evaluate and inspect 3D layout scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logPath := a.debugLog
			if logPath == "" {
				logPath = cfg.Debug.LogFile
			}
			if logPath != "" {
				return debug.Init(logPath)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "settings file (YAML)")
	root.PersistentFlags().StringVar(&a.debugLog, "debug-log", "", "write debug logging to this file")

	root.AddCommand(
		a.layoutCmd(),
		a.pickCmd(),
		a.exportCmd(),
		a.watchCmd(),
		a.configCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "spatial version %s\n", version)
			},
		},
	)
	return root
}

// loadScene evaluates the script at path and lays it out. With a zero size
// the viewport takes the scene's own measure.
func (a *app) loadScene(ctx context.Context, path string, size mgl32.Vec3) (*scene.Scene, *layout.Root, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading scene: %w", err)
	}

	eng := scene.NewEngine(a.cfg.Scene.Timeout, a.cfg.TreeOptions()...)
	s, evalErrs, err := eng.Evaluate(ctx, string(src))
	if err != nil {
		return nil, nil, err
	}
	if len(evalErrs) > 0 {
		errs := make([]error, len(evalErrs))
		for i, e := range evalErrs {
			errs[i] = fmt.Errorf("%s: %w", path, e)
		}
		return nil, nil, errors.Join(errs...)
	}

	r := s.Attach()
	if size == (mgl32.Vec3{}) {
		r.Update()
		size = s.Tree.Measure(s.Top)
	}
	r.SetViewport(layout.Frame{Rotation: mgl32.QuatIdent(), Size: size})
	r.Update()
	return s, r, nil
}

// parseVec3 reads "x,y,z". An empty string is the zero vector.
func parseVec3(s string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if strings.TrimSpace(s) == "" {
		return v, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("expected x,y,z, got %q", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return v, fmt.Errorf("component %d of %q: %w", i, s, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func formatVec3(v mgl32.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
