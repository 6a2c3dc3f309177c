package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grindlemire/go-spatial/internal/debug"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func (a *app) watchCmd() *cobra.Command {
	var (
		size        string
		debounce    time.Duration
		metricsAddr string
	)
	cmd := &cobra.Command{
		Use:   "watch <scene>",
		Short: "Print the layout again every time the scene file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vp, err := parseVec3(size)
			if err != nil {
				return fmt.Errorf("--size: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			path := args[0]
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			render := func() {
				s, _, err := a.loadScene(ctx, path, vp)
				if err != nil {
					fmt.Fprintln(errOut, err)
					return
				}
				printReports(out, report(s))
				fmt.Fprintln(out, "---")
			}

			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				srv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
				go func() {
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						fmt.Fprintf(errOut, "metrics server: %v\n", err)
					}
				}()
				defer srv.Shutdown(context.Background())
			}

			render()
			return watchFile(ctx, path, debounce, render)
		},
	}
	cmd.Flags().StringVar(&size, "size", "", "viewport size as x,y,z (default: the scene's measure)")
	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "wait this long after the last change before reloading")
	cmd.Flags().StringVar(&metricsAddr, "metrics", "", "serve Prometheus metrics on this address, for example :9090")
	return cmd
}

// watchFile calls onChange once writes to path have been quiet for
// debounce. The parent directory is watched so editors that replace the
// file by renaming are followed. Returns nil when ctx is done.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			debug.Log("watch: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case <-timerC:
			timer, timerC = nil, nil
			onChange()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			debug.Log("watch: %v", err)
		}
	}
}
