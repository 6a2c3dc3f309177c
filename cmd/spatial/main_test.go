package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/grindlemire/go-spatial/internal/layout"
	"github.com/grindlemire/go-spatial/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rowScene = `
; two boxes side by side
(flex :axis :x :name "row"
  (leaf 2 1 0 :name "a")
  (leaf 3 1 0 :name "b"))
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLayoutCmd(t *testing.T) {
	path := writeFile(t, t.TempDir(), "row.zy", rowScene)

	out, _, err := run(t, "layout", path)
	require.NoError(t, err)
	assert.Contains(t, out, `flex "row" pos=(0, 0, 0) size=(5, 1, 0)`)
	assert.Contains(t, out, `    #0 leaf "a" pos=(0, 0, 0) size=(2, 1, 0)`)
	assert.Contains(t, out, `leaf "b" pos=(2, 0, 0) size=(3, 1, 0)`)

	out, _, err = run(t, "layout", path, "--size", "9,2,0")
	require.NoError(t, err)
	assert.Contains(t, out, `flex "row" pos=(0, 0, 0) size=(9, 2, 0)`)
	assert.Contains(t, out, `leaf "b" pos=(2, 0, 0) size=(3, 2, 0)`)
}

func TestLayoutCmd_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "row.zy", rowScene)

	out, _, err := run(t, "layout", path, "--json", "--check")
	require.NoError(t, err)

	var reports []nodeReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 5)
	assert.Equal(t, "flex", reports[0].Kind)
	assert.Equal(t, "row", reports[0].Name)
	assert.Equal(t, 0, reports[0].Depth)
	assert.Equal(t, [4]jsonFloat{1, 0, 0, 0}, reports[0].Rotation)
	assert.Equal(t, [3]jsonFloat{5, 1, 0}, reports[0].Measure)
}

func TestReport_DegenerateJSON(t *testing.T) {
	tr, err := layout.NewTree()
	require.NoError(t, err)
	leaf := tr.New(layout.FixedLeaf(mgl32.Vec3{1, 1, 1}))
	top := tr.New(&layout.Measured{}, leaf)
	layout.NewRoot(tr, top).Update()

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	tr.SetSize(leaf, mgl32.Vec3{nan, inf, -inf})

	s := &scene.Scene{Tree: tr, Top: top, Names: map[string]layout.NodeID{"box": leaf}}
	data, err := json.Marshal(report(s))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"size":["NaN","+Inf","-Inf"]`)

	var back []nodeReport
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 2)
	assert.Equal(t, "box", back[1].Name)
	assert.True(t, math.IsNaN(float64(back[1].Size[0])))
	assert.True(t, math.IsInf(float64(back[1].Size[1]), 1))
	assert.True(t, math.IsInf(float64(back[1].Size[2]), -1))
	assert.Equal(t, [3]jsonFloat{0, 0, 0}, back[1].Position)

	var text bytes.Buffer
	printReports(&text, report(s))
	assert.Contains(t, text.String(), `leaf "box" pos=(0, 0, 0) size=(NaN, +Inf, -Inf)`)
}

func TestLayoutCmd_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "layout", filepath.Join(dir, "missing.zy"))
	assert.ErrorContains(t, err, "reading scene")

	bad := writeFile(t, dir, "bad.zy", `(leaf 1 1 1 :colour "red")`)
	_, _, err = run(t, "layout", bad)
	assert.ErrorContains(t, err, bad)
	assert.ErrorContains(t, err, "unknown keyword :colour")

	good := writeFile(t, dir, "row.zy", rowScene)
	_, _, err = run(t, "layout", good, "--size", "1,2")
	assert.ErrorContains(t, err, "--size")

	_, _, err = run(t, "layout")
	assert.Error(t, err)
}

func TestPickCmd(t *testing.T) {
	path := writeFile(t, t.TempDir(), "row.zy", rowScene)

	out, _, err := run(t, "pick", path, "--origin", "3,0.5,10")
	require.NoError(t, err)
	assert.Equal(t, "#1 \"b\" at (3, 0.5, 0) distance 10\n", out)

	out, _, err = run(t, "pick", path, "--origin", "30,0.5,10")
	require.NoError(t, err)
	assert.Equal(t, "no hit\n", out)

	_, _, err = run(t, "pick", path, "--dir", "0,0,0")
	assert.ErrorContains(t, err, "--dir must not be zero")
}

func TestExportCmd(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "row.zy", rowScene)
	outPath := filepath.Join(dir, "row.json")

	_, errOut, err := run(t, "export", path, "-o", outPath, "--cells", "8")
	require.NoError(t, err)
	assert.Contains(t, errOut, "exported 2 meshes")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var meshes []struct {
		Name    string   `json:"name"`
		Indices []uint32 `json:"indices"`
	}
	require.NoError(t, json.Unmarshal(data, &meshes))
	require.Len(t, meshes, 2)
	assert.Equal(t, "a", meshes[0].Name)
	assert.NotEmpty(t, meshes[1].Indices)
}

func TestConfigCmds(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "conf", "spatial.yaml")

	out, _, err := run(t, "config", "init", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	out, _, err = run(t, "--config", cfgPath, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "frame_rate: 60")

	bad := writeFile(t, dir, "bad.yaml", "loop:\n  frame_rate: 0\n")
	_, _, err = run(t, "--config", bad, "version")
	assert.ErrorContains(t, err, "loop.frame_rate")
}

func TestConfigAffectsLayout(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "spatial.yaml", "stack:\n  axis: x\n  delta: 0.5\n")
	path := writeFile(t, dir, "stack.zy", `(stack (leaf 1 1 1) (leaf 1 1 1 :name "top"))`)

	out, _, err := run(t, "--config", cfg, "layout", path)
	require.NoError(t, err)
	assert.Contains(t, out, `leaf "top" pos=(0.5, 0, 0) size=(1, 1, 1) layer=1`)
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "spatial version "+version+"\n", out)
}

func TestParseVec3(t *testing.T) {
	type tc struct {
		input   string
		want    mgl32.Vec3
		wantErr bool
	}

	tests := map[string]tc{
		"empty":      {input: "", want: mgl32.Vec3{}},
		"integers":   {input: "1,2,3", want: mgl32.Vec3{1, 2, 3}},
		"spaces":     {input: " 1.5, -2 ,0 ", want: mgl32.Vec3{1.5, -2, 0}},
		"too few":    {input: "1,2", wantErr: true},
		"not number": {input: "1,x,3", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseVec3(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatchFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scene.zy", rowScene)

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 10*time.Millisecond, func() { calls.Add(1) })
	}()

	// keep writing until the watcher, which starts asynchronously, notices
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(rowScene), 0644)
		return calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watchFile did not return after cancel")
	}
}

func TestExampleScenes(t *testing.T) {
	scenes, err := filepath.Glob("../../examples/scenes/*.zy")
	require.NoError(t, err)
	require.NotEmpty(t, scenes)

	for _, path := range scenes {
		t.Run(filepath.Base(path), func(t *testing.T) {
			out, _, err := run(t, "layout", path, "--check")
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}
