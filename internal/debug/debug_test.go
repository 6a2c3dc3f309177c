package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_DisabledIsNoop(t *testing.T) {
	SetOutput(nil)
	assert.False(t, Enabled())
	Log("nothing %d", 1)
}

func TestLog_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Log("measured node %d", 7)
	Logf("laid out %s", "top")

	out := buf.String()
	assert.Contains(t, out, "measured node 7")
	assert.Contains(t, out, "laid out top")
	assert.Contains(t, out, "level=DEBUG")
}

func TestInit_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "spatial.log")
	require.NoError(t, Init(path))
	t.Cleanup(func() { Close() })

	Log("hello")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.False(t, Enabled())
}
