package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseMergesOverDefaults(t *testing.T) {
	c, err := Parse([]byte(`
window:
  title: patch bay
log_level: debug
plug_size: 12
forget_dragged_plug_on_release: true
ports:
  - {id: a, x: 10, y: 20}
  - {id: b, label: second, x: 30, y: 40}
cables:
  - {id: c1, in: a}
  - {x: 5, y: 6}
`))
	require.NoError(t, err)
	assert.Equal(t, "patch bay", c.Window.Title)
	assert.Equal(t, 960, c.Window.Width)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 20.0, c.PortSize)
	assert.Equal(t, 12.0, c.PlugSize)
	assert.True(t, c.ForgetDraggedPlug)
	assert.Len(t, c.Ports, 2)
	assert.Equal(t, Cable{ID: "c1", In: "a"}, c.Cables[0])
	assert.Equal(t, Cable{X: 5, Y: 6}, c.Cables[1])
}

func TestPortsWithoutCablesDropDefaultCables(t *testing.T) {
	c, err := Parse([]byte("ports:\n  - {id: only}\n"))
	require.NoError(t, err)
	assert.Empty(t, c.Cables)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	_, err := Parse([]byte(`
ports:
  - {id: a}
  - {id: a}
  - {id: ""}
cables:
  - {id: c, in: nowhere}
  - {id: c}
`))
	require.Error(t, err)
	for _, want := range []string{`duplicate id "a"`, "empty id", `unknown port "nowhere"`, `duplicate id "c"`} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoad(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {width: 320, height: 240}\n"), 0o600))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 320, c.Window.Width)
	assert.Equal(t, 240, c.Window.Height)

	require.NoError(t, os.WriteFile(path, []byte("window: [\n"), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parse config")
}
