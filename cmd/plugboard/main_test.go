package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithoutPath(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Ports)
}

func TestRootCmdFailsOnBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cables:\n  - {in: nowhere}\n"), 0o600))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", path})
	cmd.SetOut(os.Stderr)
	err := cmd.Execute()
	assert.ErrorContains(t, err, `unknown port "nowhere"`)
}
