package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/textable"
)

func TestConfigInit(t *testing.T) {
	t.Parallel()
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	res := runWithConfig(t, cfgPath, "", "config", "init")
	require.NoError(t, res.err)
	assert.Equal(t, cfgPath+"\n", res.stdout)
	assert.FileExists(t, cfgPath)

	res = runWithConfig(t, cfgPath, "", "config", "init")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "already exists")

	res = runWithConfig(t, cfgPath, "", "config", "init", "--force")
	require.NoError(t, res.err)
}

func TestConfigInitRepairsBrokenFile(t *testing.T) {
	t.Parallel()
	cfgPath := writeFile(t, "config.yaml", "table: [")

	res := runWithConfig(t, cfgPath, "A\n1\n", "build")
	require.ErrorIs(t, res.err, textable.ErrConfig)

	res = runWithConfig(t, cfgPath, "", "config", "init", "--force")
	require.NoError(t, res.err)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "precision: 3")
}

func TestConfigShow(t *testing.T) {
	t.Parallel()
	cfgPath := writeFile(t, "config.yaml", "table:\n  caption: Scores\n  alignments: [left]\n")

	res := runWithConfig(t, cfgPath, "", "config", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "caption: Scores")
	assert.Contains(t, res.stdout, "- l")
	assert.Contains(t, res.stdout, "index: true")
}

func TestConfigPath(t *testing.T) {
	t.Parallel()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	res := runWithConfig(t, cfgPath, "", "config", "path")
	require.NoError(t, res.err)
	assert.Equal(t, cfgPath, strings.TrimSpace(res.stdout))
}

func TestConfigPathFromEnvironment(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "env.yaml")
	stubEnv(t, map[string]string{"TEXTABLE_CONFIG": cfgPath})

	root := NewRootCmd()
	var out strings.Builder
	root.SetOut(&out)
	root.SetArgs([]string{"config", "path"})
	require.NoError(t, root.Execute())
	assert.Equal(t, cfgPath, strings.TrimSpace(out.String()))
}
