package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_ScaffoldsProject(t *testing.T) {
	tmpDir := t.TempDir()

	out, err := run(t, "init", tmpDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created")

	data, err := os.ReadFile(filepath.Join(tmpDir, ".cargo-configure.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "output_dir: config")

	assert.FileExists(t, filepath.Join(tmpDir, "zuu.toml"))
	assert.DirExists(t, filepath.Join(tmpDir, ".git"))
	assert.FileExists(t, filepath.Join(tmpDir, "config", "master.toml"))
}

func TestInitCmd_NoVCSAndProfile(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := run(t, "init", tmpDir, "--vcs", "none", "--profile", "novice")
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(tmpDir, ".git"))
	assert.FileExists(t, filepath.Join(tmpDir, "config", "novice.toml"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "config", "expert.toml"))

	data, err := os.ReadFile(filepath.Join(tmpDir, ".cargo-configure.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "vcs: none")
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".cargo-configure.yaml"), []byte("vcs: none\n"), 0644))

	_, err := run(t, "init", tmpDir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".cargo-configure.yaml"), []byte("output_dir: old\n"), 0644))

	_, err := run(t, "init", tmpDir, "--force", "--vcs", "none")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(tmpDir, "old", "novice.toml"), "existing settings are kept")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cargo-configure dev")
}

func TestInitCmd_EmptyWarnSurvivesPolicyRecreate(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := run(t, "init", tmpDir, "--vcs", "none", "--warn", "")
	require.NoError(t, err)

	first := readPolicy(t, tmpDir)
	assert.Empty(t, first.Warn)
	assert.Equal(t, []string{"complexity", "style", "suspicious", "correctness", "perf"}, first.Deny)

	_, err = run(t, "policy", "create", tmpDir, "--force")
	require.NoError(t, err)
	assert.Equal(t, first, readPolicy(t, tmpDir))
}
