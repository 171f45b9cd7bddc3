package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

func readPolicy(t *testing.T, dir string) domain.Policy {
	t.Helper()
	var p domain.Policy
	_, err := toml.DecodeFile(filepath.Join(dir, "zuu.toml"), &p)
	require.NoError(t, err)
	return p
}

func TestPolicyCreate_Defaults(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := run(t, "policy", "create", tmpDir)
	require.NoError(t, err)

	p := readPolicy(t, tmpDir)
	assert.Equal(t, []string{"cargo", "restriction", "nursery", "pedantic"}, p.Allow)
	assert.Len(t, p.Warn, 5)
	assert.Empty(t, p.Deny)
}

func TestPolicyCreate_Flags(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := run(t, "policy", "create", tmpDir, "--allow", "cargo,nursery", "--warn", "style")
	require.NoError(t, err)

	p := readPolicy(t, tmpDir)
	assert.Equal(t, []string{"cargo", "nursery"}, p.Allow)
	assert.Equal(t, []string{"style"}, p.Warn)
	assert.ElementsMatch(t, []string{"complexity", "restriction", "pedantic", "suspicious", "correctness", "perf"}, p.Deny)
}

func TestPolicyCreate_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "zuu.toml"), []byte("existing"), 0644))

	_, err := run(t, "policy", "create", tmpDir)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "policy", "create", tmpDir, "--force")
	require.NoError(t, err)
	assert.NotEmpty(t, readPolicy(t, tmpDir).Warn)
}

func TestPolicyCreate_UnknownGroup(t *testing.T) {
	_, err := run(t, "policy", "create", t.TempDir(), "--allow", "performance")
	assert.ErrorIs(t, err, domain.ErrUnknownGroup)
}

func TestPolicyShow(t *testing.T) {
	tmpDir := t.TempDir()
	_, err := run(t, "policy", "create", tmpDir)
	require.NoError(t, err)

	out, err := run(t, "policy", "show", tmpDir)
	require.NoError(t, err)
	assert.Contains(t, out, "pedantic")
}
