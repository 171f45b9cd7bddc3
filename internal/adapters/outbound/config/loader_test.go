package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appconfig "github.com/zuucrates/cargo-configure/internal/adapters/outbound/config"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, appconfig.FileName), []byte(content), 0644))
}

func isolated() *appconfig.Loader {
	return &appconfig.Loader{}
}

func TestLoader_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := isolated().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_ProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
output_dir: lints
profiles: [master]
wrap_width: 80
policy:
  allow: [cargo]
  warn: [style]
`)
	cfg, err := isolated().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "lints", cfg.OutputDir)
	assert.Equal(t, []string{"master"}, cfg.Profiles)
	assert.Equal(t, 80, cfg.WrapWidth)
	assert.Equal(t, []string{"cargo"}, cfg.Policy.Allow)
	assert.Equal(t, []string{"style"}, cfg.Policy.Warn)
	assert.Equal(t, domain.DefaultToolPrefix, cfg.ToolPrefix, "unset keys keep defaults")
}

func TestLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)

	_, err := isolated().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing "+appconfig.FileName)
}

func TestLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `profiles: [legendary]`)

	_, err := isolated().Load(dir)
	assert.ErrorIs(t, err, domain.ErrUnknownProfile)
}

func TestLoader_UserFileBelowProjectFile(t *testing.T) {
	dir := t.TempDir()
	user := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(user, []byte("output_dir: from-user\ntool_prefix: \"lint::\"\n"), 0644))
	writeConfig(t, dir, `output_dir: from-project`)

	cfg, err := (&appconfig.Loader{UserFile: user}).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-project", cfg.OutputDir)
	assert.Equal(t, "lint::", cfg.ToolPrefix)
}

func TestLoader_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `output_dir: ignored`)
	explicit := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(explicit, []byte("output_dir: explicit\n"), 0644))

	cfg, err := (&appconfig.Loader{ConfigFile: explicit}).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.OutputDir)

	_, err = (&appconfig.Loader{ConfigFile: filepath.Join(dir, "missing.yaml")}).Load(dir)
	assert.Error(t, err)
}

func TestLoader_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "output_dir: from-file\nvcs: none\nlog:\n  level: warn\n")
	t.Setenv("CARGO_CONFIGURE_OUTPUT_DIR", "from-env")
	t.Setenv("CARGO_CONFIGURE_LOG_LEVEL", "debug")

	cfg, err := isolated().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OutputDir, "env beats file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, domain.VCSNone, cfg.VCS, "file beats defaults")

	t.Setenv("CARGO_CONFIGURE_PROFILES", "novice,master")
	t.Setenv("CARGO_CONFIGURE_POLICY_ALLOW", "cargo, style")
	cfg, err = isolated().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"novice", "master"}, cfg.Profiles)
	assert.Equal(t, []string{"cargo", "style"}, cfg.Policy.Allow)
	assert.Nil(t, cfg.Policy.Warn, "unset list keys stay unset")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out", "", "")
	flags.String("log-level", "", "")
	flags.Bool("json", false, "")
	require.NoError(t, flags.Parse([]string{"--out", "from-flag"}))

	cfg, err = (&appconfig.Loader{Flags: flags}).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.OutputDir, "flag beats env")
	assert.Equal(t, "debug", cfg.Log.Level, "unchanged flags are ignored")
}

func TestLoader_EmptyEnvList(t *testing.T) {
	t.Setenv("CARGO_CONFIGURE_POLICY_WARN", "")

	cfg, err := isolated().Load(t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, cfg.Policy.Warn)
	assert.Empty(t, cfg.Policy.Warn)
}

func TestLoader_FlagSlices(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringSlice("profile", nil, "")
	require.NoError(t, flags.Parse([]string{"--profile", "novice,master"}))

	cfg, err := (&appconfig.Loader{Flags: flags}).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"novice", "master"}, cfg.Profiles)
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := domain.DefaultConfig()
	want.Profiles = []string{"expert"}
	want.VCS = domain.VCSNone
	want.Policy.Warn = []string{}

	path, err := appconfig.NewWriter().Write(dir, want, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, appconfig.FileName), path)

	got, err := isolated().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = appconfig.NewWriter().Write(dir, want, false)
	assert.ErrorContains(t, err, "already exists")
	_, err = appconfig.NewWriter().Write(dir, want, true)
	assert.NoError(t, err)
}

func TestWrite_ResolvesNilWarn(t *testing.T) {
	dir := t.TempDir()
	_, err := appconfig.NewWriter().Write(dir, domain.DefaultConfig(), false)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, appconfig.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "warn:")

	got, err := isolated().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"complexity", "style", "suspicious", "correctness", "perf"}, got.Policy.Warn)

	want, err := domain.DefaultConfig().Policy.Split()
	require.NoError(t, err)
	split, err := got.Policy.Split()
	require.NoError(t, err)
	assert.Equal(t, want, split, "reloaded config yields the same policy")
}
