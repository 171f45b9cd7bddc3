package emitter_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zuucrates/cargo-configure/internal/adapters/outbound/emitter"
	"github.com/zuucrates/cargo-configure/internal/domain"
	"github.com/zuucrates/cargo-configure/internal/domain/catalog"
)

func sampleLint() domain.Lint {
	return domain.Lint{
		ID:               "sample_lint",
		Description:      "Checks for samples.",
		WhatsBad:         "Samples are bad.\n\nReally.",
		EnabledByDefault: true,
		ClippySeverity:   domain.SeverityWarn,
		Severity:         domain.SeverityDeny,
		Group:            domain.GroupStyle,
		Applicability:    domain.ApplicabilityMachineApplicable,
		Issue:            "https://example.com/issues/1",
	}
}

func TestRender_Stanza(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, emitter.New("", 100).Render(&buf, []domain.Lint{sampleLint()}))

	want := `#
# Lint clippy::sample_lint
#
# Checks for samples.
#
# Samples are bad.
#
# Really.
#
# Issue : https://example.com/issues/1
#
# Clippy decrease possible allow
#
# Clippy increase possible deny
#
# Default configuration decrease possible allow, warn
#
# Default configuration increase possible none
#
[sample_lint]
group = "style"
applicability = "machine-applicable"
enabled = true
config-severity = "deny"
clippy-severity = "warn"
use-clippy-severity = false

`
	assert.Equal(t, want, buf.String())
}

func TestRender_AbsolutePathsNovice(t *testing.T) {
	lints := catalog.For(domain.ProfileNovice)
	var buf bytes.Buffer
	require.NoError(t, emitter.New(domain.DefaultToolPrefix, 100).Render(&buf, lints[:1]))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "#\n# Lint clippy::absolute_paths\n#\n"))
	assert.Contains(t, out, "[absolute_paths]\n")
	assert.Contains(t, out, `group = "restriction"`)
	assert.Contains(t, out, `applicability = "unspecified"`)
	assert.Contains(t, out, `config-severity = "allow"`)
	assert.Contains(t, out, `clippy-severity = "allow"`)
	assert.Contains(t, out, "use-clippy-severity = false")
	assert.Contains(t, out, "# Default configuration increase possible warn, deny\n")
	assert.Contains(t, out, "# Default configuration decrease possible none\n")
	assert.Contains(t, out, "# Known problems : ")
}

func TestRender_OmitsAbsentOptionalLines(t *testing.T) {
	l := sampleLint()
	l.Issue = ""
	var buf bytes.Buffer
	require.NoError(t, emitter.New("", 0).Render(&buf, []domain.Lint{l}))
	assert.NotContains(t, buf.String(), "Issue :")
	assert.NotContains(t, buf.String(), "Known problems")
}

func TestRender_CustomPrefix(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, emitter.New("lint::", 100).Render(&buf, []domain.Lint{sampleLint()}))
	assert.Contains(t, buf.String(), "# Lint lint::sample_lint\n")
}

func TestRender_WrapsLongText(t *testing.T) {
	l := sampleLint()
	l.WhatsBad = strings.Repeat("word ", 60)
	var buf bytes.Buffer
	require.NoError(t, emitter.New("", 40).Render(&buf, []domain.Lint{l}))

	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "# word") {
			assert.LessOrEqual(t, len(line), 40, line)
		}
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"a b", "c d"}, emitter.Wrap("a b c d", 3))
	assert.Equal(t, []string{"unbreakable", "x"}, emitter.Wrap("unbreakable x", 4))
	assert.Equal(t, []string{"no wrap"}, emitter.Wrap("no wrap", 0))
}

func TestRender_OutputParsesAsTOML(t *testing.T) {
	w := emitter.New(domain.DefaultToolPrefix, 100)
	for _, p := range domain.AllProfiles() {
		lints := catalog.For(p)
		var buf bytes.Buffer
		require.NoError(t, w.Render(&buf, lints))

		var doc map[string]map[string]any
		_, err := toml.Decode(buf.String(), &doc)
		require.NoError(t, err, "profile %s", p)
		assert.Len(t, doc, len(lints))

		for _, l := range lints {
			table, ok := doc[l.ID]
			require.True(t, ok, l.ID)
			_, err := domain.ParseLintGroup(table["group"].(string))
			assert.NoError(t, err, l.ID)
			_, err = domain.ParseApplicability(table["applicability"].(string))
			assert.NoError(t, err, l.ID)
			assert.Equal(t, l.Severity.String(), table["config-severity"])
		}
	}
}

func TestEmit_CreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	path, err := emitter.New("", 100).Emit(dir, "novice.toml", catalog.For(domain.ProfileNovice))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "novice.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestEmit_EmptyListWritesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path, err := emitter.New("", 100).Emit(dir, "empty.toml", nil)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestEmit_Idempotent(t *testing.T) {
	dir := t.TempDir()
	w := emitter.New("", 100)
	lints := catalog.For(domain.ProfileMaster)

	path, err := w.Emit(dir, "master.toml", lints)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = w.Emit(dir, "master.toml", lints)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEmit_UnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := emitter.New("", 100).Emit(filepath.Join(blocker, "config"), "novice.toml", nil)
	require.Error(t, err)
	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr))
}

func TestEmitAll_WritesThreeProfiles(t *testing.T) {
	dir := t.TempDir()
	paths, err := emitter.New("", 100).EmitAll(dir, catalog.Source(), nil)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for _, name := range []string{"novice.toml", "expert.toml", "master.toml"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestEmitAll_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory squatting on expert.toml makes the rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "expert.toml", "x"), 0755))

	paths, err := emitter.New("", 100).EmitAll(dir, catalog.Source(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expert")
	assert.Equal(t, []string{filepath.Join(dir, "novice.toml")}, paths)
	assert.NoFileExists(t, filepath.Join(dir, "master.toml"))
}
