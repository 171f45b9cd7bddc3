package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zuucrates/cargo-configure/internal/domain"
)

func TestSplitGroups_DefaultsWarnEverythingElse(t *testing.T) {
	p, err := domain.SplitGroups(domain.DefaultAllowedGroups, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"cargo", "restriction", "nursery", "pedantic"}, p.Allow)
	assert.Equal(t, []string{"complexity", "style", "suspicious", "correctness", "perf"}, p.Warn)
	assert.Empty(t, p.Deny)
}

func TestSplitGroups_PartitionsAllGroups(t *testing.T) {
	p, err := domain.SplitGroups([]string{"pedantic", "cargo"}, []string{"style"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cargo", "pedantic"}, p.Allow)
	assert.Equal(t, []string{"style"}, p.Warn)

	union := append(append(append([]string{}, p.Allow...), p.Warn...), p.Deny...)
	assert.ElementsMatch(t, domain.ClippyGroups, union)
}

func TestSplitGroups_EmptyWarnDeniesRest(t *testing.T) {
	p, err := domain.SplitGroups(nil, []string{})
	require.NoError(t, err)
	assert.Empty(t, p.Allow)
	assert.Empty(t, p.Warn)
	assert.Equal(t, domain.ClippyGroups, p.Deny)
}

func TestSplitGroups_Errors(t *testing.T) {
	_, err := domain.SplitGroups([]string{"bogus"}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownGroup)

	_, err = domain.SplitGroups([]string{"style"}, []string{"style"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both allowed and warned")
}
