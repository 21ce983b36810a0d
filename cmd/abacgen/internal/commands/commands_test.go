package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wolfeidau/abacgen/internal/population"
)

func TestApplyConfigFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	err := os.WriteFile(path, []byte(`
seed: 1234
users: 50
documents: 25
confidentialProb: 0.9
`), 0o600)
	require.NoError(t, err)

	cfg := population.BasicConfig()
	require.NoError(t, applyConfigFile(path, cfg))

	require.Equal(t, int64(1234), cfg.Seed)
	require.Equal(t, 50, cfg.Users)
	require.Equal(t, 25, cfg.Documents)
	require.Equal(t, 0.9, cfg.ConfidentialProb)

	// Unset fields keep preset defaults.
	require.Equal(t, 30, cfg.HelpdeskOperators)
	require.Equal(t, 0.2, cfg.PersonalInfoProb)
}

func TestApplyConfigFileMissing(t *testing.T) {
	cfg := population.BasicConfig()
	require.Error(t, applyConfigFile(filepath.Join(t.TempDir(), "absent.yaml"), cfg))
}

func TestApplyConfigFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users: [not a number"), 0o600))

	cfg := population.BasicConfig()
	require.Error(t, applyConfigFile(path, cfg))
}
