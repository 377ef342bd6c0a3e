package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiresFromAndTo(t *testing.T) {
	require.Error(t, Config{}.Validate())
	require.Error(t, Config{SourceDir: "/in"}.Validate())
	require.Error(t, Config{TargetDir: "/out"}.Validate())
	require.NoError(t, Config{SourceDir: "/in", TargetDir: "/out"}.Validate())
}

func TestApplyEnvFillsMissingFields(t *testing.T) {
	t.Setenv("PHOTRIAGE_FROM", "/env/in")
	t.Setenv("PHOTRIAGE_TO", "/env/out")
	t.Setenv("PHOTRIAGE_SUBDIR", "%Y")
	t.Setenv("PHOTRIAGE_VERBOSE", "yes")

	cfg := Config{}
	cfg.ApplyEnv()

	assert.Equal(t, "/env/in", cfg.SourceDir)
	assert.Equal(t, "/env/out", cfg.TargetDir)
	assert.Equal(t, "%Y", cfg.Subdir)
	assert.True(t, cfg.Verbose)
}

func TestApplyEnvNeverOverridesFlags(t *testing.T) {
	t.Setenv("PHOTRIAGE_FROM", "/env/in")
	t.Setenv("PHOTRIAGE_TO", "/env/out")

	cfg := Config{SourceDir: "/flag/in", TargetDir: "/flag/out"}
	cfg.ApplyEnv()

	assert.Equal(t, "/flag/in", cfg.SourceDir)
	assert.Equal(t, "/flag/out", cfg.TargetDir)
}
