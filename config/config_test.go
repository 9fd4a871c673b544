package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "volc_config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTypedValues(t *testing.T) {
	path := writeConfigFile(t, `ARK_API_KEY=test-key
ARK_MODEL=my-model
ARK_SIZE=1K
ARK_GUIDANCE=7.5
ARK_SEED=42
ARK_WATERMARK=False
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GetString("ARK_API_KEY", ""))
	assert.Equal(t, "my-model", cfg.GetString("ARK_MODEL", "default-model"))
	assert.Equal(t, 7.5, cfg.GetFloat64("ARK_GUIDANCE", 2.5))
	assert.Equal(t, int64(42), cfg.GetInt64("ARK_SEED", -1))
	// true/false 不区分大小写
	assert.False(t, cfg.GetBool("ARK_WATERMARK", true))
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfigFile(t, "ARK_API_KEY=test-key\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "default-model", cfg.GetString("ARK_MODEL", "default-model"))
	assert.Equal(t, 2.5, cfg.GetFloat64("ARK_GUIDANCE", 2.5))
	assert.Equal(t, int64(-1), cfg.GetInt64("ARK_SEED", -1))
	assert.True(t, cfg.GetBool("ARK_WATERMARK", true))
}

func TestLoadBadValuesFallBack(t *testing.T) {
	path := writeConfigFile(t, `ARK_GUIDANCE=abc
ARK_SEED=xyz
ARK_WATERMARK=maybe
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.GetFloat64("ARK_GUIDANCE", 2.5))
	assert.Equal(t, int64(-1), cfg.GetInt64("ARK_SEED", -1))
	assert.True(t, cfg.GetBool("ARK_WATERMARK", true))
}

func TestLoadLegacyKeys(t *testing.T) {
	path := writeConfigFile(t, "AK=legacy-ak\nSK=legacy-sk\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "legacy-ak", cfg.GetString("AK", ""))
	assert.Equal(t, "legacy-sk", cfg.GetString("SK", ""))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no_such_file.txt"))
	assert.Error(t, err)
}

func TestLoadMissingSeparator(t *testing.T) {
	path := writeConfigFile(t, "NOSEPARATOR\n")
	_, err := Load(path)
	assert.Error(t, err)
}
