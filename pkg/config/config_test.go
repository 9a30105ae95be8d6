package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.Extractor.MinEojeolCount)
	assert.Equal(t, 100000, cfg.Extractor.PruneEvery)
	assert.Equal(t, 10, cfg.Extractor.MaxLeftLength)
	assert.Equal(t, 9, cfg.Extractor.MaxRightLength)
	assert.InDelta(t, 0.3, cfg.Extractor.MinRScore, 1e-9)
	assert.Equal(t, "", cfg.Extractor.Scorer)
	assert.False(t, cfg.Server.EnableFilter)
	assert.Equal(t, "data/", cfg.Dict.Dir)
	assert.Equal(t, []string{"noun_pos_features.txt"}, cfg.Dict.NounFiles)
	assert.Equal(t, 100, cfg.Server.MaxLimit)
	assert.Equal(t, 20, cfg.CLI.DefaultLimit)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
[extractor]
min_eojeol_count = 5
scorer = "support_ratio"

[server]
cache_size = 16
enable_filter = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Extractor.MinEojeolCount)
	assert.Equal(t, "support_ratio", cfg.Extractor.Scorer)
	assert.Equal(t, 16, cfg.Server.CacheSize)
	assert.True(t, cfg.Server.EnableFilter)
	assert.Equal(t, 100, cfg.Server.MaxLimit)
	assert.Equal(t, 9, cfg.Extractor.MaxRightLength)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	// max_limit has the wrong type, so strict decoding fails
	content := `
[extractor]
prune_every = 50
min_r_score = "high"

[server]
max_limit = "many"
enable_filter = true

[cli]
default_limit = 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Extractor.PruneEvery)
	assert.InDelta(t, 0.3, cfg.Extractor.MinRScore, 1e-9)
	assert.Equal(t, 100, cfg.Server.MaxLimit)
	assert.True(t, cfg.Server.EnableFilter)
	assert.Equal(t, 7, cfg.CLI.DefaultLimit)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[cli]\ndefault_limit = 3\n"), 0644))

	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 3, cfg.CLI.DefaultLimit)
}

func TestConversions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.Extractor.Options()
	assert.Equal(t, cfg.Extractor.MinEojeolCount, opts.MinEojeolCount)
	assert.Equal(t, cfg.Extractor.MaxRightLength, opts.MaxRightLength)

	paths := cfg.Dict.Paths()
	assert.Equal(t, cfg.Dict.RootFiles, paths.Roots)
	assert.Equal(t, cfg.Dict.ComposableFiles, paths.Composable)
}

func TestRebuildConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("[cli]\ndefault_limit = 3\n"), 0644))

	used, err := RebuildConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestGetConfigDirFollowsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only read on linux")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "eomi"), dir)

	path, err := GetDefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "eomi", FileName), path)
}
