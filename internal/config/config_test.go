package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/VolumeFi/gpu-dao-cw/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "gpudao1contract", cfg.ContractAddress)
	assert.Equal(t, "paloma", cfg.ChainID)
	assert.Equal(t, filepath.Join(dir, "state.db"), cfg.StorePath)
	assert.Empty(t, cfg.DefaultSender)
	assert.Empty(t, cfg.DefaultChain)
}

func TestSaveAndReloadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	cfg.ContractAddress = "paloma1dao"
	cfg.DefaultSender = "owner1"
	cfg.DefaultChain = "arbitrum-main"

	require.NoError(t, cfg.Save())

	reloaded, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "paloma1dao", reloaded.ContractAddress)
	assert.Equal(t, "owner1", reloaded.DefaultSender)
	assert.Equal(t, "arbitrum-main", reloaded.DefaultChain)
}

func TestConfigFileCreatedOnSave(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := config.Load(dir)
	require.NoError(t, cfg.Save())

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err, "config.json should be created on save")
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEmptyStorePathFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"contract_address":"c1"}`), 0o600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "c1", cfg.ContractAddress)
	assert.Equal(t, filepath.Join(dir, "state.db"), cfg.StorePath)
}

func TestLoadBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{`), 0o600))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "env")
	t.Setenv(config.EnvDir, dir)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir())
}

func TestConfigDir(t *testing.T) {
	dir := t.TempDir()
	cfg, _ := config.Load(dir)
	assert.Equal(t, dir, cfg.Dir())
}

func TestLoadFromNonExistentDir(t *testing.T) {
	dir := t.TempDir() + "/subdir"
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	// Should create dir and return defaults.
	assert.Equal(t, "paloma", cfg.ChainID)
}

func TestGetSet(t *testing.T) {
	cfg, _ := config.Load(t.TempDir())

	require.NoError(t, cfg.Set("default_sender", "  owner1 "))
	v, err := cfg.Get("default_sender")
	require.NoError(t, err)
	assert.Equal(t, "owner1", v)
	assert.Equal(t, "owner1", cfg.DefaultSender)

	require.NoError(t, cfg.Set("default_chain", ""))
	assert.Empty(t, cfg.DefaultChain)

	assert.Error(t, cfg.Set("contract_address", " "))
	assert.Error(t, cfg.Set("store_path", ""))

	assert.ErrorIs(t, cfg.Set("rpc", "x"), config.ErrUnknownKey)
	_, err = cfg.Get("rpc")
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestKeysSorted(t *testing.T) {
	assert.Equal(t,
		[]string{"chain_id", "contract_address", "default_chain", "default_sender", "store_path"},
		config.Keys())
}
