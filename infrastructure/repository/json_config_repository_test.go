package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farkasdvd/indicator-datetime/infrastructure/config"
)

func newTempConfigRepo(t *testing.T) *JSONConfigRepository {
	t.Helper()
	repo := &JSONConfigRepository{}
	repo.SetConfigDir(t.TempDir())
	return repo
}

func TestJSONConfigRepositoryMissingFile(t *testing.T) {
	repo := newTempConfigRepo(t)

	exists, err := repo.Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	cfg, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestJSONConfigRepositorySaveAndLoad(t *testing.T) {
	repo := newTempConfigRepo(t)

	cfg := config.DefaultConfig()
	cfg.Clock.TimeFormat = "12h"
	cfg.Clock.ShowSeconds = true
	cfg.Timezone.Name = "Europe/Budapest"
	cfg.Planner.LookaheadDays = 3

	require.NoError(t, repo.Save(cfg))

	exists, err := repo.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "12h", loaded.Clock.TimeFormat)
	assert.True(t, loaded.Clock.ShowSeconds)
	assert.Equal(t, "Europe/Budapest", loaded.Timezone.Name)
	assert.Equal(t, 3, loaded.Planner.LookaheadDays)
}

func TestJSONConfigRepositorySaveRejectsInvalidConfig(t *testing.T) {
	repo := newTempConfigRepo(t)

	cfg := config.DefaultConfig()
	cfg.Clock.TimeFormat = "metric"

	assert.Error(t, repo.Save(cfg))
	assert.Error(t, repo.Save(nil))
}

func TestJSONConfigRepositoryGetConfigPath(t *testing.T) {
	repo := newTempConfigRepo(t)
	assert.Equal(t, "config.json", filepath.Base(repo.GetConfigPath()))
}
