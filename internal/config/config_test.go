package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "quizzes", cfg.QuizzesDir)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, 150*time.Millisecond, cfg.AutoplayDelay)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "env: production\nquizzes_dir: /srv/quizzes\nautoplay_delay: 2s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/srv/quizzes", cfg.QuizzesDir)
	assert.Equal(t, 2*time.Second, cfg.AutoplayDelay)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("KOTOBA_QUIZZES_DIR", "/tmp/decks")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/decks", cfg.QuizzesDir)
}

func TestLoad_RejectsNonPositiveDelay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("autoplay_delay: 0s\n"), 0o644))
	chdir(t, dir)

	_, err := Load()
	assert.Error(t, err)
}
