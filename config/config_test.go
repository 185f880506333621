package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "posts", cfg.PostsDir)
	assert.Equal(t, "rss.xml", cfg.Output)
	assert.Equal(t, "en-US", cfg.Feed.Language)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feed:\n  title: My Feed\n  link: https://example.com\nkey_name: main\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "My Feed", cfg.Feed.Title)
	assert.Equal(t, "https://example.com", cfg.Feed.Link)
	assert.Equal(t, "main", cfg.KeyName)
	assert.Equal(t, "posts", cfg.PostsDir, "unset fields keep defaults")
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestMerge_FlagValuesWin(t *testing.T) {
	cfg := Default().Merge(&Config{
		Feed:     Feed{Title: "File Title", Language: "de-DE"},
		PostsDir: "entries",
	})
	cfg.Merge(&Config{Feed: Feed{Title: "Flag Title"}})

	assert.Equal(t, "Flag Title", cfg.Feed.Title)
	assert.Equal(t, "de-DE", cfg.Feed.Language)
	assert.Equal(t, "entries", cfg.PostsDir)
	assert.Equal(t, "rss.xml", cfg.Output)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "config.yaml")
	cfg := Default()
	cfg.Feed.Title = "Saved"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Saved", loaded.Feed.Title)
}
