package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"odyssey_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocalStorageRoundTrip verifies upload, URL shape, and delete against the
// local provider.
func TestLocalStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: dir},
	})

	content := "blueprint bytes"
	url, err := svc.Upload(context.Background(), "blueprints/b1.png", strings.NewReader(content), int64(len(content)), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/artifacts/blueprints/b1.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "blueprints", "b1.png"))
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	require.NoError(t, svc.Delete(context.Background(), "blueprints/b1.png"))
	_, err = os.ReadFile(filepath.Join(dir, "blueprints", "b1.png"))
	assert.True(t, os.IsNotExist(err))
}

// TestStorageFallsBackToLocal verifies an unknown storage type resolves to the
// local provider rather than failing startup.
func TestStorageFallsBackToLocal(t *testing.T) {
	svc := NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: "tape-drive", LocalPath: t.TempDir()},
	})

	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}
