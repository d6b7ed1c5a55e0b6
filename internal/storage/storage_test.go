package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	data := []byte("fake png bytes")
	ref, err := store.Save(context.Background(), "movies", "poster.png", data)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "movies"+string(filepath.Separator)))
	assert.True(t, strings.HasSuffix(ref, "_poster.png"))

	stored, err := os.ReadFile(filepath.Join(root, ref))
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestDiskStore_SaveUniqueReferences(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ref1, err := store.Save(context.Background(), "characters", "face.jpg", []byte("a"))
	require.NoError(t, err)
	ref2, err := store.Save(context.Background(), "characters", "face.jpg", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}

func TestDiskStore_SaveCancelledContext(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, "movies", "poster.png", []byte("x"))
	assert.Error(t, err)
}
