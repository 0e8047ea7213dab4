package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docpatch-cli/internal/core/domain"
)

func TestSource_ReadText(t *testing.T) {
	ctx := context.Background()

	t.Run("reads file content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "options.html")
		require.NoError(t, os.WriteFile(path, []byte("<head></head>"), 0644))

		text, err := New().ReadText(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, "<head></head>", text)
	})

	t.Run("missing file maps to domain.ErrNotFound", func(t *testing.T) {
		dir := t.TempDir()

		_, err := New().ReadText(ctx, filepath.Join(dir, "absent.html"))

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSource_WriteText(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites file content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "options.html")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		err := New().WriteText(ctx, path, "new")

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("creates the file when absent", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "fresh.html")

		err := New().WriteText(ctx, path, "content")

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("preserves existing permissions", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "options.html")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

		require.NoError(t, New().WriteText(ctx, path, "new"))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})
}

func TestSource_Backup(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots the previous content before writing", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "options.js")
		require.NoError(t, os.WriteFile(path, []byte("before"), 0644))

		err := NewWithBackup(".bak").WriteText(ctx, path, "after")

		require.NoError(t, err)
		backup, err := os.ReadFile(path + ".bak")
		require.NoError(t, err)
		assert.Equal(t, "before", string(backup))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "after", string(data))
	})

	t.Run("no backup for a freshly created file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "fresh.js")

		require.NoError(t, NewWithBackup(".bak").WriteText(ctx, path, "content"))

		_, err := os.Stat(path + ".bak")
		assert.True(t, os.IsNotExist(err))
	})
}
