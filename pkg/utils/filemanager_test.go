package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	fm := NewFileManager(filepath.Join(root, "out"), filepath.Join(root, "archive"))

	require.NoError(t, fm.EnsureDirectories())
	assert.DirExists(t, fm.OutputDir)
	assert.DirExists(t, fm.InputArchiveDir)
}

func TestWriteOutputFile_Replaces(t *testing.T) {
	fm := NewFileManager(t.TempDir(), "")

	path, err := fm.WriteOutputFile("sales.csv", []byte("old"))
	require.NoError(t, err)
	_, err = fm.WriteOutputFile("sales.csv", []byte("new"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(fm.OutputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sales.csv", entries[0].Name())
}

func TestWriteOutputFile_MissingDir(t *testing.T) {
	fm := NewFileManager(filepath.Join(t.TempDir(), "missing"), "")
	_, err := fm.WriteOutputFile("sales.csv", []byte("x"))
	assert.Error(t, err)
}

func TestArchiveInputFile_Disabled(t *testing.T) {
	fm := NewFileManager(t.TempDir(), "")
	path, err := fm.ArchiveInputFile("/nowhere/export.csv")
	require.NoError(t, err)
	assert.Equal(t, "/nowhere/export.csv", path)
}

func TestArchiveInputFile_Collision(t *testing.T) {
	root := t.TempDir()
	fm := NewFileManager(root, filepath.Join(root, "archive"))

	var archived []string
	for i := 0; i < 2; i++ {
		input := filepath.Join(root, "export.csv")
		require.NoError(t, os.WriteFile(input, []byte("data"), 0644))

		path, err := fm.ArchiveInputFile(input)
		require.NoError(t, err)
		assert.NoFileExists(t, input)
		assert.FileExists(t, path)
		archived = append(archived, path)
	}

	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "export.csv"), archived[0])
	assert.NotEqual(t, archived[0], archived[1])
	base := filepath.Base(archived[1])
	assert.True(t, strings.HasPrefix(base, "export_") && strings.HasSuffix(base, ".csv"), base)
}

func TestArchiveInputFile_TimestampSubdirs(t *testing.T) {
	root := t.TempDir()
	fm := NewFileManager(root, filepath.Join(root, "archive"))
	fm.UseTimestampSubdirs = true
	fm.now = func() time.Time { return time.Date(2019, 5, 27, 10, 0, 0, 0, time.UTC) }

	input := filepath.Join(root, "bookings_export.csv")
	require.NoError(t, os.WriteFile(input, []byte("data"), 0644))

	path, err := fm.ArchiveInputFile(input)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "2019", "05", "27", "bookings_export.csv"), path)
}
