package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.dat")

	require.NoError(t, WriteFileAtomic(testFile, []byte("initial"), 0o644))
	require.NoError(t, WriteFileAtomic(testFile, []byte("updated content"), 0o644))

	data, err := os.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "updated content", string(data))

	info, err := os.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	// No temp files remain
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test.dat", entries[0].Name())
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "x.dat"), []byte("x"), 0o644)
	assert.Error(t, err)
}

func TestWordsRoundTrip(t *testing.T) {
	t.Parallel()

	words := []uint32{0, 1, 0xDEADBEEF, 53, 0xFFFFFFFF}
	data := Encode(words)
	require.Len(t, data, 20)
	assert.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, data[8:12], "little endian")

	path := filepath.Join(t.TempDir(), "words.dat")
	require.NoError(t, WriteWords(path, words))

	got, err := ReadWords(path)
	require.NoError(t, err)
	assert.Equal(t, words, got)
}

func TestDecodeRejectsPartialWord(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte{1, 2, 3, 4, 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSize))

	path := filepath.Join(t.TempDir(), "bad.dat")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))
	_, err = ReadWords(path)
	assert.ErrorIs(t, err, ErrSize)
}

func TestManifest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := quartz.NewMock(t)
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	clock.Set(created).MustWait(ctx)

	words := []uint32{53, 54, 55}
	m := NewManifest(clock, KindTransition, words)
	m.HandSize = 7

	_, err := uuid.Parse(m.BuildID)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Words)
	assert.Equal(t, created, m.CreatedAt)
	require.NoError(t, m.Verify(words))

	path := filepath.Join(t.TempDir(), "handranks.dat")
	require.NoError(t, WriteManifest(path, m))

	loaded, err := ReadManifest(path)
	require.NoError(t, err)
	assert.True(t, created.Equal(loaded.CreatedAt))
	loaded.CreatedAt = m.CreatedAt
	assert.Equal(t, m, loaded)

	assert.ErrorIs(t, loaded.Verify([]uint32{53, 54}), ErrSize)
	assert.ErrorIs(t, loaded.Verify([]uint32{53, 54, 56}), ErrChecksum)
}

func TestReadManifestRejectsBadBuildID(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "x.dat")
	require.NoError(t, os.WriteFile(ManifestPath(path), []byte(`{"build_id":"nope","kind":"transition"}`), 0o644))
	_, err := ReadManifest(path)
	assert.Error(t, err)
}
