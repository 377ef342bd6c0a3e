package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCopyFileKeepsSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "a.jpg")
	destDir := t.TempDir()
	writeFile(t, src, "pixels")

	fsys := &OSFS{}
	require.NoError(t, fsys.CopyFile(src, filepath.Join(destDir, "a.jpg")))

	assert.Equal(t, "pixels", readFile(t, src))
	assert.Equal(t, "pixels", readFile(t, filepath.Join(destDir, "a.jpg")))
}

func TestCopyFileCreatesMissingDestDir(t *testing.T) {
	src := filepath.Join(t.TempDir(), "a.jpg")
	writeFile(t, src, "pixels")
	dst := filepath.Join(t.TempDir(), "2023", "06", "a.jpg")

	fsys := &OSFS{}
	require.NoError(t, fsys.CopyFile(src, dst))
	assert.Equal(t, "pixels", readFile(t, dst))
}

func TestMoveFileRemovesSource(t *testing.T) {
	src := filepath.Join(t.TempDir(), "a.jpg")
	dst := filepath.Join(t.TempDir(), "a.jpg")
	writeFile(t, src, "pixels")

	fsys := &OSFS{}
	require.NoError(t, fsys.MoveFile(src, dst))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source must be gone after move")
	assert.Equal(t, "pixels", readFile(t, dst))
}

func TestMoveFileResolvesCollision(t *testing.T) {
	srcDir := t.TempDir()
	destDir := t.TempDir()
	src := filepath.Join(srcDir, "a.jpg")
	writeFile(t, src, "new")
	writeFile(t, filepath.Join(destDir, "a.jpg"), "old")

	fsys := &OSFS{}
	require.NoError(t, fsys.MoveFile(src, filepath.Join(destDir, "a.jpg")))

	assert.Equal(t, "old", readFile(t, filepath.Join(destDir, "a.jpg")), "existing file is never overwritten")
	assert.Equal(t, "new", readFile(t, filepath.Join(destDir, "a_1.jpg")))
}

func TestSoftDeleteRelocatesNotErases(t *testing.T) {
	src := filepath.Join(t.TempDir(), "a.jpg")
	writeFile(t, src, "pixels")

	fsys := &OSFS{TrashRoot: t.TempDir()}
	trashPath, err := fsys.SoftDelete(src)
	require.NoError(t, err)

	_, statErr := os.Stat(src)
	assert.True(t, os.IsNotExist(statErr))
	assert.Equal(t, "pixels", readFile(t, trashPath))
}

func TestSoftDeleteReusesHoldingDirWithinRun(t *testing.T) {
	srcDir := t.TempDir()
	a := filepath.Join(srcDir, "a.jpg")
	b := filepath.Join(srcDir, "b.jpg")
	writeFile(t, a, "a")
	writeFile(t, b, "b")

	fsys := &OSFS{TrashRoot: t.TempDir()}
	pathA, err := fsys.SoftDelete(a)
	require.NoError(t, err)
	pathB, err := fsys.SoftDelete(b)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(pathA), filepath.Dir(pathB))
}

func TestSoftDeleteResolvesSameNameTwice(t *testing.T) {
	dirOne := t.TempDir()
	dirTwo := t.TempDir()
	writeFile(t, filepath.Join(dirOne, "a.jpg"), "one")
	writeFile(t, filepath.Join(dirTwo, "a.jpg"), "two")

	fsys := &OSFS{TrashRoot: t.TempDir()}
	pathOne, err := fsys.SoftDelete(filepath.Join(dirOne, "a.jpg"))
	require.NoError(t, err)
	pathTwo, err := fsys.SoftDelete(filepath.Join(dirTwo, "a.jpg"))
	require.NoError(t, err)

	assert.NotEqual(t, pathOne, pathTwo)
	assert.Equal(t, "one", readFile(t, pathOne))
	assert.Equal(t, "two", readFile(t, pathTwo))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	fsys := &OSFS{}

	exists, err := fsys.Exists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fsys.Exists(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReadDirListsFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.jpg"), "")
	writeFile(t, filepath.Join(dir, "a.jpg"), "")

	fsys := &OSFS{}
	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.jpg", entries[0].Name())
	assert.Equal(t, "b.jpg", entries[1].Name())
}
