package fs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// OSFS is the real filesystem. The zero value is ready to use; the holding
// directory for soft deletes is created lazily on first delete.
type OSFS struct {
	// TrashRoot overrides os.TempDir() as the parent of the holding
	// directory. Mainly for tests.
	TrashRoot string

	trashDir string
}

func (o *OSFS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

func (o *OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (o *OSFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (o *OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (o *OSFS) CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	dst = resolveCollision(dst)

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	return nil
}

func (o *OSFS) MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return o.rename(src, resolveCollision(dst))
}

// SoftDelete relocates src into a per-run holding directory under the
// system temporary location and returns the new path.
func (o *OSFS) SoftDelete(src string) (string, error) {
	if o.trashDir == "" {
		root := o.TrashRoot
		if root == "" {
			root = os.TempDir()
		}
		dir, err := os.MkdirTemp(root, "photriage-trash-")
		if err != nil {
			return "", err
		}
		o.trashDir = dir
	}

	dst := resolveCollision(filepath.Join(o.trashDir, filepath.Base(src)))
	if err := o.rename(src, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// rename falls back to copy+remove when src and dst are on different
// devices, where os.Rename fails with EXDEV.
func (o *OSFS) rename(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := o.CopyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// resolveCollision appends _1, _2, ... to the base name until the path is
// free, so an existing destination file is never overwritten.
func resolveCollision(dst string) string {
	if _, err := os.Stat(dst); os.IsNotExist(err) {
		return dst
	}
	dir := filepath.Dir(dst)
	base := filepath.Base(dst)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
