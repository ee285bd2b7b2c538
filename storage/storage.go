package storage

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gallery/config"

	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	basePath string
	// dirs caches directories already known to exist
	dirs cmap.ConcurrentMap[string, bool]
)

func Init() {
	basePath = config.UPLOAD_DIR
	dirs = cmap.New[bool]()
	if err := EnsureDirExists(basePath); err != nil {
		panic(err)
	}
}

func GetFullPath(path string) string {
	return filepath.Join(basePath, path)
}

func EnsureDirExists(dir string) error {
	if _, ok := dirs.Get(dir); ok {
		return nil
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	dirs.Set(dir, true)
	return nil
}

func Save(path string, reader io.Reader) (int64, error) {
	fileName := GetFullPath(path)
	if err := EnsureDirExists(filepath.Dir(fileName)); err != nil {
		return 0, err
	}
	file, err := os.Create(fileName)
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(file, reader)
	file.Close()
	return result, err
}

// Delete unlinks the file. An already-missing file is fine.
func Delete(path string) error {
	err := os.Remove(GetFullPath(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
