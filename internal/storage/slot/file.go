package slot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/coversync/coversync/internal/storage"
)

// Ensure File implements Backend.
var _ Backend = (*File)(nil)

// File is a slot backend that keeps one <key>.json file per slot under a
// data directory. Writes go to a temp file first and are renamed into
// place, so a failed write leaves the previous payload intact.
type File struct {
	dir string
}

// NewFile creates a file-backed slot store rooted at dir, creating the
// directory if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create slot directory: %v", storage.ErrStorageUnavailable, err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get reads the payload file for key. A missing file means the slot has
// never been written.
func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: read slot %s: %v", storage.ErrStorageUnavailable, key, err)
	}
	return string(data), true, nil
}

// Put writes the payload to a temp file and renames it over the slot file.
func (f *File) Put(_ context.Context, key, payload string) error {
	tmp, err := os.CreateTemp(f.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: write slot %s: %v", storage.ErrStorageUnavailable, key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write slot %s: %v", storage.ErrStorageUnavailable, key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write slot %s: %v", storage.ErrStorageUnavailable, key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: write slot %s: %v", storage.ErrStorageUnavailable, key, err)
	}
	return nil
}

// Close is a no-op: the backend holds no open handles between calls.
func (f *File) Close() error {
	return nil
}
