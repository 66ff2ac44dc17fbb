package filesystem

import (
	"io"
	"os"
)

// GacheFs adapts the active backend to the gache.FileSystem interface,
// letting disk-backed caches follow SetMemMapFs in tests.
type GacheFs struct{}

// OpenFile opens a file using the current backend.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

// MkdirAll creates a directory tree using the current backend.
func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
