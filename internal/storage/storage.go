package storage

import "io"

// Storer persists keyed values below a base directory. It is the file backed
// stand-in for the browser's local and session storage.
type Storer interface {
	Store(in io.Reader, path ...string) (StoredFile, error)
	Load(path ...string) (io.ReadCloser, error)
	Remove(path ...string) error
	// AbsolutePath resolves the given key to its location on disk without
	// touching the file. Useful for watching a key for external changes.
	AbsolutePath(path ...string) (string, error)
}

type StoredFile struct {
	Path         string
	AbsolutePath string
}
