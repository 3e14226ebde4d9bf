package interfaces

import "io/fs"

// FileSystem defines the filesystem operations needed to build a listing
type FileSystem interface {
	// Resolve expands and validates a directory path, returning it absolute
	Resolve(path string) (string, error)

	// ReadDir returns the entry names of a directory
	ReadDir(dir string) ([]string, error)

	// Stat returns metadata for a path, following symlinks where possible
	Stat(path string) (fs.FileInfo, error)
}
