package model

import (
	"io/fs"
	"strings"
	"time"
)

// EntryKind represents how a directory entry is classified for display
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
	KindSymlink
	KindHidden
)

func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	case KindHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Entry represents a single directory entry with its modification time
type Entry struct {
	Name    string    // Base name
	Path    string    // Absolute path
	ModTime time.Time // Last modification time
	Kind    EntryKind // Display classification
	Size    int64     // Size in bytes as reported by stat
}

// ClassifyEntry decides the kind of an entry from its name and metadata.
// info is expected to come from a stat that follows symlinks, so a symlink
// mode only shows up for links whose target could not be resolved.
func ClassifyEntry(name string, info fs.FileInfo) EntryKind {
	dot := strings.HasPrefix(name, ".")
	mode := info.Mode()

	switch {
	case mode.IsRegular() && !dot:
		return KindFile
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case dot:
		return KindHidden
	default:
		return KindFile
	}
}

// IsDotName reports whether the entry name begins with a dot
func (e *Entry) IsDotName() bool {
	return strings.HasPrefix(e.Name, ".")
}

// Visible reports whether the entry is shown under the given hidden policy
func (e *Entry) Visible(showHidden bool) bool {
	if showHidden {
		return true
	}
	if e.Kind != KindFile && e.Kind != KindDirectory {
		return false
	}
	return !e.IsDotName()
}
