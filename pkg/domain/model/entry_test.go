package model_test

import (
	"io/fs"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/recent/pkg/domain/model"
)

type fakeInfo struct {
	name string
	mode fs.FileMode
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() fs.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeInfo) Sys() any           { return nil }

func TestClassifyEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    string
		mode     fs.FileMode
		expected model.EntryKind
	}{
		{name: "regular file", entry: "main.go", mode: 0644, expected: model.KindFile},
		{name: "dot file", entry: ".bashrc", mode: 0644, expected: model.KindHidden},
		{name: "directory", entry: "src", mode: fs.ModeDir | 0755, expected: model.KindDirectory},
		{name: "dot directory", entry: ".git", mode: fs.ModeDir | 0755, expected: model.KindDirectory},
		{name: "dangling symlink", entry: "link", mode: fs.ModeSymlink | 0777, expected: model.KindSymlink},
		{name: "dangling dot symlink", entry: ".link", mode: fs.ModeSymlink | 0777, expected: model.KindSymlink},
		{name: "named pipe", entry: "fifo", mode: fs.ModeNamedPipe | 0644, expected: model.KindFile},
		{name: "dot socket", entry: ".sock", mode: fs.ModeSocket | 0644, expected: model.KindHidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ClassifyEntry(tt.entry, fakeInfo{name: tt.entry, mode: tt.mode})
			gt.Value(t, got).Equal(tt.expected)
		})
	}
}

func TestEntry_Visible(t *testing.T) {
	tests := []struct {
		name       string
		entry      *model.Entry
		showHidden bool
		expected   bool
	}{
		{name: "file shown", entry: &model.Entry{Name: "a.txt", Kind: model.KindFile}, expected: true},
		{name: "directory shown", entry: &model.Entry{Name: "docs", Kind: model.KindDirectory}, expected: true},
		{name: "dot directory hidden", entry: &model.Entry{Name: ".git", Kind: model.KindDirectory}, expected: false},
		{name: "hidden file hidden", entry: &model.Entry{Name: ".env", Kind: model.KindHidden}, expected: false},
		{name: "symlink hidden", entry: &model.Entry{Name: "broken", Kind: model.KindSymlink}, expected: false},
		{name: "dot directory with show hidden", entry: &model.Entry{Name: ".git", Kind: model.KindDirectory}, showHidden: true, expected: true},
		{name: "hidden file with show hidden", entry: &model.Entry{Name: ".env", Kind: model.KindHidden}, showHidden: true, expected: true},
		{name: "symlink with show hidden", entry: &model.Entry{Name: "broken", Kind: model.KindSymlink}, showHidden: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.entry.Visible(tt.showHidden)).Equal(tt.expected)
		})
	}
}

func TestEntryKind_String(t *testing.T) {
	gt.Value(t, model.KindFile.String()).Equal("file")
	gt.Value(t, model.KindDirectory.String()).Equal("directory")
	gt.Value(t, model.KindSymlink.String()).Equal("symlink")
	gt.Value(t, model.KindHidden.String()).Equal("hidden")
	gt.Value(t, model.EntryKind(42).String()).Equal("unknown")
}

func TestListOptions_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		opts := &model.ListOptions{Dir: ".", Limit: 10}
		gt.NoError(t, opts.Validate())
	})

	t.Run("zero limit", func(t *testing.T) {
		opts := &model.ListOptions{Dir: ".", Limit: 0}
		gt.Error(t, opts.Validate()).Is(model.ErrInvalidLimit)
	})

	t.Run("negative limit", func(t *testing.T) {
		opts := &model.ListOptions{Dir: ".", Limit: -3}
		gt.Error(t, opts.Validate()).Is(model.ErrInvalidLimit)
	})

	t.Run("empty dir", func(t *testing.T) {
		opts := &model.ListOptions{Limit: 1}
		gt.Error(t, opts.Validate()).Is(model.ErrEmptyDir)
	})
}
