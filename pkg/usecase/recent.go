package usecase

import (
	"context"
	"path/filepath"
	"sort"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/recent/pkg/domain/interfaces"
	"github.com/m-mizutani/recent/pkg/domain/model"
)

type recentUseCase struct {
	fs interfaces.FileSystem
}

// NewRecent creates a new instance of RecentUseCase
func NewRecent(fs interfaces.FileSystem) interfaces.RecentUseCase {
	return &recentUseCase{
		fs: fs,
	}
}

// List reads the directory, sorts entries newest first, drops entries that
// are not visible under opts.ShowHidden and truncates to opts.Limit.
func (uc *recentUseCase) List(ctx context.Context, opts *model.ListOptions) (*model.Listing, error) {
	logger := ctxlog.From(ctx)

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dir, err := uc.fs.Resolve(opts.Dir)
	if err != nil {
		return nil, goerr.Wrap(err, "cannot list directory", goerr.V("dir", opts.Dir))
	}

	names, err := uc.fs.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list directory", goerr.V("dir", dir))
	}

	logger.Debug("Read directory",
		"dir", dir,
		"entry_count", len(names),
	)

	listing := &model.Listing{Dir: dir}
	entries := make([]*model.Entry, 0, len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "listing interrupted", goerr.V("dir", dir))
		}

		path := filepath.Join(dir, name)
		info, err := uc.fs.Stat(path)
		if err != nil {
			logger.Debug("Skipping entry without metadata", "path", path, "error", err)
			listing.Skipped++
			continue
		}

		entries = append(entries, &model.Entry{
			Name:    name,
			Path:    path,
			ModTime: info.ModTime(),
			Kind:    model.ClassifyEntry(name, info),
			Size:    info.Size(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].ModTime.Equal(entries[j].ModTime) {
			return entries[i].ModTime.After(entries[j].ModTime)
		}
		return entries[i].Name < entries[j].Name
	})

	for _, e := range entries {
		if len(listing.Entries) >= opts.Limit {
			break
		}
		if e.Visible(opts.ShowHidden) {
			listing.Entries = append(listing.Entries, e)
		}
	}

	logger.Debug("Built listing",
		"dir", dir,
		"shown", len(listing.Entries),
		"skipped", listing.Skipped,
		"show_hidden", opts.ShowHidden,
	)

	return listing, nil
}
