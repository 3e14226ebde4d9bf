package view

import (
	"context"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/recent/pkg/domain/interfaces"
	"github.com/m-mizutani/recent/pkg/domain/model"
)

type jsonEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	Modified string `json:"modified"`
	Relative string `json:"relative"`
	Size     int64  `json:"size"`
}

// JSON renders a listing as a JSON array for scripting
type JSON struct {
	cfg *config
}

var _ interfaces.Presenter = (*JSON)(nil)

// NewJSON creates a JSON presenter. Width and color options are ignored.
func NewJSON(opts ...Option) *JSON {
	return &JSON{cfg: newConfig(opts)}
}

// Render writes the entries as an indented JSON array
func (j *JSON) Render(ctx context.Context, w io.Writer, listing *model.Listing) error {
	now := j.cfg.now()

	out := make([]jsonEntry, 0, len(listing.Entries))
	for _, e := range listing.Entries {
		out = append(out, jsonEntry{
			Name:     e.Name,
			Path:     e.Path,
			Kind:     e.Kind.String(),
			Modified: e.ModTime.In(j.cfg.loc).Format(time.RFC3339),
			Relative: RelativeTime(e.ModTime, now),
			Size:     e.Size,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return goerr.Wrap(err, "failed to encode listing as JSON", goerr.V("dir", listing.Dir))
	}
	return nil
}
