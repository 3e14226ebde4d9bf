package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/recent/pkg/domain/model"
)

// RecentUseCase defines the interface for listing recently modified entries
type RecentUseCase interface {
	// List reads a directory and returns its newest entries
	List(ctx context.Context, opts *model.ListOptions) (*model.Listing, error)
}

// Presenter writes a listing in a particular output format
type Presenter interface {
	Render(ctx context.Context, w io.Writer, listing *model.Listing) error
}
