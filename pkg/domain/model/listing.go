package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// DefaultLimit is the number of entries shown when no limit is configured
const DefaultLimit = 10

var (
	ErrInvalidLimit = goerr.New("number of files must be at least 1")
	ErrEmptyDir     = goerr.New("directory path is empty")
)

// ListOptions holds parameters for listing recently modified entries
type ListOptions struct {
	Dir        string
	Limit      int
	ShowHidden bool
}

// Validate checks that the options can produce a listing
func (o *ListOptions) Validate() error {
	if o.Dir == "" {
		return goerr.Wrap(ErrEmptyDir, "invalid list options")
	}
	if o.Limit < 1 {
		return goerr.Wrap(ErrInvalidLimit, "invalid list options", goerr.V("limit", o.Limit))
	}
	return nil
}

// Listing is the result of listing a directory
type Listing struct {
	Dir     string   // Resolved absolute directory
	Entries []*Entry // Newest first, already filtered and truncated
	Skipped int      // Entries dropped because their metadata could not be read
}
