package files

import (
	"context"
	"net/url"
	"os"
)

// Store is a read-only source of directory listings.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}
