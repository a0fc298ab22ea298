package photostore

import (
	"context"
	"io"
)

// Categories map to the per-purpose public subdirectories uploads land in.
const (
	CategoryDishImages    = "dish-images"
	CategoryGalleryImages = "gallery-images"
	CategoryUploads       = "uploads"
)

// PhotoStore persists uploaded files under a public static root. The stored
// name is derived from random bytes, never from the original filename; the
// original name is display metadata only.
type PhotoStore interface {
	// Save writes the file into the category subdirectory and returns its
	// public path ("/<category>/<random>.<ext>").
	Save(ctx context.Context, category, originalName string, r io.Reader) (publicPath string, err error)
	// Delete removes a previously stored file by its public path.
	Delete(ctx context.Context, publicPath string) error
}
