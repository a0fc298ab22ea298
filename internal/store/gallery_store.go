package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loscamioneros/web/internal/domain"
	"github.com/loscamioneros/web/internal/recordstore"
)

const galleryKey = "gallery"

// GalleryStore manages the public gallery collection, same whole-collection
// lifecycle as DishStore.
type GalleryStore struct {
	c collection[domain.GalleryImage]
}

func NewGalleryStore(rs recordstore.Store, logger *slog.Logger) *GalleryStore {
	return &GalleryStore{c: collection[domain.GalleryImage]{
		store:    rs,
		key:      galleryKey,
		defaults: domain.DefaultGallery,
		logger:   logger,
	}}
}

func (s *GalleryStore) List(ctx context.Context) []domain.GalleryImage {
	return s.c.load(ctx)
}

// Upsert replaces the image with the same id, or appends it when absent.
// created reports which branch was taken so the caller can audit it.
func (s *GalleryStore) Upsert(ctx context.Context, img domain.GalleryImage) (domain.GalleryImage, bool, error) {
	img, err := validateGalleryImage(img)
	if err != nil {
		return domain.GalleryImage{}, false, err
	}

	images := s.c.load(ctx)
	for i, existing := range images {
		if existing.ID == img.ID {
			images[i] = img
			return img, false, s.c.save(ctx, images)
		}
	}
	return img, true, s.c.save(ctx, append(images, img))
}

// Delete removes the image by id and returns the removed record so the caller
// can clean up the underlying file best-effort.
func (s *GalleryStore) Delete(ctx context.Context, id int) (domain.GalleryImage, error) {
	images := s.c.load(ctx)
	var removed domain.GalleryImage
	kept := images[:0:0]
	found := false
	for _, img := range images {
		if img.ID == id {
			removed = img
			found = true
			continue
		}
		kept = append(kept, img)
	}
	if !found {
		return domain.GalleryImage{}, fmt.Errorf("%w: gallery image %d", ErrNotFound, id)
	}
	if err := s.c.save(ctx, kept); err != nil {
		return domain.GalleryImage{}, err
	}
	return removed, nil
}

func validateGalleryImage(img domain.GalleryImage) (domain.GalleryImage, error) {
	img.Title = domain.Sanitize(img.Title)
	img.Description = domain.Sanitize(img.Description)
	img.Badge = domain.Sanitize(img.Badge)

	if img.ID <= 0 {
		return img, fmt.Errorf("%w: image id must be a positive number", ErrValidation)
	}
	if img.Title == "" || img.Src == "" {
		return img, fmt.Errorf("%w: image title and src are required", ErrValidation)
	}
	return img, nil
}
