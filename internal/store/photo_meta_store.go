package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loscamioneros/web/internal/domain"
	"github.com/loscamioneros/web/internal/recordstore"
)

const photosKey = "photo_metadata"

// PhotoMetaStore tracks uploaded files for the generic upload gallery. It is
// independent of the dish and gallery collections.
type PhotoMetaStore struct {
	c collection[domain.PhotoMeta]
}

func NewPhotoMetaStore(rs recordstore.Store, logger *slog.Logger) *PhotoMetaStore {
	return &PhotoMetaStore{c: collection[domain.PhotoMeta]{
		store:    rs,
		key:      photosKey,
		defaults: empty[domain.PhotoMeta],
		logger:   logger,
	}}
}

func (s *PhotoMetaStore) Append(ctx context.Context, metas ...domain.PhotoMeta) error {
	all := s.c.load(ctx)
	return s.c.save(ctx, append(all, metas...))
}

// List returns the stored metadata, optionally filtered by photo type.
func (s *PhotoMetaStore) List(ctx context.Context, photoType string) []domain.PhotoMeta {
	all := s.c.load(ctx)
	if photoType == "" {
		return all
	}
	filtered := all[:0:0]
	for _, m := range all {
		if m.Type == photoType {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// Remove deletes the metadata entry by id and returns it so the caller can
// clean up the stored file.
func (s *PhotoMetaStore) Remove(ctx context.Context, id string) (domain.PhotoMeta, error) {
	all := s.c.load(ctx)
	var removed domain.PhotoMeta
	kept := all[:0:0]
	found := false
	for _, m := range all {
		if m.ID == id {
			removed = m
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return domain.PhotoMeta{}, fmt.Errorf("%w: photo %s", ErrNotFound, id)
	}
	if err := s.c.save(ctx, kept); err != nil {
		return domain.PhotoMeta{}, err
	}
	return removed, nil
}
