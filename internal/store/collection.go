package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/loscamioneros/web/internal/recordstore"
)

// collection binds one recordstore key to a concrete record type. load never
// surfaces a read error: a missing or unreadable collection falls back to the
// defaults so the public site always has something to render. The failure is
// still logged so a broken backing store shows up in operations.
type collection[T any] struct {
	store    recordstore.Store
	key      string
	defaults func() []T
	logger   *slog.Logger
}

func (c *collection[T]) load(ctx context.Context) []T {
	data, found, err := c.store.Load(ctx, c.key)
	if err != nil {
		c.logger.Warn("collection read failed, serving defaults", "key", c.key, "error", err)
		return c.defaults()
	}
	if !found {
		return c.defaults()
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn("collection is corrupt, serving defaults", "key", c.key, "error", err)
		return c.defaults()
	}
	return items
}

func (c *collection[T]) save(ctx context.Context, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return c.store.Save(ctx, c.key, data)
}

func empty[T any]() []T { return []T{} }
