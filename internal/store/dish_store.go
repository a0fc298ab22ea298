package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loscamioneros/web/internal/domain"
	"github.com/loscamioneros/web/internal/recordstore"
)

const dishesKey = "dishes"

// DishStore manages the menu collection. Every mutation reads the whole
// collection and writes it back; two racing mutations resolve last-writer-wins.
type DishStore struct {
	c collection[domain.Dish]
}

func NewDishStore(rs recordstore.Store, logger *slog.Logger) *DishStore {
	return &DishStore{c: collection[domain.Dish]{
		store:    rs,
		key:      dishesKey,
		defaults: domain.DefaultDishes,
		logger:   logger,
	}}
}

func (s *DishStore) List(ctx context.Context) []domain.Dish {
	return s.c.load(ctx)
}

func (s *DishStore) Create(ctx context.Context, dish domain.Dish) (domain.Dish, error) {
	dish, err := validateDish(dish)
	if err != nil {
		return domain.Dish{}, err
	}

	dishes := s.c.load(ctx)
	for _, d := range dishes {
		if d.ID == dish.ID {
			return domain.Dish{}, fmt.Errorf("%w: dish %d", ErrConflict, dish.ID)
		}
	}
	if err := s.c.save(ctx, append(dishes, dish)); err != nil {
		return domain.Dish{}, err
	}
	return dish, nil
}

func (s *DishStore) Update(ctx context.Context, dish domain.Dish) (domain.Dish, error) {
	dish, err := validateDish(dish)
	if err != nil {
		return domain.Dish{}, err
	}

	dishes := s.c.load(ctx)
	for i, d := range dishes {
		if d.ID == dish.ID {
			dishes[i] = dish
			if err := s.c.save(ctx, dishes); err != nil {
				return domain.Dish{}, err
			}
			return dish, nil
		}
	}
	return domain.Dish{}, fmt.Errorf("%w: dish %d", ErrNotFound, dish.ID)
}

// Upsert replaces the dish with the same id, or appends it when absent.
func (s *DishStore) Upsert(ctx context.Context, dish domain.Dish) (domain.Dish, bool, error) {
	dish, err := validateDish(dish)
	if err != nil {
		return domain.Dish{}, false, err
	}

	dishes := s.c.load(ctx)
	for i, d := range dishes {
		if d.ID == dish.ID {
			dishes[i] = dish
			return dish, false, s.c.save(ctx, dishes)
		}
	}
	return dish, true, s.c.save(ctx, append(dishes, dish))
}

func (s *DishStore) Delete(ctx context.Context, id int) error {
	dishes := s.c.load(ctx)
	kept := dishes[:0:0]
	for _, d := range dishes {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(dishes) {
		return fmt.Errorf("%w: dish %d", ErrNotFound, id)
	}
	return s.c.save(ctx, kept)
}

func validateDish(d domain.Dish) (domain.Dish, error) {
	d.Name = domain.Sanitize(d.Name)
	d.Description = domain.Sanitize(d.Description)
	d.Badge = domain.Sanitize(d.Badge)

	if d.ID <= 0 {
		return d, fmt.Errorf("%w: dish id must be a positive number", ErrValidation)
	}
	if d.Name == "" || d.Description == "" {
		return d, fmt.Errorf("%w: dish name and description are required", ErrValidation)
	}
	if d.Image == "" || d.Badge == "" {
		return d, fmt.Errorf("%w: dish image and badge are required", ErrValidation)
	}
	return d, nil
}
