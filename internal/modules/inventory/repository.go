package inventory

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("item not found")

// Repository defines inventory item data storage.
type Repository interface {
	ListAll(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, id int64, item *Item) error
	Delete(ctx context.Context, id int64) error
}
