package inventory

import "context"

// Service defines inventory business logic. The model is a flat single
// table, so every operation delegates straight to the repository.
type Service interface {
	ListItems(ctx context.Context) ([]Item, error)
	GetItem(ctx context.Context, id int64) (*Item, error)
	CreateItem(ctx context.Context, item *Item) error
	UpdateItem(ctx context.Context, id int64, item *Item) error
	DeleteItem(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService creates a new inventory service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListItems(ctx context.Context) ([]Item, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) GetItem(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateItem(ctx context.Context, item *Item) error {
	return s.repo.Create(ctx, item)
}

func (s *service) UpdateItem(ctx context.Context, id int64, item *Item) error {
	return s.repo.Update(ctx, id, item)
}

func (s *service) DeleteItem(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
