package export

import (
	"context"

	"github.com/stockroomhq/stockroom-backend/internal/modules/inventory"
)

// Service renders the full item list into downloadable formats. Both
// renderings read the record set once and never mutate it.
type Service interface {
	CSV(ctx context.Context) ([]byte, error)
	PDF(ctx context.Context) ([]byte, error)
}

type service struct {
	items inventory.Repository
}

// NewService creates a new export service reading from the given repository.
func NewService(items inventory.Repository) Service {
	return &service{items: items}
}

func (s *service) CSV(ctx context.Context) ([]byte, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return MarshalCSV(items)
}

func (s *service) PDF(ctx context.Context) ([]byte, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return RenderPDF(items)
}
