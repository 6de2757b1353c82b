package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/repository"
)

// PublishingHouseServicer is the surface the controller depends on, so that
// the caching proxy can stand in for the plain service.
type PublishingHouseServicer interface {
	Create(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error)
	Get(ctx context.Context, id uuid.UUID) (entity.PublishingHouse, error)
	Update(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params query.Params) (query.Page[entity.PublishingHouse], error)
	ListBooks(ctx context.Context, houseID uuid.UUID, params query.Params) (query.Page[entity.Book], error)
}

type PublishingHouseService struct {
	repo  repository.PublishingHouseRepository
	books repository.BookRepository
}

func NewPublishingHouseService(repo repository.PublishingHouseRepository, books repository.BookRepository) *PublishingHouseService {
	return &PublishingHouseService{repo: repo, books: books}
}

func (s *PublishingHouseService) Create(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error) {
	return s.repo.Create(ctx, house)
}

func (s *PublishingHouseService) Get(ctx context.Context, id uuid.UUID) (entity.PublishingHouse, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PublishingHouseService) Update(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error) {
	return s.repo.Update(ctx, house)
}

func (s *PublishingHouseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *PublishingHouseService) List(ctx context.Context, params query.Params) (query.Page[entity.PublishingHouse], error) {
	spec, err := query.Build(params, query.PublishingHouseFields, query.PublishingHouseDefaultSort)
	if err != nil {
		return query.Page[entity.PublishingHouse]{}, err
	}
	return s.repo.List(ctx, spec)
}

func (s *PublishingHouseService) ListBooks(ctx context.Context, houseID uuid.UUID, params query.Params) (query.Page[entity.Book], error) {
	if _, err := s.repo.GetByID(ctx, houseID); err != nil {
		return query.Page[entity.Book]{}, err
	}
	spec, err := query.Build(params, query.BookFields, query.BookDefaultSort)
	if err != nil {
		return query.Page[entity.Book]{}, err
	}
	return s.books.ListByPublishingHouse(ctx, houseID, spec)
}
