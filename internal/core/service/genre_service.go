package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/repository"
)

type GenreService struct {
	repo  repository.GenreRepository
	books repository.BookRepository
}

func NewGenreService(repo repository.GenreRepository, books repository.BookRepository) *GenreService {
	return &GenreService{repo: repo, books: books}
}

func (s *GenreService) Create(ctx context.Context, genre entity.Genre) (entity.Genre, error) {
	return s.repo.Create(ctx, genre)
}

func (s *GenreService) Get(ctx context.Context, id uuid.UUID) (entity.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GenreService) Update(ctx context.Context, genre entity.Genre) (entity.Genre, error) {
	return s.repo.Update(ctx, genre)
}

func (s *GenreService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *GenreService) List(ctx context.Context, params query.Params) (query.Page[entity.Genre], error) {
	spec, err := query.Build(params, query.GenreFields, query.GenreDefaultSort)
	if err != nil {
		return query.Page[entity.Genre]{}, err
	}
	return s.repo.List(ctx, spec)
}

func (s *GenreService) ListBooks(ctx context.Context, genreID uuid.UUID, params query.Params) (query.Page[entity.Book], error) {
	if _, err := s.repo.GetByID(ctx, genreID); err != nil {
		return query.Page[entity.Book]{}, err
	}
	spec, err := query.Build(params, query.BookFields, query.BookDefaultSort)
	if err != nil {
		return query.Page[entity.Book]{}, err
	}
	return s.books.ListByGenre(ctx, genreID, spec)
}
