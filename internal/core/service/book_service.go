package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/repository"
)

type BookService struct {
	repo    repository.BookRepository
	authors repository.AuthorRepository
	genres  repository.GenreRepository
}

func NewBookService(repo repository.BookRepository, authors repository.AuthorRepository, genres repository.GenreRepository) *BookService {
	return &BookService{repo: repo, authors: authors, genres: genres}
}

func (s *BookService) Create(ctx context.Context, book entity.Book) (entity.Book, error) {
	return s.repo.Create(ctx, book)
}

func (s *BookService) Get(ctx context.Context, id uuid.UUID) (entity.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookService) Update(ctx context.Context, book entity.Book) (entity.Book, error) {
	return s.repo.Update(ctx, book)
}

func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *BookService) List(ctx context.Context, params query.Params) (query.Page[entity.Book], error) {
	spec, err := query.Build(params, query.BookFields, query.BookDefaultSort)
	if err != nil {
		return query.Page[entity.Book]{}, err
	}
	return s.repo.List(ctx, spec)
}

// ListAuthors returns the full resolved author records of one book.
func (s *BookService) ListAuthors(ctx context.Context, bookID uuid.UUID) ([]entity.Author, error) {
	if _, err := s.repo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.authors.ListByBook(ctx, bookID)
}

// ListGenres returns the full resolved genre records of one book.
func (s *BookService) ListGenres(ctx context.Context, bookID uuid.UUID) ([]entity.Genre, error) {
	if _, err := s.repo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.genres.ListByBook(ctx, bookID)
}
