package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/repository"
)

type AuthorService struct {
	repo  repository.AuthorRepository
	books repository.BookRepository
}

func NewAuthorService(repo repository.AuthorRepository, books repository.BookRepository) *AuthorService {
	return &AuthorService{repo: repo, books: books}
}

func (s *AuthorService) Create(ctx context.Context, author entity.Author) (entity.Author, error) {
	return s.repo.Create(ctx, author)
}

func (s *AuthorService) Get(ctx context.Context, id uuid.UUID) (entity.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AuthorService) Update(ctx context.Context, author entity.Author) (entity.Author, error) {
	return s.repo.Update(ctx, author)
}

func (s *AuthorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *AuthorService) List(ctx context.Context, params query.Params) (query.Page[entity.Author], error) {
	spec, err := query.Build(params, query.AuthorFields, query.AuthorDefaultSort)
	if err != nil {
		return query.Page[entity.Author]{}, err
	}
	return s.repo.List(ctx, spec)
}

// ListBooks lists the author's books, paginated like any other book listing.
func (s *AuthorService) ListBooks(ctx context.Context, authorID uuid.UUID, params query.Params) (query.Page[entity.Book], error) {
	if _, err := s.repo.GetByID(ctx, authorID); err != nil {
		return query.Page[entity.Book]{}, err
	}
	spec, err := query.Build(params, query.BookFields, query.BookDefaultSort)
	if err != nil {
		return query.Page[entity.Book]{}, err
	}
	return s.books.ListByAuthor(ctx, authorID, spec)
}
