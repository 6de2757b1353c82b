package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
)

type AuthorRepository interface {
	Create(ctx context.Context, author entity.Author) (entity.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.Author, error)
	Update(ctx context.Context, author entity.Author) (entity.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, spec query.Spec) (query.Page[entity.Author], error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]entity.Author, error)
}

type authorRepository struct {
	db *sqlx.DB
}

func NewAuthorRepository(db *sqlx.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, author entity.Author) (entity.Author, error) {
	author.ID = uuid.New()

	sqlStr, args, err := psql.Insert("authors").
		Columns("id", "name", "surname").
		Values(author.ID, author.Name, author.Surname).
		ToSql()
	if err != nil {
		return entity.Author{}, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return entity.Author{}, fmt.Errorf("create author: %w", err)
	}
	return author, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Author, error) {
	sqlStr, args, err := psql.Select("id", "name", "surname").
		From("authors").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return entity.Author{}, fmt.Errorf("build select query: %w", err)
	}

	var author entity.Author
	if err := r.db.GetContext(ctx, &author, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Author{}, NotFoundError{Kind: "Author", ID: id}
		}
		return entity.Author{}, fmt.Errorf("get author: %w", err)
	}
	return author, nil
}

func (r *authorRepository) Update(ctx context.Context, author entity.Author) (entity.Author, error) {
	sqlStr, args, err := psql.Update("authors").
		Set("name", author.Name).
		Set("surname", author.Surname).
		Where(sq.Eq{"id": author.ID}).
		ToSql()
	if err != nil {
		return entity.Author{}, fmt.Errorf("build update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return entity.Author{}, fmt.Errorf("update author: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.Author{}, NotFoundError{Kind: "Author", ID: author.ID}
	}
	return author, nil
}

func (r *authorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Join rows in book_authors cascade; books themselves are untouched.
	sqlStr, args, err := psql.Delete("authors").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return NotFoundError{Kind: "Author", ID: id}
	}
	return nil
}

func (r *authorRepository) List(ctx context.Context, spec query.Spec) (query.Page[entity.Author], error) {
	defer observeDB("authors.List", time.Now())

	countSQL, countArgs, err := spec.Filter(psql.Select("COUNT(*)").From("authors")).ToSql()
	if err != nil {
		return query.Page[entity.Author]{}, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return query.Page[entity.Author]{}, fmt.Errorf("count authors: %w", err)
	}

	listSQL, listArgs, err := spec.Apply(psql.Select("id", "name", "surname").From("authors")).ToSql()
	if err != nil {
		return query.Page[entity.Author]{}, fmt.Errorf("build list query: %w", err)
	}

	var authors []entity.Author
	if err := r.db.SelectContext(ctx, &authors, listSQL, listArgs...); err != nil {
		return query.Page[entity.Author]{}, fmt.Errorf("list authors: %w", err)
	}
	return query.NewPage(authors, total, spec.Page(), spec.PageSize()), nil
}

func (r *authorRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]entity.Author, error) {
	sqlStr, args, err := psql.Select("a.id", "a.name", "a.surname").
		From("authors a").
		Join("book_authors ba ON ba.author_id = a.id").
		Where(sq.Eq{"ba.book_id": bookID}).
		OrderBy("a.surname ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var authors []entity.Author
	if err := r.db.SelectContext(ctx, &authors, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("list book authors: %w", err)
	}
	return authors, nil
}
