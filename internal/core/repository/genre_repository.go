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

type GenreRepository interface {
	Create(ctx context.Context, genre entity.Genre) (entity.Genre, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.Genre, error)
	Update(ctx context.Context, genre entity.Genre) (entity.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, spec query.Spec) (query.Page[entity.Genre], error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]entity.Genre, error)
}

type genreRepository struct {
	db *sqlx.DB
}

func NewGenreRepository(db *sqlx.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(ctx context.Context, genre entity.Genre) (entity.Genre, error) {
	genre.ID = uuid.New()

	sqlStr, args, err := psql.Insert("genres").
		Columns("id", "name", "description").
		Values(genre.ID, genre.Name, genre.Description).
		ToSql()
	if err != nil {
		return entity.Genre{}, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return entity.Genre{}, fmt.Errorf("create genre: %w", err)
	}
	return genre, nil
}

func (r *genreRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Genre, error) {
	sqlStr, args, err := psql.Select("id", "name", "description").
		From("genres").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return entity.Genre{}, fmt.Errorf("build select query: %w", err)
	}

	var genre entity.Genre
	if err := r.db.GetContext(ctx, &genre, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Genre{}, NotFoundError{Kind: "Genre", ID: id}
		}
		return entity.Genre{}, fmt.Errorf("get genre: %w", err)
	}
	return genre, nil
}

func (r *genreRepository) Update(ctx context.Context, genre entity.Genre) (entity.Genre, error) {
	sqlStr, args, err := psql.Update("genres").
		Set("name", genre.Name).
		Set("description", genre.Description).
		Where(sq.Eq{"id": genre.ID}).
		ToSql()
	if err != nil {
		return entity.Genre{}, fmt.Errorf("build update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return entity.Genre{}, fmt.Errorf("update genre: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.Genre{}, NotFoundError{Kind: "Genre", ID: genre.ID}
	}
	return genre, nil
}

func (r *genreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := psql.Delete("genres").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return NotFoundError{Kind: "Genre", ID: id}
	}
	return nil
}

func (r *genreRepository) List(ctx context.Context, spec query.Spec) (query.Page[entity.Genre], error) {
	defer observeDB("genres.List", time.Now())

	countSQL, countArgs, err := spec.Filter(psql.Select("COUNT(*)").From("genres")).ToSql()
	if err != nil {
		return query.Page[entity.Genre]{}, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return query.Page[entity.Genre]{}, fmt.Errorf("count genres: %w", err)
	}

	listSQL, listArgs, err := spec.Apply(psql.Select("id", "name", "description").From("genres")).ToSql()
	if err != nil {
		return query.Page[entity.Genre]{}, fmt.Errorf("build list query: %w", err)
	}

	var genres []entity.Genre
	if err := r.db.SelectContext(ctx, &genres, listSQL, listArgs...); err != nil {
		return query.Page[entity.Genre]{}, fmt.Errorf("list genres: %w", err)
	}
	return query.NewPage(genres, total, spec.Page(), spec.PageSize()), nil
}

func (r *genreRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]entity.Genre, error) {
	sqlStr, args, err := psql.Select("g.id", "g.name", "g.description").
		From("genres g").
		Join("book_genres bg ON bg.genre_id = g.id").
		Where(sq.Eq{"bg.book_id": bookID}).
		OrderBy("g.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var genres []entity.Genre
	if err := r.db.SelectContext(ctx, &genres, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("list book genres: %w", err)
	}
	return genres, nil
}
