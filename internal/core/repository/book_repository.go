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

type BookRepository interface {
	Create(ctx context.Context, book entity.Book) (entity.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.Book, error)
	Update(ctx context.Context, book entity.Book) (entity.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, spec query.Spec) (query.Page[entity.Book], error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, spec query.Spec) (query.Page[entity.Book], error)
	ListByGenre(ctx context.Context, genreID uuid.UUID, spec query.Spec) (query.Page[entity.Book], error)
	ListByPublishingHouse(ctx context.Context, houseID uuid.UUID, spec query.Spec) (query.Page[entity.Book], error)
}

type bookRepository struct {
	db *sqlx.DB
}

func NewBookRepository(db *sqlx.DB) BookRepository {
	return &bookRepository{db: db}
}

var bookColumns = []string{"id", "title", "description", "release_date", "isbn", "publishing_house_id"}

// Create resolves the publishing house strictly and the author/genre id lists
// leniently, then writes the book and its join rows in one transaction.
func (r *bookRepository) Create(ctx context.Context, book entity.Book) (entity.Book, error) {
	defer observeDB("books.Create", time.Now())

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Book{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := resolveRef(ctx, tx, "publishing_houses", "PublishingHouse", book.PublishingHouseID); err != nil {
		return entity.Book{}, err
	}
	authorIDs, err := resolveRefs(ctx, tx, "authors", book.AuthorIDs)
	if err != nil {
		return entity.Book{}, err
	}
	genreIDs, err := resolveRefs(ctx, tx, "genres", book.GenreIDs)
	if err != nil {
		return entity.Book{}, err
	}

	book.ID = uuid.New()
	sqlStr, args, err := psql.Insert("books").
		Columns(bookColumns...).
		Values(book.ID, book.Title, book.Description, book.ReleaseDate, book.ISBN, book.PublishingHouseID).
		ToSql()
	if err != nil {
		return entity.Book{}, fmt.Errorf("build insert query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
		return entity.Book{}, fmt.Errorf("create book: %w", err)
	}

	if err := insertJoinRows(ctx, tx, "book_authors", "book_id", "author_id", book.ID, authorIDs); err != nil {
		return entity.Book{}, err
	}
	if err := insertJoinRows(ctx, tx, "book_genres", "book_id", "genre_id", book.ID, genreIDs); err != nil {
		return entity.Book{}, err
	}

	if err := tx.Commit(); err != nil {
		return entity.Book{}, fmt.Errorf("commit transaction: %w", err)
	}

	book.AuthorIDs = authorIDs
	book.GenreIDs = genreIDs
	return book, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Book, error) {
	sqlStr, args, err := psql.Select(bookColumns...).
		From("books").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return entity.Book{}, fmt.Errorf("build select query: %w", err)
	}

	var book entity.Book
	if err := r.db.GetContext(ctx, &book, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Book{}, NotFoundError{Kind: "Book", ID: id}
		}
		return entity.Book{}, fmt.Errorf("get book: %w", err)
	}

	books := []entity.Book{book}
	if err := r.loadRelations(ctx, books); err != nil {
		return entity.Book{}, err
	}
	return books[0], nil
}

// Update is full-replace: the row and both relation sets are rewritten from
// the payload inside one transaction.
func (r *bookRepository) Update(ctx context.Context, book entity.Book) (entity.Book, error) {
	defer observeDB("books.Update", time.Now())

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Book{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := resolveRef(ctx, tx, "publishing_houses", "PublishingHouse", book.PublishingHouseID); err != nil {
		return entity.Book{}, err
	}
	authorIDs, err := resolveRefs(ctx, tx, "authors", book.AuthorIDs)
	if err != nil {
		return entity.Book{}, err
	}
	genreIDs, err := resolveRefs(ctx, tx, "genres", book.GenreIDs)
	if err != nil {
		return entity.Book{}, err
	}

	sqlStr, args, err := psql.Update("books").
		Set("title", book.Title).
		Set("description", book.Description).
		Set("release_date", book.ReleaseDate).
		Set("isbn", book.ISBN).
		Set("publishing_house_id", book.PublishingHouseID).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return entity.Book{}, fmt.Errorf("build update query: %w", err)
	}
	res, err := tx.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return entity.Book{}, fmt.Errorf("update book: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.Book{}, NotFoundError{Kind: "Book", ID: book.ID}
	}

	if err := replaceJoinRows(ctx, tx, "book_authors", "book_id", "author_id", book.ID, authorIDs); err != nil {
		return entity.Book{}, err
	}
	if err := replaceJoinRows(ctx, tx, "book_genres", "book_id", "genre_id", book.ID, genreIDs); err != nil {
		return entity.Book{}, err
	}

	if err := tx.Commit(); err != nil {
		return entity.Book{}, fmt.Errorf("commit transaction: %w", err)
	}

	book.AuthorIDs = authorIDs
	book.GenreIDs = genreIDs
	return book, nil
}

func (r *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// book_authors, book_genres and rent_books rows cascade, so an existing
	// rent keeps its remaining relation set intact.
	sqlStr, args, err := psql.Delete("books").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return NotFoundError{Kind: "Book", ID: id}
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context, spec query.Spec) (query.Page[entity.Book], error) {
	return r.list(ctx, spec, "books.List", nil)
}

func (r *bookRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, spec query.Spec) (query.Page[entity.Book], error) {
	return r.list(ctx, spec, "books.ListByAuthor", func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Join("book_authors ba ON ba.book_id = books.id").Where(sq.Eq{"ba.author_id": authorID})
	})
}

func (r *bookRepository) ListByGenre(ctx context.Context, genreID uuid.UUID, spec query.Spec) (query.Page[entity.Book], error) {
	return r.list(ctx, spec, "books.ListByGenre", func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Join("book_genres bg ON bg.book_id = books.id").Where(sq.Eq{"bg.genre_id": genreID})
	})
}

func (r *bookRepository) ListByPublishingHouse(ctx context.Context, houseID uuid.UUID, spec query.Spec) (query.Page[entity.Book], error) {
	return r.list(ctx, spec, "books.ListByPublishingHouse", func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"publishing_house_id": houseID})
	})
}

func (r *bookRepository) list(ctx context.Context, spec query.Spec, method string, scope func(sq.SelectBuilder) sq.SelectBuilder) (query.Page[entity.Book], error) {
	defer observeDB(method, time.Now())

	countBase := psql.Select("COUNT(*)").From("books")
	listBase := psql.Select(bookColumns...).From("books")
	if scope != nil {
		countBase = scope(countBase)
		listBase = scope(listBase)
	}

	countSQL, countArgs, err := spec.Filter(countBase).ToSql()
	if err != nil {
		return query.Page[entity.Book]{}, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return query.Page[entity.Book]{}, fmt.Errorf("count books: %w", err)
	}

	listSQL, listArgs, err := spec.Apply(listBase).ToSql()
	if err != nil {
		return query.Page[entity.Book]{}, fmt.Errorf("build list query: %w", err)
	}
	var books []entity.Book
	if err := r.db.SelectContext(ctx, &books, listSQL, listArgs...); err != nil {
		return query.Page[entity.Book]{}, fmt.Errorf("list books: %w", err)
	}

	if err := r.loadRelations(ctx, books); err != nil {
		return query.Page[entity.Book]{}, err
	}
	return query.NewPage(books, total, spec.Page(), spec.PageSize()), nil
}

type joinRow struct {
	BookID uuid.UUID `db:"book_id"`
	RefID  uuid.UUID `db:"ref_id"`
}

// loadRelations fills AuthorIDs and GenreIDs for every book in the slice with
// one query per join table.
func (r *bookRepository) loadRelations(ctx context.Context, books []entity.Book) error {
	if len(books) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(books))
	index := make(map[uuid.UUID]*entity.Book, len(books))
	for i := range books {
		ids[i] = books[i].ID
		index[books[i].ID] = &books[i]
	}

	authors, err := selectJoinRows(ctx, r.db, "book_authors", "book_id", "author_id", ids)
	if err != nil {
		return err
	}
	for _, row := range authors {
		index[row.BookID].AuthorIDs = append(index[row.BookID].AuthorIDs, row.RefID)
	}

	genres, err := selectJoinRows(ctx, r.db, "book_genres", "book_id", "genre_id", ids)
	if err != nil {
		return err
	}
	for _, row := range genres {
		index[row.BookID].GenreIDs = append(index[row.BookID].GenreIDs, row.RefID)
	}
	return nil
}

func selectJoinRows(ctx context.Context, q sqlx.ExtContext, table, ownerCol, refCol string, ownerIDs []uuid.UUID) ([]joinRow, error) {
	sqlStr, args, err := psql.Select(ownerCol+" AS book_id", refCol+" AS ref_id").
		From(table).
		Where(sq.Eq{ownerCol: ownerIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build join select query: %w", err)
	}

	var rows []joinRow
	if err := sqlx.SelectContext(ctx, q, &rows, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	return rows, nil
}

func insertJoinRows(ctx context.Context, q sqlx.ExtContext, table, ownerCol, refCol string, ownerID uuid.UUID, refIDs []uuid.UUID) error {
	if len(refIDs) == 0 {
		return nil
	}

	builder := psql.Insert(table).Columns(ownerCol, refCol)
	for _, refID := range refIDs {
		builder = builder.Values(ownerID, refID)
	}
	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build join insert query: %w", err)
	}
	if _, err := q.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func replaceJoinRows(ctx context.Context, q sqlx.ExtContext, table, ownerCol, refCol string, ownerID uuid.UUID, refIDs []uuid.UUID) error {
	sqlStr, args, err := psql.Delete(table).Where(sq.Eq{ownerCol: ownerID}).ToSql()
	if err != nil {
		return fmt.Errorf("build join delete query: %w", err)
	}
	if _, err := q.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	return insertJoinRows(ctx, q, table, ownerCol, refCol, ownerID, refIDs)
}
