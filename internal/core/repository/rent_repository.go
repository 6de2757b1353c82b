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

type RentRepository interface {
	Create(ctx context.Context, rent entity.Rent) (entity.Rent, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.Rent, error)
	Update(ctx context.Context, rent entity.Rent) (entity.Rent, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, spec query.Spec) (query.Page[entity.Rent], error)
	ListByMember(ctx context.Context, memberID uuid.UUID, spec query.Spec) (query.Page[entity.Rent], error)
}

type rentRepository struct {
	db *sqlx.DB
}

func NewRentRepository(db *sqlx.DB) RentRepository {
	return &rentRepository{db: db}
}

var rentColumns = []string{"id", "rent_date", "planned_return_date", "return_date", "member_id", "employee_id"}

// Create resolves the member and employee strictly and the book id list
// leniently, then writes the rent and its rent_books rows in one
// transaction. A rent is never persisted with a dangling reference.
func (r *rentRepository) Create(ctx context.Context, rent entity.Rent) (entity.Rent, error) {
	defer observeDB("rents.Create", time.Now())

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Rent{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	bookIDs, err := r.resolveReferences(ctx, tx, rent)
	if err != nil {
		return entity.Rent{}, err
	}

	rent.ID = uuid.New()
	sqlStr, args, err := psql.Insert("rents").
		Columns(rentColumns...).
		Values(rent.ID, rent.RentDate, rent.PlannedReturnDate, rent.ReturnDate,
			rent.MemberID, rent.EmployeeID).
		ToSql()
	if err != nil {
		return entity.Rent{}, fmt.Errorf("build insert query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
		return entity.Rent{}, fmt.Errorf("create rent: %w", err)
	}

	if err := insertJoinRows(ctx, tx, "rent_books", "rent_id", "book_id", rent.ID, bookIDs); err != nil {
		return entity.Rent{}, err
	}

	if err := tx.Commit(); err != nil {
		return entity.Rent{}, fmt.Errorf("commit transaction: %w", err)
	}

	rent.BookIDs = bookIDs
	return rent, nil
}

func (r *rentRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Rent, error) {
	sqlStr, args, err := psql.Select(rentColumns...).
		From("rents").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return entity.Rent{}, fmt.Errorf("build select query: %w", err)
	}

	var rent entity.Rent
	if err := r.db.GetContext(ctx, &rent, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Rent{}, NotFoundError{Kind: "Rent", ID: id}
		}
		return entity.Rent{}, fmt.Errorf("get rent: %w", err)
	}

	rents := []entity.Rent{rent}
	if err := r.loadBookIDs(ctx, rents); err != nil {
		return entity.Rent{}, err
	}
	return rents[0], nil
}

// Update is full-replace, including the book relation set. Clearing
// ReturnDate reopens the loan.
func (r *rentRepository) Update(ctx context.Context, rent entity.Rent) (entity.Rent, error) {
	defer observeDB("rents.Update", time.Now())

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Rent{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	bookIDs, err := r.resolveReferences(ctx, tx, rent)
	if err != nil {
		return entity.Rent{}, err
	}

	sqlStr, args, err := psql.Update("rents").
		Set("rent_date", rent.RentDate).
		Set("planned_return_date", rent.PlannedReturnDate).
		Set("return_date", rent.ReturnDate).
		Set("member_id", rent.MemberID).
		Set("employee_id", rent.EmployeeID).
		Where(sq.Eq{"id": rent.ID}).
		ToSql()
	if err != nil {
		return entity.Rent{}, fmt.Errorf("build update query: %w", err)
	}
	res, err := tx.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return entity.Rent{}, fmt.Errorf("update rent: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.Rent{}, NotFoundError{Kind: "Rent", ID: rent.ID}
	}

	if err := replaceJoinRows(ctx, tx, "rent_books", "rent_id", "book_id", rent.ID, bookIDs); err != nil {
		return entity.Rent{}, err
	}

	if err := tx.Commit(); err != nil {
		return entity.Rent{}, fmt.Errorf("commit transaction: %w", err)
	}

	rent.BookIDs = bookIDs
	return rent, nil
}

// Delete is unconditional: an active loan may be deleted.
func (r *rentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := psql.Delete("rents").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("delete rent: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return NotFoundError{Kind: "Rent", ID: id}
	}
	return nil
}

func (r *rentRepository) List(ctx context.Context, spec query.Spec) (query.Page[entity.Rent], error) {
	return r.list(ctx, spec, "rents.List", nil)
}

func (r *rentRepository) ListByMember(ctx context.Context, memberID uuid.UUID, spec query.Spec) (query.Page[entity.Rent], error) {
	return r.list(ctx, spec, "rents.ListByMember", func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"member_id": memberID})
	})
}

func (r *rentRepository) list(ctx context.Context, spec query.Spec, method string, scope func(sq.SelectBuilder) sq.SelectBuilder) (query.Page[entity.Rent], error) {
	defer observeDB(method, time.Now())

	countBase := psql.Select("COUNT(*)").From("rents")
	listBase := psql.Select(rentColumns...).From("rents")
	if scope != nil {
		countBase = scope(countBase)
		listBase = scope(listBase)
	}

	countSQL, countArgs, err := spec.Filter(countBase).ToSql()
	if err != nil {
		return query.Page[entity.Rent]{}, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return query.Page[entity.Rent]{}, fmt.Errorf("count rents: %w", err)
	}

	listSQL, listArgs, err := spec.Apply(listBase).ToSql()
	if err != nil {
		return query.Page[entity.Rent]{}, fmt.Errorf("build list query: %w", err)
	}
	var rents []entity.Rent
	if err := r.db.SelectContext(ctx, &rents, listSQL, listArgs...); err != nil {
		return query.Page[entity.Rent]{}, fmt.Errorf("list rents: %w", err)
	}

	if err := r.loadBookIDs(ctx, rents); err != nil {
		return query.Page[entity.Rent]{}, err
	}
	return query.NewPage(rents, total, spec.Page(), spec.PageSize()), nil
}

func (r *rentRepository) resolveReferences(ctx context.Context, tx *sqlx.Tx, rent entity.Rent) ([]uuid.UUID, error) {
	if err := resolveRef(ctx, tx, "members", "Member", rent.MemberID); err != nil {
		return nil, err
	}
	if err := resolveRef(ctx, tx, "employees", "Employee", rent.EmployeeID); err != nil {
		return nil, err
	}
	// An empty resolved set is allowed; a loan referencing zero books is
	// unusual but not rejected.
	return resolveRefs(ctx, tx, "books", rent.BookIDs)
}

type rentBook struct {
	RentID uuid.UUID `db:"rent_id"`
	BookID uuid.UUID `db:"book_id"`
}

func (r *rentRepository) loadBookIDs(ctx context.Context, rents []entity.Rent) error {
	if len(rents) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(rents))
	index := make(map[uuid.UUID]*entity.Rent, len(rents))
	for i := range rents {
		ids[i] = rents[i].ID
		index[rents[i].ID] = &rents[i]
	}

	sqlStr, args, err := psql.Select("rent_id", "book_id").
		From("rent_books").
		Where(sq.Eq{"rent_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build rent_books select query: %w", err)
	}

	var rows []rentBook
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return fmt.Errorf("load rent books: %w", err)
	}
	for _, row := range rows {
		index[row.RentID].BookIDs = append(index[row.RentID].BookIDs, row.BookID)
	}
	return nil
}
