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

type PublishingHouseRepository interface {
	Create(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.PublishingHouse, error)
	Update(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, spec query.Spec) (query.Page[entity.PublishingHouse], error)
}

type publishingHouseRepository struct {
	db *sqlx.DB
}

func NewPublishingHouseRepository(db *sqlx.DB) PublishingHouseRepository {
	return &publishingHouseRepository{db: db}
}

func (r *publishingHouseRepository) Create(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error) {
	house.ID = uuid.New()

	sqlStr, args, err := psql.Insert("publishing_houses").
		Columns("id", "name", "foundation_year", "address", "website").
		Values(house.ID, house.Name, house.FoundationYear, house.Address, house.Website).
		ToSql()
	if err != nil {
		return entity.PublishingHouse{}, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return entity.PublishingHouse{}, fmt.Errorf("create publishing house: %w", err)
	}
	return house, nil
}

func (r *publishingHouseRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.PublishingHouse, error) {
	sqlStr, args, err := psql.Select("id", "name", "foundation_year", "address", "website").
		From("publishing_houses").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return entity.PublishingHouse{}, fmt.Errorf("build select query: %w", err)
	}

	var house entity.PublishingHouse
	if err := r.db.GetContext(ctx, &house, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.PublishingHouse{}, NotFoundError{Kind: "PublishingHouse", ID: id}
		}
		return entity.PublishingHouse{}, fmt.Errorf("get publishing house: %w", err)
	}
	return house, nil
}

func (r *publishingHouseRepository) Update(ctx context.Context, house entity.PublishingHouse) (entity.PublishingHouse, error) {
	sqlStr, args, err := psql.Update("publishing_houses").
		Set("name", house.Name).
		Set("foundation_year", house.FoundationYear).
		Set("address", house.Address).
		Set("website", house.Website).
		Where(sq.Eq{"id": house.ID}).
		ToSql()
	if err != nil {
		return entity.PublishingHouse{}, fmt.Errorf("build update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return entity.PublishingHouse{}, fmt.Errorf("update publishing house: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.PublishingHouse{}, NotFoundError{Kind: "PublishingHouse", ID: house.ID}
	}
	return house, nil
}

func (r *publishingHouseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := psql.Delete("publishing_houses").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		// books.publishing_house_id is ON DELETE RESTRICT.
		if isForeignKeyViolation(err) {
			return fmt.Errorf("publishing house %s: %w", id, ErrDeleteRestricted)
		}
		return fmt.Errorf("delete publishing house: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return NotFoundError{Kind: "PublishingHouse", ID: id}
	}
	return nil
}

func (r *publishingHouseRepository) List(ctx context.Context, spec query.Spec) (query.Page[entity.PublishingHouse], error) {
	defer observeDB("publishing_houses.List", time.Now())

	countSQL, countArgs, err := spec.Filter(psql.Select("COUNT(*)").From("publishing_houses")).ToSql()
	if err != nil {
		return query.Page[entity.PublishingHouse]{}, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return query.Page[entity.PublishingHouse]{}, fmt.Errorf("count publishing houses: %w", err)
	}

	listSQL, listArgs, err := spec.Apply(
		psql.Select("id", "name", "foundation_year", "address", "website").From("publishing_houses"),
	).ToSql()
	if err != nil {
		return query.Page[entity.PublishingHouse]{}, fmt.Errorf("build list query: %w", err)
	}

	var houses []entity.PublishingHouse
	if err := r.db.SelectContext(ctx, &houses, listSQL, listArgs...); err != nil {
		return query.Page[entity.PublishingHouse]{}, fmt.Errorf("list publishing houses: %w", err)
	}
	return query.NewPage(houses, total, spec.Page(), spec.PageSize()), nil
}
