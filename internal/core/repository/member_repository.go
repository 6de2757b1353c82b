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

type MemberRepository interface {
	Create(ctx context.Context, member entity.Member) (entity.Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.Member, error)
	Update(ctx context.Context, member entity.Member) (entity.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, spec query.Spec) (query.Page[entity.Member], error)
}

type memberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) MemberRepository {
	return &memberRepository{db: db}
}

var memberColumns = []string{"id", "name", "surname", "birthdate", "address", "phone_number", "email"}

func (r *memberRepository) Create(ctx context.Context, member entity.Member) (entity.Member, error) {
	member.ID = uuid.New()

	sqlStr, args, err := psql.Insert("members").
		Columns(memberColumns...).
		Values(member.ID, member.Name, member.Surname, member.Birthdate,
			member.Address, member.PhoneNumber, member.Email).
		ToSql()
	if err != nil {
		return entity.Member{}, fmt.Errorf("build insert query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return entity.Member{}, fmt.Errorf("create member: %w", err)
	}
	return member, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Member, error) {
	sqlStr, args, err := psql.Select(memberColumns...).
		From("members").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return entity.Member{}, fmt.Errorf("build select query: %w", err)
	}

	var member entity.Member
	if err := r.db.GetContext(ctx, &member, sqlStr, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Member{}, NotFoundError{Kind: "Member", ID: id}
		}
		return entity.Member{}, fmt.Errorf("get member: %w", err)
	}

	members := []entity.Member{member}
	if err := r.loadRentIDs(ctx, members); err != nil {
		return entity.Member{}, err
	}
	return members[0], nil
}

func (r *memberRepository) Update(ctx context.Context, member entity.Member) (entity.Member, error) {
	sqlStr, args, err := psql.Update("members").
		Set("name", member.Name).
		Set("surname", member.Surname).
		Set("birthdate", member.Birthdate).
		Set("address", member.Address).
		Set("phone_number", member.PhoneNumber).
		Set("email", member.Email).
		Where(sq.Eq{"id": member.ID}).
		ToSql()
	if err != nil {
		return entity.Member{}, fmt.Errorf("build update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return entity.Member{}, fmt.Errorf("update member: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.Member{}, NotFoundError{Kind: "Member", ID: member.ID}
	}
	return member, nil
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sqlStr, args, err := psql.Delete("members").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		// rents.member_id is ON DELETE RESTRICT.
		if isForeignKeyViolation(err) {
			return fmt.Errorf("member %s: %w", id, ErrDeleteRestricted)
		}
		return fmt.Errorf("delete member: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return NotFoundError{Kind: "Member", ID: id}
	}
	return nil
}

func (r *memberRepository) List(ctx context.Context, spec query.Spec) (query.Page[entity.Member], error) {
	defer observeDB("members.List", time.Now())

	countSQL, countArgs, err := spec.Filter(psql.Select("COUNT(*)").From("members")).ToSql()
	if err != nil {
		return query.Page[entity.Member]{}, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return query.Page[entity.Member]{}, fmt.Errorf("count members: %w", err)
	}

	listSQL, listArgs, err := spec.Apply(psql.Select(memberColumns...).From("members")).ToSql()
	if err != nil {
		return query.Page[entity.Member]{}, fmt.Errorf("build list query: %w", err)
	}

	var members []entity.Member
	if err := r.db.SelectContext(ctx, &members, listSQL, listArgs...); err != nil {
		return query.Page[entity.Member]{}, fmt.Errorf("list members: %w", err)
	}

	if err := r.loadRentIDs(ctx, members); err != nil {
		return query.Page[entity.Member]{}, err
	}
	return query.NewPage(members, total, spec.Page(), spec.PageSize()), nil
}

type memberRent struct {
	MemberID uuid.UUID `db:"member_id"`
	RentID   uuid.UUID `db:"id"`
}

// loadRentIDs fills RentIDs for every member in the slice with one query.
func (r *memberRepository) loadRentIDs(ctx context.Context, members []entity.Member) error {
	if len(members) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(members))
	index := make(map[uuid.UUID]*entity.Member, len(members))
	for i := range members {
		ids[i] = members[i].ID
		index[members[i].ID] = &members[i]
	}

	sqlStr, args, err := psql.Select("member_id", "id").
		From("rents").
		Where(sq.Eq{"member_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build rents select query: %w", err)
	}

	var rows []memberRent
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return fmt.Errorf("load member rents: %w", err)
	}
	for _, row := range rows {
		index[row.MemberID].RentIDs = append(index[row.MemberID].RentIDs, row.RentID)
	}
	return nil
}
