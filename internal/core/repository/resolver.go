package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// The resolver translates caller-supplied identifiers into live records
// before a write. It runs on sqlx.ExtContext so that it joins the caller's
// transaction: resolution and the subsequent write are one atomic unit, and a
// concurrent delete of a referenced record either blocks or fails the write
// instead of persisting a dangling reference.

// resolveRef checks that a required singular reference exists. A miss fails
// the whole mutation with ReferenceNotFoundError.
func resolveRef(ctx context.Context, q sqlx.ExtContext, table, kind string, id uuid.UUID) error {
	sqlStr, args, err := psql.Select("COUNT(*)").From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build resolve query: %w", err)
	}

	var n int
	if err := sqlx.GetContext(ctx, q, &n, sqlStr, args...); err != nil {
		return fmt.Errorf("resolve %s reference: %w", kind, err)
	}
	if n == 0 {
		return ReferenceNotFoundError{Kind: kind, ID: id}
	}
	return nil
}

// resolveRefs resolves a collection reference to the subset of ids that
// exist. Unresolved ids are dropped, not reported: collection references are
// deliberately lenient where singular ones are strict.
func resolveRefs(ctx context.Context, q sqlx.ExtContext, table string, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sqlStr, args, err := psql.Select("id").From(table).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve query: %w", err)
	}

	var found []uuid.UUID
	if err := sqlx.SelectContext(ctx, q, &found, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("resolve %s references: %w", table, err)
	}
	return found, nil
}
