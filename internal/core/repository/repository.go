// Package repository implements Postgres persistence for the catalog, patron
// and loan records. All SQL is built with squirrel and executed through sqlx.
package repository

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Wiktor-Wewe/psi-projekt/internal/infrastructure/metrics"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func observeDB(method string, start time.Time) {
	metrics.ObserveDBRequest(method, time.Since(start))
}
