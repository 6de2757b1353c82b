// Package query turns untrusted list parameters into validated, typed query
// specifications and slices the resulting collections into pages.
package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// ErrInvalidSortField is returned when the requested sort field is not in the
// entity's allowed set. No query is executed in that case.
var ErrInvalidSortField = errors.New("invalid sort field")

// FieldKind controls which filter a field accepts: text fields take the
// substring search, date fields take the date range, numeric fields are
// sortable only.
type FieldKind int

const (
	Text FieldKind = iota
	Date
	Numeric
)

// Field maps an exposed sort field name to its database column.
type Field struct {
	Column string
	Kind   FieldKind
}

// Fields is the closed set of sortable/filterable field names for one entity.
type Fields map[string]Field

// Params is the raw list input as supplied by the caller.
type Params struct {
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
	SortBy    string
	Ascending bool
}

// Spec is a validated query specification for one entity kind. Filtering is
// deliberately coupled to the sort field: the search string and the date
// range apply to the column currently being sorted by.
type Spec struct {
	field  Field
	params Params
}

// Build validates params against the allowed field set. An empty SortBy falls
// back to defaultSort; a SortBy outside the set fails with
// ErrInvalidSortField. Page and PageSize are floored to 1.
func Build(params Params, allowed Fields, defaultSort string) (Spec, error) {
	if params.SortBy == "" {
		params.SortBy = defaultSort
	}
	field, ok := allowed[params.SortBy]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSortField, params.SortBy)
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 1
	}
	return Spec{field: field, params: params}, nil
}

// likeEscaper neutralizes LIKE metacharacters so the search string always
// matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Filter adds the specification's WHERE clauses to b. The substring filter is
// case-insensitive (ILIKE); the original system compared under a
// case-insensitive collation. The date range uses exclusive bounds and is
// applied only when both bounds are present.
func (s Spec) Filter(b sq.SelectBuilder) sq.SelectBuilder {
	switch s.field.Kind {
	case Text:
		if s.params.Search != "" {
			pattern := "%" + likeEscaper.Replace(s.params.Search) + "%"
			b = b.Where(sq.Expr(s.field.Column+` ILIKE ? ESCAPE '\'`, pattern))
		}
	case Date:
		if s.params.StartDate != nil && s.params.EndDate != nil {
			b = b.Where(sq.Gt{s.field.Column: *s.params.StartDate}).
				Where(sq.Lt{s.field.Column: *s.params.EndDate})
		}
	}
	return b
}

// Apply adds filtering, ordering and the page window to b.
func (s Spec) Apply(b sq.SelectBuilder) sq.SelectBuilder {
	direction := " ASC"
	if !s.params.Ascending {
		direction = " DESC"
	}
	return s.Filter(b).
		OrderBy(s.field.Column + direction).
		Limit(uint64(s.params.PageSize)).
		Offset(uint64((s.params.Page - 1) * s.params.PageSize))
}

// Page returns the validated 1-based page number.
func (s Spec) Page() int { return s.params.Page }

// PageSize returns the validated page size.
func (s Spec) PageSize() int { return s.params.PageSize }
