// Package controller contains the chi HTTP handlers. Handlers decode input,
// call a service and write the result through the responder; all domain
// decisions live below them.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/repository"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

const dateLayout = "2006-01-02"

// parseListParams reads the shared listing parameters. Defaults: page 1,
// pageSize 10, ascending. SortBy is left empty here; each service fills in
// its entity's default.
func parseListParams(r *http.Request) query.Params {
	q := r.URL.Query()

	params := query.Params{
		Search:    q.Get("searchString"),
		SortBy:    q.Get("sortBy"),
		Page:      1,
		PageSize:  10,
		Ascending: true,
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = page
	}
	if size, err := strconv.Atoi(q.Get("pageSize")); err == nil {
		params.PageSize = size
	}
	if asc, err := strconv.ParseBool(q.Get("ascending")); err == nil {
		params.Ascending = asc
	}
	if t, err := time.Parse(dateLayout, q.Get("startDate")); err == nil {
		params.StartDate = &t
	}
	if t, err := time.Parse(dateLayout, q.Get("endDate")); err == nil {
		params.EndDate = &t
	}
	return params
}

func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// respondError maps domain errors to HTTP statuses.
func respondError(rsp responder.Responder, w http.ResponseWriter, err error) {
	var refErr repository.ReferenceNotFoundError
	switch {
	case errors.Is(err, query.ErrInvalidSortField):
		rsp.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &refErr), errors.Is(err, repository.ErrNotFound):
		rsp.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrDeleteRestricted),
		errors.Is(err, service.ErrConstraintViolation):
		rsp.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		rsp.Error(w, http.StatusUnauthorized, err.Error())
	default:
		rsp.Error(w, http.StatusInternalServerError, err.Error())
	}
}
