package controller

import (
	"net/http"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

type RentController struct {
	rents     *service.RentService
	responder responder.Responder
}

func NewRentController(rents *service.RentService, responder responder.Responder) *RentController {
	return &RentController{rents: rents, responder: responder}
}

// ListRents returns one page of loans. Default sort field: RentDate; both
// sort fields are dates, so filtering uses the startDate/endDate range.
func (c *RentController) ListRents(w http.ResponseWriter, r *http.Request) {
	page, err := c.rents.List(r.Context(), parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

// CreateRent persists a loan after its member, employee and book references
// resolve. A missing member or employee fails the request; unresolved book
// ids are dropped.
func (c *RentController) CreateRent(w http.ResponseWriter, r *http.Request) {
	var rent entity.Rent
	if err := c.responder.Decode(r, &rent); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := c.rents.Create(r.Context(), rent)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusCreated, created)
}

func (c *RentController) GetRent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid rent ID")
		return
	}

	rent, err := c.rents.Get(r.Context(), id)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, rent)
}

func (c *RentController) UpdateRent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid rent ID")
		return
	}

	var rent entity.Rent
	if err := c.responder.Decode(r, &rent); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	rent.ID = id

	updated, err := c.rents.Update(r.Context(), rent)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, updated)
}

func (c *RentController) DeleteRent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid rent ID")
		return
	}

	if err := c.rents.Delete(r.Context(), id); err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusNoContent, nil)
}
