package controller

import (
	"net/http"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

// PublishingHouseController works against the PublishingHouseServicer
// interface, so reads may come through the caching proxy.
type PublishingHouseController struct {
	houses    service.PublishingHouseServicer
	responder responder.Responder
}

func NewPublishingHouseController(houses service.PublishingHouseServicer, responder responder.Responder) *PublishingHouseController {
	return &PublishingHouseController{houses: houses, responder: responder}
}

// ListPublishingHouses returns one page of publishers. Default sort field:
// Name.
func (c *PublishingHouseController) ListPublishingHouses(w http.ResponseWriter, r *http.Request) {
	page, err := c.houses.List(r.Context(), parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

// ListPublishingHouseBooks returns one page of the publisher's books.
func (c *PublishingHouseController) ListPublishingHouseBooks(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid publishing house ID")
		return
	}

	page, err := c.houses.ListBooks(r.Context(), id, parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

func (c *PublishingHouseController) CreatePublishingHouse(w http.ResponseWriter, r *http.Request) {
	var house entity.PublishingHouse
	if err := c.responder.Decode(r, &house); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := c.houses.Create(r.Context(), house)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusCreated, created)
}

func (c *PublishingHouseController) GetPublishingHouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid publishing house ID")
		return
	}

	house, err := c.houses.Get(r.Context(), id)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, house)
}

func (c *PublishingHouseController) UpdatePublishingHouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid publishing house ID")
		return
	}

	var house entity.PublishingHouse
	if err := c.responder.Decode(r, &house); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	house.ID = id

	updated, err := c.houses.Update(r.Context(), house)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, updated)
}

func (c *PublishingHouseController) DeletePublishingHouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid publishing house ID")
		return
	}

	if err := c.houses.Delete(r.Context(), id); err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusNoContent, nil)
}
