package controller

import (
	"net/http"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

type MemberController struct {
	members   *service.MemberService
	responder responder.Responder
}

func NewMemberController(members *service.MemberService, responder responder.Responder) *MemberController {
	return &MemberController{members: members, responder: responder}
}

// ListMembers returns one page of members. Default sort field: Surname; sort
// field Birthdate takes the startDate/endDate range instead of searchString.
func (c *MemberController) ListMembers(w http.ResponseWriter, r *http.Request) {
	page, err := c.members.List(r.Context(), parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

// ListMemberRents returns one page of the member's loans. Default sort
// field: RentDate.
func (c *MemberController) ListMemberRents(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	page, err := c.members.ListRents(r.Context(), id, parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

func (c *MemberController) CreateMember(w http.ResponseWriter, r *http.Request) {
	var member entity.Member
	if err := c.responder.Decode(r, &member); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := c.members.Create(r.Context(), member)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusCreated, created)
}

func (c *MemberController) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	member, err := c.members.Get(r.Context(), id)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, member)
}

func (c *MemberController) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	var member entity.Member
	if err := c.responder.Decode(r, &member); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	member.ID = id

	updated, err := c.members.Update(r.Context(), member)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, updated)
}

func (c *MemberController) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid member ID")
		return
	}

	if err := c.members.Delete(r.Context(), id); err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusNoContent, nil)
}
