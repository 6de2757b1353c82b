package controller

import (
	"net/http"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

type AuthorController struct {
	authors   *service.AuthorService
	responder responder.Responder
}

func NewAuthorController(authors *service.AuthorService, responder responder.Responder) *AuthorController {
	return &AuthorController{authors: authors, responder: responder}
}

// ListAuthors returns one page of authors. Default sort field: Surname.
func (c *AuthorController) ListAuthors(w http.ResponseWriter, r *http.Request) {
	page, err := c.authors.List(r.Context(), parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

// ListAuthorBooks returns one page of the author's books. Default sort
// field: Title.
func (c *AuthorController) ListAuthorBooks(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid author ID")
		return
	}

	page, err := c.authors.ListBooks(r.Context(), id, parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

func (c *AuthorController) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var author entity.Author
	if err := c.responder.Decode(r, &author); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := c.authors.Create(r.Context(), author)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusCreated, created)
}

func (c *AuthorController) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid author ID")
		return
	}

	author, err := c.authors.Get(r.Context(), id)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, author)
}

func (c *AuthorController) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid author ID")
		return
	}

	var author entity.Author
	if err := c.responder.Decode(r, &author); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	author.ID = id

	updated, err := c.authors.Update(r.Context(), author)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, updated)
}

func (c *AuthorController) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid author ID")
		return
	}

	if err := c.authors.Delete(r.Context(), id); err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusNoContent, nil)
}
