package controller

import (
	"net/http"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

type GenreController struct {
	genres    *service.GenreService
	responder responder.Responder
}

func NewGenreController(genres *service.GenreService, responder responder.Responder) *GenreController {
	return &GenreController{genres: genres, responder: responder}
}

// ListGenres returns one page of genres. Default sort field: Name.
func (c *GenreController) ListGenres(w http.ResponseWriter, r *http.Request) {
	page, err := c.genres.List(r.Context(), parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

// ListGenreBooks returns one page of the genre's books.
func (c *GenreController) ListGenreBooks(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid genre ID")
		return
	}

	page, err := c.genres.ListBooks(r.Context(), id, parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

func (c *GenreController) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var genre entity.Genre
	if err := c.responder.Decode(r, &genre); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := c.genres.Create(r.Context(), genre)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusCreated, created)
}

func (c *GenreController) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid genre ID")
		return
	}

	genre, err := c.genres.Get(r.Context(), id)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, genre)
}

func (c *GenreController) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid genre ID")
		return
	}

	var genre entity.Genre
	if err := c.responder.Decode(r, &genre); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	genre.ID = id

	updated, err := c.genres.Update(r.Context(), genre)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, updated)
}

func (c *GenreController) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid genre ID")
		return
	}

	if err := c.genres.Delete(r.Context(), id); err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusNoContent, nil)
}
