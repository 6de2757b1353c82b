package controller

import (
	"net/http"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

// BookController takes the PublishingHouseServicer interface for the
// publisher sub-resource, so that read goes through the caching proxy too.
type BookController struct {
	books     *service.BookService
	houses    service.PublishingHouseServicer
	responder responder.Responder
}

func NewBookController(books *service.BookService, houses service.PublishingHouseServicer, responder responder.Responder) *BookController {
	return &BookController{books: books, houses: houses, responder: responder}
}

// ListBooks returns one page of books. Default sort field: Title; sort field
// RelaseDate takes the startDate/endDate range instead of searchString.
func (c *BookController) ListBooks(w http.ResponseWriter, r *http.Request) {
	page, err := c.books.List(r.Context(), parseListParams(r))
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, page)
}

// ListBookAuthors returns the book's authors as full records.
func (c *BookController) ListBookAuthors(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid book ID")
		return
	}

	authors, err := c.books.ListAuthors(r.Context(), id)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, authors)
}

// ListBookGenres returns the book's genres as full records.
func (c *BookController) ListBookGenres(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid book ID")
		return
	}

	genres, err := c.books.ListGenres(r.Context(), id)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, genres)
}

// GetBookPublishingHouse returns the book's publisher as a full record.
func (c *BookController) GetBookPublishingHouse(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid book ID")
		return
	}

	book, err := c.books.Get(r.Context(), id)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}

	house, err := c.houses.Get(r.Context(), book.PublishingHouseID)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, house)
}

func (c *BookController) CreateBook(w http.ResponseWriter, r *http.Request) {
	var book entity.Book
	if err := c.responder.Decode(r, &book); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	created, err := c.books.Create(r.Context(), book)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusCreated, created)
}

func (c *BookController) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid book ID")
		return
	}

	book, err := c.books.Get(r.Context(), id)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, book)
}

func (c *BookController) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid book ID")
		return
	}

	var book entity.Book
	if err := c.responder.Decode(r, &book); err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid request format")
		return
	}
	book.ID = id

	updated, err := c.books.Update(r.Context(), book)
	if err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusOK, updated)
}

func (c *BookController) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.responder.Error(w, http.StatusBadRequest, "Invalid book ID")
		return
	}

	if err := c.books.Delete(r.Context(), id); err != nil {
		respondError(c.responder, w, err)
		return
	}
	c.responder.Respond(w, http.StatusNoContent, nil)
}
