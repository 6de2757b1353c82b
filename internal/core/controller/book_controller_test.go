package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wiktor-Wewe/psi-projekt/internal/core/entity"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/query"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/repository"
	"github.com/Wiktor-Wewe/psi-projekt/internal/core/service"
	"github.com/Wiktor-Wewe/psi-projekt/pkg/responder"
)

// MockBookRepository implements repository.BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book entity.Book) (entity.Book, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(entity.Book), args.Error(1)
}

func (m *MockBookRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Book), args.Error(1)
}

func (m *MockBookRepository) Update(ctx context.Context, book entity.Book) (entity.Book, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(entity.Book), args.Error(1)
}

func (m *MockBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) List(ctx context.Context, spec query.Spec) (query.Page[entity.Book], error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(query.Page[entity.Book]), args.Error(1)
}

func (m *MockBookRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, spec query.Spec) (query.Page[entity.Book], error) {
	args := m.Called(ctx, authorID, spec)
	return args.Get(0).(query.Page[entity.Book]), args.Error(1)
}

func (m *MockBookRepository) ListByGenre(ctx context.Context, genreID uuid.UUID, spec query.Spec) (query.Page[entity.Book], error) {
	args := m.Called(ctx, genreID, spec)
	return args.Get(0).(query.Page[entity.Book]), args.Error(1)
}

func (m *MockBookRepository) ListByPublishingHouse(ctx context.Context, houseID uuid.UUID, spec query.Spec) (query.Page[entity.Book], error) {
	args := m.Called(ctx, houseID, spec)
	return args.Get(0).(query.Page[entity.Book]), args.Error(1)
}

// MockAuthorRepository implements repository.AuthorRepository
type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) Create(ctx context.Context, author entity.Author) (entity.Author, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(entity.Author), args.Error(1)
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Author, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Author), args.Error(1)
}

func (m *MockAuthorRepository) Update(ctx context.Context, author entity.Author) (entity.Author, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(entity.Author), args.Error(1)
}

func (m *MockAuthorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAuthorRepository) List(ctx context.Context, spec query.Spec) (query.Page[entity.Author], error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(query.Page[entity.Author]), args.Error(1)
}

func (m *MockAuthorRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]entity.Author, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]entity.Author), args.Error(1)
}

// MockGenreRepository implements repository.GenreRepository
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) Create(ctx context.Context, genre entity.Genre) (entity.Genre, error) {
	args := m.Called(ctx, genre)
	return args.Get(0).(entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Genre, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) Update(ctx context.Context, genre entity.Genre) (entity.Genre, error) {
	args := m.Called(ctx, genre)
	return args.Get(0).(entity.Genre), args.Error(1)
}

func (m *MockGenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGenreRepository) List(ctx context.Context, spec query.Spec) (query.Page[entity.Genre], error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(query.Page[entity.Genre]), args.Error(1)
}

func (m *MockGenreRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]entity.Genre, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]entity.Genre), args.Error(1)
}

func setupBookRouter(bookRepo *MockBookRepository, houses *MockPublishingHouseServicer) *chi.Mux {
	books := service.NewBookService(bookRepo, new(MockAuthorRepository), new(MockGenreRepository))
	c := NewBookController(books, houses, responder.NewJSONResponder())

	r := chi.NewRouter()
	r.Get("/api/books/{id}/publishing-house", c.GetBookPublishingHouse)
	return r
}

// TestGetBookPublishingHouse_Success tests the publisher lookup through the book
func TestGetBookPublishingHouse_Success(t *testing.T) {
	bookRepo := new(MockBookRepository)
	houses := new(MockPublishingHouseServicer)
	router := setupBookRouter(bookRepo, houses)

	houseID := uuid.New()
	book := entity.Book{ID: uuid.New(), Title: "It", PublishingHouseID: houseID}
	house := entity.PublishingHouse{ID: houseID, Name: "Hodder & Stoughton"}
	bookRepo.On("GetByID", mock.Anything, book.ID).Return(book, nil)
	houses.On("Get", mock.Anything, houseID).Return(house, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/books/"+book.ID.String()+"/publishing-house", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response entity.PublishingHouse
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, houseID, response.ID)
	assert.Equal(t, "Hodder & Stoughton", response.Name)
}

// TestGetBookPublishingHouse_BookNotFound tests the 404 mapping when the book is missing
func TestGetBookPublishingHouse_BookNotFound(t *testing.T) {
	bookRepo := new(MockBookRepository)
	houses := new(MockPublishingHouseServicer)
	router := setupBookRouter(bookRepo, houses)

	id := uuid.New()
	bookRepo.On("GetByID", mock.Anything, id).
		Return(entity.Book{}, repository.NotFoundError{Kind: "Book", ID: id})

	req := httptest.NewRequest(http.MethodGet, "/api/books/"+id.String()+"/publishing-house", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	houses.AssertNotCalled(t, "Get")
}

// TestGetBookPublishingHouse_InvalidID tests rejection of a malformed id
func TestGetBookPublishingHouse_InvalidID(t *testing.T) {
	bookRepo := new(MockBookRepository)
	houses := new(MockPublishingHouseServicer)
	router := setupBookRouter(bookRepo, houses)

	req := httptest.NewRequest(http.MethodGet, "/api/books/not-a-uuid/publishing-house", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	bookRepo.AssertNotCalled(t, "GetByID")
}
