package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/bookreview/review-server-go/internal/errors"
	"github.com/bookreview/review-server-go/internal/middleware"
	"github.com/bookreview/review-server-go/internal/service"
	"github.com/bookreview/review-server-go/internal/util"
)

type BookHandler struct {
	bookService *service.BookService
	cors        *middleware.CORSMiddleware
}

func NewBookHandler(bookService *service.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		cors: middleware.NewCORSMiddleware(
			[]string{http.MethodGet, http.MethodPost, http.MethodOptions},
			[]string{"Content-Type"},
		),
	}
}

func (h *BookHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.cors.Handler)

	r.Get("/", h.Get)
	r.Post("/", h.Create)
	r.MethodNotAllowed(methodNotAllowed)
	r.NotFound(NotFound)

	return r
}

// Get lists active books, or returns one book with its full text when an id
// is given.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		books, err := h.bookService.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, books)
		return
	}

	id, ok := util.ParseID(rawID)
	if !ok {
		writeError(w, apperrors.InvalidInput("id", "must be a positive integer"))
		return
	}

	book, err := h.bookService.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBookInput
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.bookService.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, id, "Book added")
}
