package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookreview/review-server-go/internal/audit"
	apperrors "github.com/bookreview/review-server-go/internal/errors"
	"github.com/bookreview/review-server-go/internal/middleware"
	"github.com/bookreview/review-server-go/internal/model"
	"github.com/bookreview/review-server-go/internal/service"
	"github.com/bookreview/review-server-go/internal/util"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
	cors          *middleware.CORSMiddleware
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		cors: middleware.NewCORSMiddleware(
			[]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			[]string{"Content-Type"},
		),
	}
}

func (h *ReviewHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.cors.Handler)

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/", h.UpdateStatus)
	r.MethodNotAllowed(methodNotAllowed)
	r.NotFound(NotFound)

	return r
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.ReviewFilter{
		Status: model.ReviewStatus(query.Get("status")),
		Type:   model.ReviewType(query.Get("type")),
	}

	if rawBookID := query.Get("book_id"); rawBookID != "" {
		bookID, ok := util.ParseID(rawBookID)
		if !ok {
			writeError(w, apperrors.InvalidInput("book_id", "must be a positive integer"))
			return
		}
		filter.BookID = &bookID
	}

	reviews, err := h.reviewService.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateReviewInput
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	id, err := h.reviewService.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, id, "Review submitted for moderation")
}

func (h *ReviewHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateReviewStatusInput
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.reviewService.UpdateStatus(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{
		Type:    audit.EventReviewStatusUpdate,
		ItemID:  req.ID,
		Details: map[string]interface{}{"status": req.Status},
	})
	writeMessage(w, "Review status updated")
}
