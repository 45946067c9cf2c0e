package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookreview/review-server-go/internal/audit"
	apperrors "github.com/bookreview/review-server-go/internal/errors"
	"github.com/bookreview/review-server-go/internal/middleware"
	"github.com/bookreview/review-server-go/internal/model"
	"github.com/bookreview/review-server-go/internal/service"
)

type AdminHandler struct {
	adminService      *service.AdminService
	sessionMiddleware func(http.Handler) http.Handler
	cors              *middleware.CORSMiddleware
}

func NewAdminHandler(
	adminService *service.AdminService,
	sessionMiddleware func(http.Handler) http.Handler,
) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		sessionMiddleware: sessionMiddleware,
		cors: middleware.NewCORSMiddleware(
			[]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			[]string{"Content-Type", "Authorization"},
		),
	}
}

// Routes serves everything on the handler root. Login is the only call that
// skips the session gate; an unsupported method or POST action still has to
// pass the gate before it gets a 405.
func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.cors.Handler)

	r.Post("/", h.Post)

	r.Group(func(r chi.Router) {
		r.Use(h.sessionMiddleware)
		r.Get("/", h.List)
		r.Delete("/", h.DeleteItem)
	})

	r.MethodNotAllowed(h.sessionMiddleware(http.HandlerFunc(methodNotAllowed)).ServeHTTP)
	r.NotFound(NotFound)

	return r
}

func (h *AdminHandler) Post(w http.ResponseWriter, r *http.Request) {
	// Loosely typed so a non-string password is just a wrong password.
	var req struct {
		Action   any `json:"action"`
		Password any `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if action, _ := req.Action.(string); action != "login" {
		h.sessionMiddleware(http.HandlerFunc(methodNotAllowed)).ServeHTTP(w, r)
		return
	}

	password, _ := req.Password.(string)
	h.login(w, r, password)
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request, password string) {
	token, err := h.adminService.Login(r.Context(), password)
	if err != nil {
		if apperrors.IsAppError(err) {
			audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginFailure})
		}
		writeError(w, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginSuccess})
	writeJSON(w, http.StatusOK, map[string]string{
		"token":   token,
		"message": "Login successful",
	})
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "reviews":
		reviews, err := h.adminService.ListReviews(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, reviews)

	case "books":
		books, err := h.adminService.ListBooks(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, books)

	default:
		writeError(w, apperrors.ValidationError("Unknown action"))
	}
}

func (h *AdminHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	var req service.DeleteItemInput
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	target, err := h.adminService.DeleteItem(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	event := audit.Event{Type: audit.EventReviewRejected, ItemID: req.ID}
	if target == model.ModerationTargetBook {
		event.Type = audit.EventBookDeleted
	}
	if session := middleware.GetAdminSession(r.Context()); session != nil {
		event.SessionID = session.ID
	}
	audit.LogFromRequest(r, event)

	writeMessage(w, "Item deleted")
}
