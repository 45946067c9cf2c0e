package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bookreview/review-server-go/internal/audit"
	apperrors "github.com/bookreview/review-server-go/internal/errors"
	"github.com/bookreview/review-server-go/internal/httputil"
	"github.com/bookreview/review-server-go/internal/model"
)

type contextKey string

const AdminSessionContextKey contextKey = "adminSession"

func GetAdminSession(ctx context.Context) *model.AdminSession {
	if session, ok := ctx.Value(AdminSessionContextKey).(*model.AdminSession); ok {
		return session
	}
	return nil
}

type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*model.AdminSession, error)
}

// AdminSessionMiddleware gates a route on a live bearer session.
type AdminSessionMiddleware struct {
	validator SessionValidator
}

func NewAdminSessionMiddleware(validator SessionValidator) *AdminSessionMiddleware {
	return &AdminSessionMiddleware{validator: validator}
}

func (m *AdminSessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.validator.ValidateSession(r.Context(), extractBearerToken(r))
		if err != nil {
			if apperrors.IsAppError(err) {
				audit.LogFromRequest(r, audit.Event{
					Type:    audit.EventAuthFailure,
					Details: map[string]interface{}{"reason": string(apperrors.GetCode(err))},
				})
			}
			httputil.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), AdminSessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}
