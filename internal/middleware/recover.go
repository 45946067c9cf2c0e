package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/bookreview/review-server-go/internal/httputil"
)

// Recoverer turns a panic into a 500 in the usual error envelope.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("recovered from panic")

			httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{
				Error: fmt.Sprint(rec),
			})
		}()

		next.ServeHTTP(w, r)
	})
}
