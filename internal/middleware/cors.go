package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bookreview/review-server-go/internal/config"
)

// CORSMiddleware opens every response to any origin and answers preflight
// requests itself with the methods and headers one handler accepts.
type CORSMiddleware struct {
	allowMethods string
	allowHeaders string
}

func NewCORSMiddleware(methods, headers []string) *CORSMiddleware {
	return &CORSMiddleware{
		allowMethods: strings.Join(methods, ", "),
		allowHeaders: strings.Join(headers, ", "),
	}
}

func (m *CORSMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", m.allowMethods)
			w.Header().Set("Access-Control-Allow-Headers", m.allowHeaders)
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.CORSMaxAge))
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
