package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Temutjin2k/wtl-cabs/internal/adapter/http/view"
	wrap "github.com/Temutjin2k/wtl-cabs/pkg/logger/wrapper"
)

// Recover turns a panic into the fallback page, or a JSON error for /api routes.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if panic := recover(); panic != nil {
				ctx := wrap.WithAction(r.Context(), "recover")
				m.log.Error(ctx, "panic while serving request", fmt.Errorf("%v", panic), "path", r.URL.Path)

				w.Header().Set("Connection", "close")
				if strings.HasPrefix(r.URL.Path, "/api/") {
					errorResponse(w, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
					return
				}
				view.Fallback(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
