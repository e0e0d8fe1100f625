package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/jobnotes/internal/pkg/message"
	"github.com/ferdiebergado/jobnotes/internal/pkg/web"
)

// ContextGuard answers 408 for requests whose context ended before routing.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			slog.Warn("request abandoned before handling", "method", r.Method, "path", r.URL.Path, "error", err)
			web.RespondRequestTimeout(w, err, message.RequestTimedOut, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
