package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ferdiebergado/jobnotes/internal/pkg/message"
	"github.com/ferdiebergado/jobnotes/internal/pkg/web"
)

// CheckContentType rejects write requests that do not carry a JSON body.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			next.ServeHTTP(w, r)
			return
		}

		slog.Debug("Checking Content-Type...")
		contentType := r.Header.Get(web.HeaderContentType)
		if !strings.HasPrefix(strings.ToLower(contentType), web.MimeJSON) {
			web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType), message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
