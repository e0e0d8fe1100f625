package access

import (
	"net/http"

	"github.com/ferdiebergado/jobnotes/internal/pkg/message"
	"github.com/ferdiebergado/jobnotes/internal/pkg/security"
	"github.com/ferdiebergado/jobnotes/internal/pkg/web"
)

// RequireAccess rejects requests without a valid bearer token while the gate
// is enabled.
func RequireAccess(gate Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			token, err := security.ExtractBearerToken(r)
			if err != nil || token == "" {
				web.RespondUnauthorized(w, err, message.AccessDenied, nil)
				return
			}

			if err := gate.Verify(token); err != nil {
				web.RespondUnauthorized(w, err, message.AccessDenied, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
