package middleware

import (
	"net/http"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowCreds   = "Access-Control-Allow-Credentials"

	AllowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
	AllowedHeaders = "Content-Type, Authorization"

	anyOrigin = "*"
)

// CORS sets the CORS headers for allowedOrigin and answers preflight requests.
// An allowedOrigin of "*" allows every origin without credentials.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			switch {
			case allowedOrigin == anyOrigin:
				w.Header().Set(HeaderAllowOrigin, anyOrigin)
				w.Header().Set(HeaderAllowMethods, AllowedMethods)
				w.Header().Set(HeaderAllowHeaders, AllowedHeaders)
			case origin != "" && origin == allowedOrigin:
				w.Header().Set(HeaderAllowOrigin, origin)
				w.Header().Set(HeaderAllowCreds, "true")
				w.Header().Set(HeaderAllowMethods, AllowedMethods)
				w.Header().Set(HeaderAllowHeaders, AllowedHeaders)
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
