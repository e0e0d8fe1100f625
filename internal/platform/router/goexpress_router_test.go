package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/jobnotes/internal/platform/router"
)

func TestGoexpressRouter(t *testing.T) {
	t.Parallel()

	const header = "X-Middleware-Called"

	r := router.NewGoexpressRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set(header, "true")
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/api/{id}", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(req.PathValue("id")))
	})
	r.Delete("/api/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name, method, path, wantBody string
		wantCode                     int
	}{
		{"Path value", http.MethodGet, "/api/abc", "abc", http.StatusOK},
		{"Other method", http.MethodDelete, "/api/abc", "", http.StatusNoContent},
		{"Unknown route", http.MethodGet, "/nowhere", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}

			if tt.wantCode == http.StatusOK && rec.Body.String() != tt.wantBody {
				t.Errorf("rec.Body.String() = %q, want: %q", rec.Body.String(), tt.wantBody)
			}

			if tt.wantCode != http.StatusNotFound && rec.Header().Get(header) != "true" {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, rec.Header().Get(header), "true")
			}
		})
	}
}
