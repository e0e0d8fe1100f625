package middleware_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/jobnotes/internal/middleware"
	"github.com/ferdiebergado/jobnotes/internal/pkg/web"
	"github.com/ferdiebergado/jobnotes/internal/platform/validation"
)

func TestValidateInput(t *testing.T) {
	t.Parallel()

	const (
		headerCalled = "X-Handler-Called"
		titleErr     = "title is required"
	)

	type noteInput struct {
		Title string `json:"title" validate:"required"`
		Body  string `json:"body" validate:"required"`
	}

	tests := []struct {
		name               string
		code               int
		payload            any
		valFunc            func(any) map[string]string
		body, headerCalled string
	}{
		{"Valid input", http.StatusOK, noteInput{"Buy milk", "2 liters"}, func(_ any) map[string]string { return nil },
			`{"title":"Buy milk","body":"2 liters"}`, "true"},
		{"Invalid input", http.StatusBadRequest, noteInput{"", "2 liters"}, func(_ any) map[string]string {
			return map[string]string{"title": titleErr}
		}, `{"message":"Invalid input.","errors":{"title":"title is required"}}`, ""},
		{"Invalid type", http.StatusBadRequest, struct{}{}, func(_ any) map[string]string {
			return nil
		}, `{"message":"Invalid input."}`, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				p, err := web.ParamsFromContext[noteInput](r.Context())
				if err != nil {
					const code = http.StatusBadRequest
					http.Error(w, http.StatusText(code), code)
					return
				}
				w.Header().Set(web.HeaderContentType, web.MimeJSON)
				w.Header().Set(headerCalled, "true")
				w.WriteHeader(http.StatusOK)
				if err := json.NewEncoder(w).Encode(&p); err != nil {
					slog.Error("failed to encode json", "reason", err)
				}
			})

			ctx := web.NewContextWithParams(context.Background(), tc.payload)
			req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api", http.NoBody)
			rec := httptest.NewRecorder()
			valdtr := &validation.StubValidator{
				ValidateStructFunc: tc.valFunc,
			}
			mw := middleware.ValidateInput[noteInput](valdtr)
			mw(handler).ServeHTTP(rec, req)

			if gotCode := rec.Code; gotCode != tc.code {
				t.Errorf("rec.Code = %d, want: %d", gotCode, tc.code)
			}

			res := rec.Result()
			defer res.Body.Close()
			web.AssertContentType(t, res)

			if got := rec.Header().Get(headerCalled); got != tc.headerCalled {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", headerCalled, got, tc.headerCalled)
			}

			if gotBody := strings.TrimSuffix(rec.Body.String(), "\n"); gotBody != tc.body {
				t.Errorf("rec.Body.String() = %q, want: %q", gotBody, tc.body)
			}
		})
	}
}
