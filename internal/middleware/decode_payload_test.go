package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/jobnotes/internal/middleware"
	"github.com/ferdiebergado/jobnotes/internal/pkg/web"
	"github.com/google/go-cmp/cmp"
)

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	type noteInput struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}

	tests := []struct {
		name     string
		payload  string
		maxBytes int64
		code     int
		want     *noteInput
	}{
		{"Note payload", `{"title":"Buy milk","body":"2 liters"}`, 64, http.StatusOK, &noteInput{"Buy milk", "2 liters"}},
		{"Empty body field", `{"title":"Call Bob","body":""}`, 64, http.StatusOK, &noteInput{"Call Bob", ""}},
		{"Payload too large", `{"title":"Buy milk","body":"2 liters"}`, 8, http.StatusRequestEntityTooLarge, nil},
		{"Unknown field", `{"title":"Buy milk","body":"2 liters","price":3}`, 64, http.StatusUnprocessableEntity, nil},
		{"Two documents", `{"title":"a","body":"b"}{"title":"c","body":"d"}`, 64, http.StatusBadRequest, nil},
		{"Number for a string", `{"title":7,"body":"b"}`, 64, http.StatusBadRequest, nil},
		{"Truncated JSON", `{"title"`, 64, http.StatusBadRequest, nil},
		{"Array for a string", `{"title":["a","b"],"body":"c"}`, 64, http.StatusBadRequest, nil},
		{"Empty body", ``, 64, http.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got *noteInput
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[noteInput](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				got = &params
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			middleware.DecodePayload[noteInput](tt.maxBytes)(handler).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.code)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decoded params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
