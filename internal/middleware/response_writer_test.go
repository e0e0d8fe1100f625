package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/jobnotes/internal/middleware"
)

func TestSafeResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := middleware.NewSafeResponseWriter(context.Background(), rec)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	n, err := w.Write([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusCreated)
	}

	if w.Status() != http.StatusCreated {
		t.Errorf("w.Status() = %d, want: %d", w.Status(), http.StatusCreated)
	}

	if w.BytesWritten() != n || n != 5 {
		t.Errorf("w.BytesWritten() = %d, want: %d", w.BytesWritten(), 5)
	}
}

func TestSafeResponseWriter_ServerErrorBody(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := middleware.NewSafeResponseWriter(context.Background(), rec)

	w.WriteHeader(http.StatusInternalServerError)
	if _, err := w.Write([]byte(`{"message":"An unexpected error occurred."}`)); err != nil {
		t.Fatal(err)
	}

	if rec.Body.Len() == 0 {
		t.Error("server error body was dropped")
	}
}

func TestSafeResponseWriter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	w := middleware.NewSafeResponseWriter(ctx, rec)

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("late")); err == nil {
		t.Error("w.Write() after cancel = nil, want: context error")
	}

	if rec.Body.Len() != 0 {
		t.Errorf("rec.Body.String() = %q, want: empty", rec.Body.String())
	}
}

func TestInjectWriterAndLogRequest(t *testing.T) {
	t.Parallel()

	var gotWriter http.ResponseWriter
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		gotWriter = w
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api", http.NoBody)
	middleware.InjectWriter(middleware.LogRequest(handler)).ServeHTTP(rec, req)

	if _, ok := gotWriter.(*middleware.SafeResponseWriter); !ok {
		t.Errorf("handler writer = %T, want: *middleware.SafeResponseWriter", gotWriter)
	}

	if rec.Code != http.StatusAccepted {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusAccepted)
	}
}
