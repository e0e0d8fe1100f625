package access_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/jobnotes/internal/access"
	"github.com/ferdiebergado/jobnotes/internal/pkg/message"
	"github.com/ferdiebergado/jobnotes/internal/pkg/web"
)

func TestHandler_Unlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		params         any
		gate           access.Gate
		wantStatusCode int
		wantMessage    string
		wantToken      string
	}{
		{
			name:   "success - token issued",
			params: access.UnlockRequest{ConditionText: conditionText},
			gate: &access.StubGate{
				UnlockFunc: func(_ context.Context, _ string) (string, error) { return "token", nil },
			},
			wantStatusCode: http.StatusOK,
			wantMessage:    message.AccessGranted,
			wantToken:      "token",
		},
		{
			name:   "error - wrong condition text",
			params: access.UnlockRequest{ConditionText: "nope"},
			gate: &access.StubGate{
				UnlockFunc: func(_ context.Context, _ string) (string, error) { return "", access.ErrInvalidCondition },
			},
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    message.AccessDenied,
		},
		{
			name:   "error - gate disabled",
			params: access.UnlockRequest{ConditionText: "anything"},
			gate: &access.StubGate{
				UnlockFunc: func(_ context.Context, _ string) (string, error) { return "", access.ErrGateDisabled },
			},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    message.AccessDisabled,
		},
		{
			name:   "error - signing fails",
			params: access.UnlockRequest{ConditionText: conditionText},
			gate: &access.StubGate{
				UnlockFunc: func(_ context.Context, _ string) (string, error) { return "", errors.New("sign failed") },
			},
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    message.ServerError,
		},
		{
			name:           "error - params missing",
			params:         nil,
			gate:           &access.StubGate{},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    message.InvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := access.NewHandler(tt.gate)

			req := httptest.NewRequest(http.MethodPost, "/auth/unlock", http.NoBody)
			req = req.WithContext(web.NewContextWithParams(req.Context(), tt.params))
			rec := httptest.NewRecorder()

			h.Unlock(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatusCode {
				t.Fatalf(message.FmtErrStatusCode, res.StatusCode, tt.wantStatusCode)
			}

			web.AssertContentType(t, res)

			var body web.OKResponse[*access.UnlockResponse]
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if body.Message != tt.wantMessage {
				t.Errorf("body.Message = %q, want: %q", body.Message, tt.wantMessage)
			}

			if tt.wantToken != "" && (body.Data == nil || body.Data.AccessToken != tt.wantToken) {
				t.Errorf("body.Data = %+v, want access token %q", body.Data, tt.wantToken)
			}
		})
	}
}
