package access

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/jobnotes/internal/pkg/message"
	"github.com/ferdiebergado/jobnotes/internal/pkg/web"
)

type Handler struct {
	gate Gate
}

func NewHandler(gate Gate) *Handler {
	return &Handler{gate: gate}
}

type UnlockRequest struct {
	ConditionText string `json:"condition_text" validate:"required"`
}

func (r UnlockRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("condition_text", "*"))
}

type UnlockResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UnlockRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	token, err := h.gate.Unlock(r.Context(), req.ConditionText)
	if err != nil {
		switch {
		case errors.Is(err, ErrGateDisabled):
			web.RespondNotFound(w, err, message.AccessDisabled, nil)
		case errors.Is(err, ErrInvalidCondition):
			web.RespondUnauthorized(w, err, message.AccessDenied, nil)
		default:
			web.RespondInternalServerError(w, err)
		}
		return
	}

	msg := message.AccessGranted
	web.RespondOK(w, &msg, &UnlockResponse{AccessToken: token})
}
