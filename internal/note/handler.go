package note

import (
	"context"
	"errors"
	"net/http"

	"github.com/ferdiebergado/jobnotes/internal/pkg/message"
	"github.com/ferdiebergado/jobnotes/internal/pkg/web"
)

type Service interface {
	List(ctx context.Context) ([]Note, error)
	Create(ctx context.Context, params CreateParams) (Note, error)
	Get(ctx context.Context, id string) (Note, error)
	Update(ctx context.Context, id string, params UpdateParams) (Note, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type CreateRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type CreateResponse struct {
	Message string `json:"message"`
	Record  Note   `json:"record"`
}

type UpdateRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Body  *string `json:"body,omitempty" validate:"omitempty,min=1"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.List(r.Context())
	if err != nil {
		web.Fail(w, http.StatusInternalServerError, err, message.FetchFailed, nil)
		return
	}

	web.JSON(w, http.StatusOK, notes)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	n, err := h.svc.Create(r.Context(), CreateParams(req))
	if err != nil {
		var valErr *ValidationError
		if errors.As(err, &valErr) {
			web.RespondBadRequest(w, err, message.InvalidInput, valErr.Fields)
			return
		}
		web.RespondBadRequest(w, err, message.CreateFailed, nil)
		return
	}

	web.JSON(w, http.StatusCreated, &CreateResponse{
		Message: message.NoteCreated,
		Record:  n,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.NoteNotFound, nil)
			return
		}
		web.Fail(w, http.StatusInternalServerError, err, message.FetchFailed, nil)
		return
	}

	web.JSON(w, http.StatusOK, n)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UpdateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	n, err := h.svc.Update(r.Context(), r.PathValue("id"), UpdateParams(req))
	if err != nil {
		var valErr *ValidationError
		switch {
		case errors.Is(err, ErrNotFound):
			web.RespondNotFound(w, err, message.NoteNotFound, nil)
		case errors.As(err, &valErr):
			web.RespondBadRequest(w, err, message.InvalidInput, valErr.Fields)
		default:
			web.RespondBadRequest(w, err, message.UpdateFailed, nil)
		}
		return
	}

	web.JSON(w, http.StatusOK, n)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.NoteNotFound, nil)
			return
		}
		web.Fail(w, http.StatusInternalServerError, err, message.DeleteFailed, nil)
		return
	}

	web.Text(w, http.StatusOK, message.NoteDeleted)
}
