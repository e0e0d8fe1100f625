package app

import (
	"net/http"

	"github.com/ferdiebergado/jobnotes/internal/access"
	"github.com/ferdiebergado/jobnotes/internal/middleware"
	"github.com/ferdiebergado/jobnotes/internal/note"
	"github.com/ferdiebergado/jobnotes/internal/page"
	"github.com/ferdiebergado/jobnotes/internal/platform/router"
	"github.com/ferdiebergado/jobnotes/internal/platform/validation"
)

// preflight answers OPTIONS requests. The CORS middleware writes the headers.
func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func mountPage(r router.Router, pg *page.Page) {
	r.Get("/{$}", pg.Index)
}

func mountNoteRoutes(r router.Router, handler *note.Handler, validator validation.Validator, gate access.Gate, maxBodySize int64) {
	requireAccess := access.RequireAccess(gate)

	r.Get("/api", handler.List)
	r.Post("/api", handler.Create,
		requireAccess,
		middleware.CheckContentType,
		middleware.DecodePayload[note.CreateRequest](maxBodySize),
		middleware.ValidateInput[note.CreateRequest](validator))
	r.Options("/api", preflight)

	r.Get("/api/{id}", handler.Get)
	r.Put("/api/{id}", handler.Update,
		requireAccess,
		middleware.CheckContentType,
		middleware.DecodePayload[note.UpdateRequest](maxBodySize),
		middleware.ValidateInput[note.UpdateRequest](validator))
	r.Delete("/api/{id}", handler.Delete, requireAccess)
	r.Options("/api/{id}", preflight)
}

func mountAccessRoutes(r router.Router, handler *access.Handler, validator validation.Validator, maxBodySize int64) {
	r.Post("/auth/unlock", handler.Unlock,
		middleware.CheckContentType,
		middleware.DecodePayload[access.UnlockRequest](maxBodySize),
		middleware.ValidateInput[access.UnlockRequest](validator))
	r.Options("/auth/unlock", preflight)
}
