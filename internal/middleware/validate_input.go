package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/jobnotes/internal/pkg/message"
	"github.com/ferdiebergado/jobnotes/internal/pkg/web"
	"github.com/ferdiebergado/jobnotes/internal/platform/validation"
)

var errInvalidInput = errors.New("invalid input")

// ValidateInput validates the decoded T in the request context and answers
// 400 with the field errors when it is invalid.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Validating input...")
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); len(errs) > 0 {
				web.RespondBadRequest(w, errInvalidInput, message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
