package web

import (
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
	MimeText          = "text/plain; charset=utf-8"
)

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	response.JSON(w, status, data)
}

// Text writes a plain text response with the given status code.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set(HeaderContentType, MimeText)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
