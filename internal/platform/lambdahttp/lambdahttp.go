// Package lambdahttp serves an http.Handler behind API Gateway HTTP APIs.
package lambdahttp

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// Handler is the function signature expected by lambda.Start.
type Handler func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// New adapts h to the API Gateway v2 payload format.
func New(h http.Handler) Handler {
	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		req, err := NewRequest(ctx, event)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, err
		}

		rec := newRecorder()
		h.ServeHTTP(rec, req)
		return rec.response(), nil
	}
}

// NewRequest converts an API Gateway v2 event into an *http.Request.
func NewRequest(ctx context.Context, event events.APIGatewayV2HTTPRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("lambdahttp: decode base64 body: %w", err)
		}
		body = decoded
	}

	path := event.RawPath
	if path == "" {
		path = event.RequestContext.HTTP.Path
	}
	if event.RawQueryString != "" {
		path += "?" + event.RawQueryString
	}

	method := event.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("lambdahttp: new request: %w", err)
	}

	for name, value := range event.Headers {
		req.Header.Set(name, value)
	}
	for _, cookie := range event.Cookies {
		req.Header.Add("Cookie", cookie)
	}

	req.ContentLength = int64(len(body))
	req.RemoteAddr = event.RequestContext.HTTP.SourceIP
	req.RequestURI = path
	if host, ok := event.Headers["host"]; ok {
		req.Host = host
	}

	return req, nil
}

type recorder struct {
	header http.Header
	status int
	body   bytes.Buffer
}

var _ http.ResponseWriter = (*recorder)(nil)

func newRecorder() *recorder {
	return &recorder{header: make(http.Header)}
}

func (r *recorder) Header() http.Header {
	return r.header
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.body.Write(b)
}

func (r *recorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
}

func (r *recorder) response() events.APIGatewayV2HTTPResponse {
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}

	res := events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    make(map[string]string, len(r.header)),
	}

	for name, values := range r.header {
		if http.CanonicalHeaderKey(name) == "Set-Cookie" {
			res.Cookies = append(res.Cookies, values...)
			continue
		}
		res.Headers[name] = strings.Join(values, ",")
	}

	body := r.body.Bytes()
	if isText(r.header.Get("Content-Type"), body) {
		res.Body = string(body)
	} else {
		res.Body = base64.StdEncoding.EncodeToString(body)
		res.IsBase64Encoded = true
	}

	return res
}

func isText(contentType string, body []byte) bool {
	if len(body) == 0 {
		return true
	}
	switch {
	case strings.HasPrefix(contentType, "text/"),
		strings.HasPrefix(contentType, "application/json"),
		strings.HasPrefix(contentType, "application/javascript"),
		strings.HasSuffix(contentType, "+json"),
		strings.HasSuffix(contentType, "+xml"):
		return utf8.Valid(body)
	}
	return false
}

// ReadBody returns the decoded body of a response, for tests and logging.
func ReadBody(res events.APIGatewayV2HTTPResponse) ([]byte, error) {
	if !res.IsBase64Encoded {
		return []byte(res.Body), nil
	}
	return io.ReadAll(base64.NewDecoder(base64.StdEncoding, strings.NewReader(res.Body)))
}
