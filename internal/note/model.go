// Package note implements the job notes: the record model, its stores and the HTTP API over them.
package note

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// CollectionName is the physical collection (or table) holding the notes.
const CollectionName = "job_notes"

// Persisted field names. The body is stored under "price" for compatibility
// with existing data.
const (
	FieldTitle = "productName"
	FieldBody  = "price"
)

var (
	ErrInvalidNote = errors.New("note: invalid note")
	ErrNotFound    = errors.New("note repository: note not found")
	ErrQueryFailed = errors.New("note repository: query failed")
)

// ValidationError lists the offending fields of a note. It matches ErrInvalidNote.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		msgs = append(msgs, e.Fields[field])
	}
	return "note: invalid note: " + strings.Join(msgs, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidNote
}

func invalid(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Note is a stored note. ID is assigned by the store on creation.
type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Validate reports ErrInvalidNote when the title or body is empty.
func (n Note) Validate() error {
	fields := make(map[string]string)
	if n.Title == "" {
		fields["title"] = "title is required"
	}
	if n.Body == "" {
		fields["body"] = "body is required"
	}
	return invalid(fields)
}

type CreateParams struct {
	Title string
	Body  string
}

// UpdateParams holds a partial update. Nil fields are left unchanged.
type UpdateParams struct {
	Title *string
	Body  *string
}

// Validate reports ErrInvalidNote when a provided field is empty.
func (p UpdateParams) Validate() error {
	fields := make(map[string]string)
	if p.Title != nil && *p.Title == "" {
		fields["title"] = "title must not be empty"
	}
	if p.Body != nil && *p.Body == "" {
		fields["body"] = "body must not be empty"
	}
	return invalid(fields)
}

// IsEmpty reports whether the update changes nothing.
func (p UpdateParams) IsEmpty() bool {
	return p.Title == nil && p.Body == nil
}

// Apply returns n with the provided fields replaced.
func (p UpdateParams) Apply(n Note) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Body != nil {
		n.Body = *p.Body
	}
	return n
}
