// Package validation validates decoded request payloads.
package validation

// FieldErrors maps a payload's JSON field name to a human readable message.
type FieldErrors = map[string]string

// Validator checks a struct against its `validate` tags. A nil or empty
// result means the struct is valid.
type Validator interface {
	ValidateStruct(s any) FieldErrors
}
