// Package message holds user-facing response messages.
package message

const (
	InvalidInput    = "Invalid input."
	NoteCreated     = "Note created successfully."
	NoteNotFound    = "Note not found."
	NoteDeleted     = "Successfully Deleted"
	FetchFailed     = "Error fetching data."
	CreateFailed    = "Error creating note."
	UpdateFailed    = "Error updating note."
	DeleteFailed    = "Error deleting note."
	AccessGranted   = "Access granted."
	AccessDenied    = "Access denied. Please provide the correct condition value."
	AccessDisabled  = "Access gate is disabled."
	RequestTimedOut = "Request cancelled or timed out."
	ServerError     = "An unexpected error occurred."

	FmtErrStatusCode = "status code = %d, want: %d"
)
