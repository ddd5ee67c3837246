// Package service defines the backend-agnostic types and ports for task operations.
package service

// Task represents a single task item.
// Field names follow the portal API wire format.
type Task struct {
	// ID is assigned once, client-side, at creation and never changes.
	ID string `json:"id,omitempty"`

	// Titulo is the task title. Required, non-empty.
	Titulo string `json:"titulo"`

	// Descripcion is the task description. Required, non-empty.
	Descripcion string `json:"descripcion"`

	// Username is the owning user, stamped from the session at creation.
	// Updates never resend it; ownership stays server-side.
	Username string `json:"username,omitempty"`
}

// Credentials are the username/password pair sent to the auth endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the parsed view of the persisted session record.
// The record itself is whatever JSON the login endpoint returned,
// stored verbatim; only these fields are ever interpreted.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
