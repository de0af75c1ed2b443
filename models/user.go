package models

import "time"

// User is supplied by the auth collaborator and read-only here.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the one cross-page shared resource: the backend bearer token and
// the user it belongs to, keyed by an opaque portal session id.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
