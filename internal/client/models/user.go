// Package models defines the wire types exchanged with the engagement
// backend. Field names follow the backend's column conventions (tx_ for
// text, nu_ for numbers, dt_ for dates).
package models

// AdminProfileID is the reserved profile id of administrators. Every other
// profile id is a regular leader.
const AdminProfileID int64 = 1

// Profile classifies a user (administrator or leader).
type Profile struct {
	ID   int64  `json:"id"`
	Name string `json:"tx_nome,omitempty"`
}

// User is the authenticated account profile returned by the auth endpoint.
type User struct {
	ID      int64   `json:"id"`
	Name    string  `json:"tx_nome"`
	Email   string  `json:"tx_email,omitempty"`
	Birth   string  `json:"dt_nascimento,omitempty"`
	Profile Profile `json:"profile"`
}

// IsAdmin reports whether the user's profile is the administrator profile.
func (u *User) IsAdmin() bool {
	return u != nil && u.Profile.ID == AdminProfileID
}
