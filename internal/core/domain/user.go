package domain

import "time"

// Role is the closed set of privilege levels an account can hold.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

// User models an account. PasswordHash never leaves the process.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"firstName,omitempty"`
	LastName     string     `json:"lastName,omitempty"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Identity is the claim set carried by a session token. It is immutable once
// issued and is never re-read from the account store.
type Identity struct {
	SubjectID string `json:"id"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
}

// IdentityOf builds the claim set for u.
func IdentityOf(u *User) Identity {
	return Identity{SubjectID: u.ID, Username: u.Username, Role: u.Role}
}
