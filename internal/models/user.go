// Package models contains data structures for the application's domain models.
package models

import "time"

// User roles. Role determines capability: guests read, authors write their
// own posts, admins moderate anything.
const (
	RoleGuest  = "guest"
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

// User is the current session's identity as persisted under blog_user.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// IsAuthor reports whether the user holds the author role.
func (u *User) IsAuthor() bool {
	return u != nil && u.Role == RoleAuthor
}

// CanWrite reports whether the user may create posts.
func (u *User) CanWrite() bool {
	return u.IsAdmin() || u.IsAuthor()
}

// Author is a registered author record persisted in the local registry under
// blog_authors. Password holds a bcrypt hash, never the plaintext.
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is an established login: the user plus the opaque token persisted
// under blog_token. The token is presentational and never validated.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
