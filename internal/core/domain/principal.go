package domain

import "time"

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Principal models the authenticated identity associated with a request.
type Principal struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Elevated reports whether the principal carries an elevated role.
// Role policy beyond this predicate lives with the callers, not here.
func (p *Principal) Elevated() bool {
	return p != nil && (p.Role == RoleAdmin || p.Role == RoleSuperadmin)
}

// Session is the existence-proof wrapper around a Principal. A nil *Session
// means "no valid credential for this request", which is a normal outcome and
// distinct from an authenticated-but-unauthorized one.
type Session struct {
	User *Principal `json:"user"`
}
