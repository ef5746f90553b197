package domain

// Identity is the caller resolved from a verified bearer token. It is
// attached to the request context once by the auth middleware and passed
// explicitly through the call chain instead of being re-derived per layer.
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

// IsAdmin reports whether the caller carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
