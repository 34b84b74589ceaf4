package models

// UserRole gates which navigation a user sees. Authorization itself is the
// backend's job; the client only uses the role for display.
type UserRole string

const (
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
)

// User is a staff account. Password is write-only: it is sent on create and
// never comes back from the backend.
type User struct {
	ID        int      `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Role      UserRole `json:"role"`
	IsStaff   bool     `json:"is_staff"`
	IsActive  bool     `json:"is_active"`
	Password  string   `json:"password,omitempty"`
}

// IsManager reports whether the account has the manager role.
func (u User) IsManager() bool {
	return u.Role == RoleManager
}

// Profile is the trimmed identity the backend returns from /api/users/me/.
type Profile struct {
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}
