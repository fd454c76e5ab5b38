package domain

const (
	RoleSuperAdmin = "SuperAdmin"
	RoleAdmin      = "Admin"
	RoleUser       = "User"
)

// Caller is the identity attached to a request. The zero value is anonymous.
type Caller struct {
	UserZaloID string
	Phone      string
	Role       string
}

func (c Caller) IsAuthenticated() bool {
	return c.UserZaloID != ""
}

func (c Caller) IsSuperAdmin() bool {
	return c.Role == RoleSuperAdmin
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin || c.IsSuperAdmin()
}

// Actor names the caller in activity logs.
func (c Caller) Actor() string {
	if c.UserZaloID == "" {
		return "system"
	}
	return c.UserZaloID
}
