package entity

// Role is the position a user holds in the manager/employee hierarchy
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleEmployee
}
