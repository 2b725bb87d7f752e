package entity

import (
	"time"
)

// User is a member of the feedback hierarchy.
// Passwords are stored as bcrypt hashes in PasswordHash.
//
// Managers have no ManagerID; employees always point at their manager.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	ManagerID    *int64
	AvatarURL    *string
	CreatedAt    time.Time
}

func (u *User) IsManager() bool  { return u != nil && u.Role == RoleManager }
func (u *User) IsEmployee() bool { return u != nil && u.Role == RoleEmployee }

// ReportsTo reports whether u is a direct report of managerID
func (u *User) ReportsTo(managerID int64) bool {
	return u != nil && u.ManagerID != nil && *u.ManagerID == managerID
}
