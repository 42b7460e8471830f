package domain

import "slices"

// Role is a staff role from the user directory
type Role string

const (
	RoleSuperAdmin   Role = "super admin"
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleCleaning     Role = "cleaning"
	RoleTechnical    Role = "technical"
	RoleGuest        Role = "guest"
)

// User is an actor or a staff member
type User struct {
	ID          int64
	Username    string
	FirstName   string
	LastName    string
	Email       string
	Role        Role
	Department  *string
	Currency    string
	PropertyIDs []int64
	IsActive    bool
}

// FullName returns "First Last", falling back to the username
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}

// IsAssignedTo returns true if the user works at the property
func (u *User) IsAssignedTo(propertyID int64) bool {
	return slices.Contains(u.PropertyIDs, propertyID)
}

// Property is a building or complex that owns apartments
type Property struct {
	ID      int64
	Name    string
	Address string
}
