package domain

import "time"

// Role represents a user role
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleTeam     Role = "TEAM"
	RoleCustomer Role = "CUSTOMER"
)

// Valid returns true if the role is known
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeam || r == RoleCustomer
}

// User represents an account: admin, team member or customer
// Only active TEAM users count toward the default daily capacity
type User struct {
	ID        int64
	Name      string
	Email     string
	Phone     *string
	Role      Role
	Active    bool
	CreatedAt time.Time
}

// IsTeam returns true for team-member accounts
func (u *User) IsTeam() bool {
	return u.Role == RoleTeam
}

// IsAdmin returns true for admin accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
