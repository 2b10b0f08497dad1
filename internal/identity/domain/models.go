package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Role controls which dashboard and actions a user may access. The wire
// values mirror the labels shown in the admin UI.
type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
	RoleSales      Role = "Sales"
	RoleCustomer   Role = "Pelanggan"
)

// Valid reports whether the role is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleSales, RoleCustomer:
		return true
	default:
		return false
	}
}

// Privileged reports whether the role may operate on the full customer set.
func (r Role) Privileged() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// AccountStatus gates authentication. Frozen users cannot sign in.
type AccountStatus string

const (
	AccountActive AccountStatus = "Aktif"
	AccountFrozen AccountStatus = "Dibekukan"
)

// User is an operator or subscriber account.
type User struct {
	ID             snowflake.ID  `gorm:"primaryKey" json:"id"`
	Username       string        `gorm:"type:text;not null;uniqueIndex" json:"username"`
	PasswordHash   string        `gorm:"type:text;not null" json:"-"`
	Role           Role          `gorm:"type:text;not null" json:"role"`
	Name           string        `gorm:"type:text;not null" json:"name"`
	ProfilePicture *string       `gorm:"type:text" json:"profilePicture,omitempty"`
	Status         AccountStatus `gorm:"type:text;not null;default:'Aktif'" json:"status"`
	CreatedAt      time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt      time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// Actor is the authenticated identity attached to each request.
type Actor struct {
	ID   snowflake.ID
	Name string
	Role Role
}

// ActorFromUser derives the request actor from a stored user.
func ActorFromUser(u User) Actor {
	return Actor{ID: u.ID, Name: u.Name, Role: u.Role}
}
