package entity

import "time"

// Valid roles for User.
const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

// User is a system account. Owners carry the business profile; staff belong
// to an owner and operate on the owner's data.
type User struct {
	ID           string
	OwnerID      string // empty for owners; for staff, the owner they belong to
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	Role         string // owner, staff
	Status       string // active, inactive

	// Business profile, only meaningful on owner accounts.
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DataOwnerID returns the account that scopes this user's data: the user
// itself for owners, the owning account for staff.
func (u *User) DataOwnerID() string {
	if u.Role == RoleStaff && u.OwnerID != "" {
		return u.OwnerID
	}
	return u.ID
}
