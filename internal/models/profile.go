package models

import "time"

// Role values stored in the profiles table. Comparison is exact and
// case-sensitive; there is no role hierarchy.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// Profile mirrors the identity provider's user record on the relational side.
// Rows are created by a provider-side registration trigger; this service only
// reads them.
type Profile struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex" json:"email"`
	Role      string    `gorm:"size:32;default:student" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the provider-managed table name.
func (Profile) TableName() string {
	return "profiles"
}
