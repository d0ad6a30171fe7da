package entity

import "time"

// UserRole identifies what a registered identity is allowed to do.
// The role is fixed at registration and never changes afterwards.
type UserRole string

const (
	RolePatient UserRole = "PATIENT"
	RoleDoctor  UserRole = "DOCTOR"
	RoleGuest   UserRole = "GUEST"
)

// User represents one registered identity, patient or doctor.
// Profile fields are free-form and mutable; identity fields
// (ID, Email, Role, CreatedAt) are immutable after registration.
type User struct {
	ID             string    `gorm:"type:text;primaryKey" json:"id"`
	Email          string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Role           UserRole  `gorm:"type:text;not null;index" json:"role"`
	Specialization string    `gorm:"type:text" json:"specialization,omitempty"`
	BloodGroup     string    `gorm:"type:text" json:"blood_group,omitempty"`
	Age            string    `gorm:"type:text" json:"age,omitempty"`
	Height         string    `gorm:"type:text" json:"height,omitempty"`
	Weight         string    `gorm:"type:text" json:"weight,omitempty"`
	Phone          string    `gorm:"type:text" json:"phone,omitempty"`
	DOB            string    `gorm:"column:dob;type:text" json:"dob,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// ProfileUnknown is the default value for profile fields the user has
// not filled in yet.
const ProfileUnknown = "Unknown"
