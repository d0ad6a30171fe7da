package dto

import "time"

// Request DTOs

type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Name           string `json:"name" validate:"required,min=2"`
	Role           string `json:"role" validate:"required,oneof=PATIENT DOCTOR"`
	Specialization string `json:"specialization" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
	User      *UserResponse `json:"user"`
}

type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Specialization string    `json:"specialization,omitempty"`
	BloodGroup     string    `json:"blood_group,omitempty"`
	Age            string    `json:"age,omitempty"`
	Height         string    `json:"height,omitempty"`
	Weight         string    `json:"weight,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	DOB            string    `json:"dob,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
