package dto

import "time"

type SaveReportRequest struct {
	ID             string `json:"id" validate:"required"`
	UserID         string `json:"user_id" validate:"required"`
	TargetDoctorID string `json:"target_doctor_id" validate:"required"`
	Timestamp      int64  `json:"timestamp" validate:"omitempty,gt=0"`
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"omitempty"`
	FileName       string `json:"file_name" validate:"omitempty"`
	FileData       string `json:"file_data" validate:"omitempty"` // data-URI string
}

type ReportResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	TargetDoctorID string    `json:"target_doctor_id"`
	Timestamp      int64     `json:"timestamp"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	FileName       string    `json:"file_name,omitempty"`
	FileData       string    `json:"file_data,omitempty"`
	Status         string    `json:"status"`
	DoctorNotes    string    `json:"doctor_notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
