package entity

import "time"

// ReportStatus describes the review state of a health report.
type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusReviewed ReportStatus = "reviewed"
)

// HealthReport is one uploaded health record, owned by a patient and
// routed to exactly one doctor. UserID and TargetDoctorID are set at
// creation and never change. Timestamp is the sole sort key; newer
// reports sort first.
type HealthReport struct {
	ID             string       `gorm:"type:text;primaryKey" json:"id"`
	UserID         string       `gorm:"column:user_id;type:text;not null;index" json:"user_id"`
	TargetDoctorID string       `gorm:"column:target_doctor_id;type:text;not null;index" json:"target_doctor_id"`
	Timestamp      int64        `gorm:"not null;index" json:"timestamp"`
	Title          string       `gorm:"type:text" json:"title"`
	Description    string       `gorm:"type:text" json:"description,omitempty"`
	FileName       string       `gorm:"type:text" json:"file_name,omitempty"`
	FileData       string       `gorm:"type:text" json:"file_data,omitempty"` // data-URI encoded attachment
	Status         ReportStatus `gorm:"type:text;not null" json:"status"`
	DoctorNotes    string       `gorm:"type:text" json:"doctor_notes,omitempty"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (HealthReport) TableName() string {
	return "reports"
}
