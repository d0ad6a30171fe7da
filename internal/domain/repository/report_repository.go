package repository

import (
	"github.com/sanish-bhagat/Health-Sathi/internal/domain/entity"

	"gorm.io/gorm"
)

// ReportRepository is the reports collection of the local store.
// Every multi-record read returns reports ordered by timestamp
// descending, ties broken by id so the order is stable.
type ReportRepository interface {
	// Create inserts a new report. Fails with ErrDuplicateKey if the id
	// already exists.
	Create(db *gorm.DB, report *entity.HealthReport) error

	// Save inserts or fully replaces the report by primary key.
	Save(db *gorm.DB, report *entity.HealthReport) error

	// FindByID returns the report or (nil, nil) when absent.
	FindByID(db *gorm.DB, id string) (*entity.HealthReport, error)

	// FindByUserID returns all reports owned by a patient.
	FindByUserID(db *gorm.DB, userID string) ([]entity.HealthReport, error)

	// FindByTargetDoctorID returns all reports routed to a doctor.
	FindByTargetDoctorID(db *gorm.DB, doctorID string) ([]entity.HealthReport, error)

	FindAll(db *gorm.DB) ([]entity.HealthReport, error)

	// MergeUpdate atomically shallow-merges fields over the existing
	// report. Fails with ErrNotFound if no report has that id.
	MergeUpdate(db *gorm.DB, id string, fields map[string]any) error
}
