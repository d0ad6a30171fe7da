package repository

import (
	"errors"

	"github.com/sanish-bhagat/Health-Sathi/internal/domain/entity"
	domainRepo "github.com/sanish-bhagat/Health-Sathi/internal/domain/repository"

	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) Create(db *gorm.DB, report *entity.HealthReport) error {
	return translate(db.Create(report).Error)
}

func (r *reportRepository) Save(db *gorm.DB, report *entity.HealthReport) error {
	return translate(db.Save(report).Error)
}

func (r *reportRepository) FindByID(db *gorm.DB, id string) (*entity.HealthReport, error) {
	var report entity.HealthReport
	err := db.Where("id = ?", id).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &report, nil
}

func (r *reportRepository) FindByUserID(db *gorm.DB, userID string) ([]entity.HealthReport, error) {
	return r.findOrdered(db.Where("user_id = ?", userID))
}

func (r *reportRepository) FindByTargetDoctorID(db *gorm.DB, doctorID string) ([]entity.HealthReport, error) {
	return r.findOrdered(db.Where("target_doctor_id = ?", doctorID))
}

func (r *reportRepository) FindAll(db *gorm.DB) ([]entity.HealthReport, error) {
	return r.findOrdered(db)
}

// findOrdered applies the collection-wide ordering contract: newest
// first by timestamp, ties broken by id so repeated reads are stable.
func (r *reportRepository) findOrdered(db *gorm.DB) ([]entity.HealthReport, error) {
	var reports []entity.HealthReport
	err := db.Order("timestamp DESC, id ASC").Find(&reports).Error
	if err != nil {
		return nil, translate(err)
	}
	return reports, nil
}

func (r *reportRepository) MergeUpdate(db *gorm.DB, id string, fields map[string]any) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing entity.HealthReport
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			return err
		}
		return tx.Model(&entity.HealthReport{}).Where("id = ?", id).Updates(fields).Error
	})
	return translate(err)
}
