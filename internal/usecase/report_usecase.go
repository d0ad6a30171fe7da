package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sanish-bhagat/Health-Sathi/internal/converter"
	"github.com/sanish-bhagat/Health-Sathi/internal/delivery/dto"
	"github.com/sanish-bhagat/Health-Sathi/internal/domain/repository"
	"github.com/sanish-bhagat/Health-Sathi/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

type ReportUsecase interface {
	SaveReport(ctx context.Context, req *dto.SaveReportRequest) (*dto.ReportResponse, error)
	GetReport(ctx context.Context, id string) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	reportRepo repository.ReportRepository
	validator  *validator.CustomValidator
}

func NewReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.ReportRepository,
	customValidator *validator.CustomValidator,
) ReportUsecase {
	return &reportUsecase{
		db:         db,
		log:        log,
		reportRepo: reportRepo,
		validator:  customValidator,
	}
}

// SaveReport persists a report created by the upload flow. The caller
// supplies the id; an absent timestamp is stamped with the current
// time so the report sorts as newest.
func (u *reportUsecase) SaveReport(ctx context.Context, req *dto.SaveReportRequest) (*dto.ReportResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	report := converter.SaveRequestToReport(req)
	if report.Timestamp == 0 {
		report.Timestamp = time.Now().UnixMilli()
	}

	if err := u.reportRepo.Save(u.db.WithContext(ctx), report); err != nil {
		u.log.Warnf("Failed to save report: %+v", err)
		return nil, err
	}

	return converter.ReportToResponse(report), nil
}

func (u *reportUsecase) GetReport(ctx context.Context, id string) (*dto.ReportResponse, error) {
	report, err := u.reportRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find report by ID: %+v", err)
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	return converter.ReportToResponse(report), nil
}
