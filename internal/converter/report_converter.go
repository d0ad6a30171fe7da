package converter

import (
	"github.com/sanish-bhagat/Health-Sathi/internal/delivery/dto"
	"github.com/sanish-bhagat/Health-Sathi/internal/domain/entity"
)

// ReportToResponse converts a HealthReport entity to its DTO.
func ReportToResponse(report *entity.HealthReport) *dto.ReportResponse {
	if report == nil {
		return nil
	}

	return &dto.ReportResponse{
		ID:             report.ID,
		UserID:         report.UserID,
		TargetDoctorID: report.TargetDoctorID,
		Timestamp:      report.Timestamp,
		Title:          report.Title,
		Description:    report.Description,
		FileName:       report.FileName,
		FileData:       report.FileData,
		Status:         string(report.Status),
		DoctorNotes:    report.DoctorNotes,
		CreatedAt:      report.CreatedAt,
		UpdatedAt:      report.UpdatedAt,
	}
}

// SaveRequestToReport builds a new HealthReport from the upload flow's
// save request. Status always starts as pending; doctor notes can only
// be set later through the status update operation.
func SaveRequestToReport(req *dto.SaveReportRequest) *entity.HealthReport {
	return &entity.HealthReport{
		ID:             req.ID,
		UserID:         req.UserID,
		TargetDoctorID: req.TargetDoctorID,
		Timestamp:      req.Timestamp,
		Title:          req.Title,
		Description:    req.Description,
		FileName:       req.FileName,
		FileData:       req.FileData,
		Status:         entity.StatusPending,
	}
}
