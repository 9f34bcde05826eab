package usecasecontract

import (
	"context"

	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
)

// CreateReportInput carries report fields accepted at creation time.
type CreateReportInput struct {
	Title       string
	Description string
	Type        entity.ReportType
	Images      []string
	Videos      []string
	Location    *entity.GeoPoint
}

// UpdateReportInput carries the optional fields of a report update. Status is
// deliberately absent; it changes only through the admin status operation.
type UpdateReportInput struct {
	Title       *string
	Description *string
	Type        *entity.ReportType
	Images      []string
	Videos      []string
	Location    *entity.GeoPoint
}

// IReportUseCase covers the report lifecycle. Every operation receives the
// authenticated principal; visibility rules are decided by role.
type IReportUseCase interface {
	CreateReport(ctx context.Context, user *entity.User, input CreateReportInput) (*entity.Report, error)
	GetReport(ctx context.Context, user *entity.User, reportID string) (*entity.Report, error)
	// ListReports returns the caller's own reports, or all reports for admins,
	// plus the total count matching the filter.
	ListReports(ctx context.Context, user *entity.User, filter contract.ReportFilter) ([]*entity.Report, int64, error)
	UpdateReport(ctx context.Context, user *entity.User, reportID string, input UpdateReportInput) (*entity.Report, error)
	DeleteReport(ctx context.Context, user *entity.User, reportID string) error
	// ChangeReportStatus transitions the triage state and notifies the
	// reporter by email.
	ChangeReportStatus(ctx context.Context, reportID string, status entity.ReportStatus) (*entity.Report, error)
}
