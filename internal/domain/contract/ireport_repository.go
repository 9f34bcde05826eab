package contract

import (
	"context"

	"github.com/ireporter/api/internal/domain/entity"
)

// ReportFilter narrows and pages report listings.
type ReportFilter struct {
	// CreatedBy restricts results to a single author. Empty means all authors
	// (admin listings).
	CreatedBy string
	Status    entity.ReportStatus
	Type      entity.ReportType
	// SortBy is a field name, optionally prefixed with '-' for descending.
	SortBy string
	Page   int
	Limit  int
}

type IReportRepository interface {
	CreateReport(ctx context.Context, report *entity.Report) error
	GetReportByID(ctx context.Context, id string) (*entity.Report, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]*entity.Report, int64, error)
	// UpdateReport updates an existing report and returns the updated report.
	UpdateReport(ctx context.Context, report *entity.Report) (*entity.Report, error)
	UpdateReportStatus(ctx context.Context, id string, status entity.ReportStatus) (*entity.Report, error)
	DeleteReport(ctx context.Context, id string) error
}
