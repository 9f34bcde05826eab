package contract

import (
	"context"

	"github.com/ireporter/api/internal/domain/entity"
)

// IReportCache caches report details between the repository and the usecase.
// A nil cache is valid; the report usecase treats it as a pass-through.
type IReportCache interface {
	GetReportByID(ctx context.Context, id string) (*entity.Report, bool, error)
	SetReportByID(ctx context.Context, report *entity.Report) error
	InvalidateReportByID(ctx context.Context, id string) error
}
