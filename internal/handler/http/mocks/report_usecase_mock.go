package mocks

import (
	"context"

	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

// MockReportUsecase is a mock implementation of the IReportUseCase interface.
type MockReportUsecase struct {
	// Control mock behavior
	ShouldFailCreate       bool
	ShouldFailGet          bool
	ShouldFailList         bool
	ShouldFailUpdate       bool
	ShouldFailDelete       bool
	ShouldFailChangeStatus bool
	ForbidAccess           bool

	// Return values
	MockReport entity.Report

	// Captured arguments
	LastStatus entity.ReportStatus
	LastFilter contract.ReportFilter
}

var _ usecasecontract.IReportUseCase = (*MockReportUsecase)(nil)

func NewMockReportUsecase() *MockReportUsecase {
	return &MockReportUsecase{
		MockReport: entity.Report{
			ID:          "mock-report-id",
			Title:       "Broken street light",
			Slug:        "broken-street-light",
			Description: "The light on 5th street has been out for a week.",
			Status:      entity.ReportStatusPending,
			Type:        entity.ReportTypeIntervention,
			CreatedBy:   "mock-user-id",
		},
	}
}

func (m *MockReportUsecase) CreateReport(ctx context.Context, user *entity.User, input usecasecontract.CreateReportInput) (*entity.Report, error) {
	if m.ShouldFailCreate {
		return nil, apperror.Validation("a report must have a title")
	}
	return &m.MockReport, nil
}

func (m *MockReportUsecase) GetReport(ctx context.Context, user *entity.User, reportID string) (*entity.Report, error) {
	if m.ForbidAccess {
		return nil, apperror.Forbidden("you do not have permission to view this report")
	}
	if m.ShouldFailGet {
		return nil, apperror.NotFound("no report found with that ID")
	}
	return &m.MockReport, nil
}

func (m *MockReportUsecase) ListReports(ctx context.Context, user *entity.User, filter contract.ReportFilter) ([]*entity.Report, int64, error) {
	m.LastFilter = filter
	if m.ShouldFailList {
		return nil, 0, apperror.Internal(nil)
	}
	return []*entity.Report{&m.MockReport}, 1, nil
}

func (m *MockReportUsecase) UpdateReport(ctx context.Context, user *entity.User, reportID string, input usecasecontract.UpdateReportInput) (*entity.Report, error) {
	if m.ForbidAccess {
		return nil, apperror.Forbidden("you do not have permission to edit this report")
	}
	if m.ShouldFailUpdate {
		return nil, apperror.NotFound("no report found with that ID")
	}
	return &m.MockReport, nil
}

func (m *MockReportUsecase) DeleteReport(ctx context.Context, user *entity.User, reportID string) error {
	if m.ForbidAccess {
		return apperror.Forbidden("you do not have permission to delete this report")
	}
	if m.ShouldFailDelete {
		return apperror.NotFound("no report found with that ID")
	}
	return nil
}

func (m *MockReportUsecase) ChangeReportStatus(ctx context.Context, reportID string, status entity.ReportStatus) (*entity.Report, error) {
	m.LastStatus = status
	if m.ShouldFailChangeStatus {
		return nil, apperror.NotFound("no report found with that ID")
	}
	changed := m.MockReport
	changed.Status = status
	return &changed, nil
}
