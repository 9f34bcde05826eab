package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

// ReportUsecase implements the report lifecycle: creation, owner-scoped
// listing, owner-or-admin mutation, and the administrative status transition.
type ReportUsecase struct {
	reportRepo  contract.IReportRepository
	userRepo    contract.IUserRepository
	cache       contract.IReportCache
	mailService contract.IEmailService
	uuid        contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
	config      usecasecontract.IConfigProvider
}

var _ usecasecontract.IReportUseCase = (*ReportUsecase)(nil)

// NewReportUsecase creates a new ReportUsecase instance. cache may be nil, in
// which case every read goes straight to the repository.
func NewReportUsecase(
	reportRepo contract.IReportRepository,
	userRepo contract.IUserRepository,
	cache contract.IReportCache,
	mailService contract.IEmailService,
	uuid contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *ReportUsecase {
	return &ReportUsecase{
		reportRepo:  reportRepo,
		userRepo:    userRepo,
		cache:       cache,
		mailService: mailService,
		uuid:        uuid,
		logger:      logger,
		config:      cfg,
	}
}

func (uc *ReportUsecase) CreateReport(ctx context.Context, user *entity.User, input usecasecontract.CreateReportInput) (*entity.Report, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperror.Validation("a report must have a title")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperror.Validation("a report must have a description")
	}
	if !entity.ValidReportType(input.Type) {
		return nil, apperror.Validation("report type must be either red-flag or intervention")
	}
	if input.Location != nil && len(input.Location.Coordinates) != 2 {
		return nil, apperror.Validation("location must carry a coordinate pair")
	}

	now := time.Now()
	report := &entity.Report{
		ID:          uc.uuid.NewUUID(),
		Title:       input.Title,
		Slug:        slugify(input.Title),
		Description: input.Description,
		Status:      entity.ReportStatusPending,
		Type:        input.Type,
		Images:      input.Images,
		Videos:      input.Videos,
		Location:    input.Location,
		CreatedBy:   user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if report.Location != nil && report.Location.Type == "" {
		report.Location.Type = "Point"
	}

	if err := uc.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (uc *ReportUsecase) GetReport(ctx context.Context, user *entity.User, reportID string) (*entity.Report, error) {
	report, err := uc.cachedReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !canAccessReport(user, report) {
		return nil, apperror.Forbidden("you do not have permission to view this report")
	}
	return report, nil
}

// ListReports scopes the query to the caller's own reports unless the caller
// is an admin, who sees everything the filter matches.
func (uc *ReportUsecase) ListReports(ctx context.Context, user *entity.User, filter contract.ReportFilter) ([]*entity.Report, int64, error) {
	if user.Role != entity.UserRoleAdmin {
		filter.CreatedBy = user.ID
	}
	if filter.Status != "" && !entity.ValidReportStatus(filter.Status) {
		return nil, 0, apperror.Validation("unknown report status filter")
	}
	if filter.Type != "" && !entity.ValidReportType(filter.Type) {
		return nil, 0, apperror.Validation("unknown report type filter")
	}
	return uc.reportRepo.ListReports(ctx, filter)
}

// UpdateReport applies a partial update. Only the report owner may edit, and
// only while the report is still pending: once triage has started the content
// is frozen.
func (uc *ReportUsecase) UpdateReport(ctx context.Context, user *entity.User, reportID string, input usecasecontract.UpdateReportInput) (*entity.Report, error) {
	report, err := uc.reportRepo.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.CreatedBy != user.ID && user.Role != entity.UserRoleAdmin {
		return nil, apperror.Forbidden("you do not have permission to edit this report")
	}
	if report.Status != entity.ReportStatusPending && user.Role != entity.UserRoleAdmin {
		return nil, apperror.Validation("a report under review can no longer be edited")
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, apperror.Validation("a report must have a title")
		}
		report.Title = *input.Title
		report.Slug = slugify(*input.Title)
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, apperror.Validation("a report must have a description")
		}
		report.Description = *input.Description
	}
	if input.Type != nil {
		if !entity.ValidReportType(*input.Type) {
			return nil, apperror.Validation("report type must be either red-flag or intervention")
		}
		report.Type = *input.Type
	}
	if input.Images != nil {
		report.Images = input.Images
	}
	if input.Videos != nil {
		report.Videos = input.Videos
	}
	if input.Location != nil {
		if len(input.Location.Coordinates) != 2 {
			return nil, apperror.Validation("location must carry a coordinate pair")
		}
		if input.Location.Type == "" {
			input.Location.Type = "Point"
		}
		report.Location = input.Location
	}

	updated, err := uc.reportRepo.UpdateReport(ctx, report)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, reportID)
	return updated, nil
}

func (uc *ReportUsecase) DeleteReport(ctx context.Context, user *entity.User, reportID string) error {
	report, err := uc.reportRepo.GetReportByID(ctx, reportID)
	if err != nil {
		return err
	}
	if report.CreatedBy != user.ID && user.Role != entity.UserRoleAdmin {
		return apperror.Forbidden("you do not have permission to delete this report")
	}
	if err := uc.reportRepo.DeleteReport(ctx, reportID); err != nil {
		return err
	}
	uc.invalidate(ctx, reportID)
	return nil
}

// ChangeReportStatus transitions the triage state and emails the reporter.
// The status update commits before the notification is sent; a failed send
// surfaces as a dependency error even though the new status is persisted.
func (uc *ReportUsecase) ChangeReportStatus(ctx context.Context, reportID string, status entity.ReportStatus) (*entity.Report, error) {
	if !entity.ValidReportStatus(status) {
		return nil, apperror.Validation("status must be one of pending, investigating, resolved or reject")
	}

	report, err := uc.reportRepo.UpdateReportStatus(ctx, reportID, status)
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx, reportID)

	author, err := uc.userRepo.GetUserByID(ctx, report.CreatedBy, true)
	if err != nil {
		uc.logger.Errorf("status changed for report %s but reporter %s could not be loaded: %v", reportID, report.CreatedBy, err)
		return nil, apperror.Dependency("there was an error sending the email, try again later", err)
	}
	link := fmt.Sprintf("%s/api/v1/reports/%s", uc.config.GetAppBaseURL(), report.ID)
	if err := uc.mailService.SendReportStatusUpdate(ctx, author.Email, report.Title, string(status), link); err != nil {
		uc.logger.Errorf("failed to notify %s of status change on report %s: %v", author.Email, reportID, err)
		return nil, apperror.Dependency("there was an error sending the email, try again later", err)
	}
	return report, nil
}

func (uc *ReportUsecase) cachedReport(ctx context.Context, reportID string) (*entity.Report, error) {
	if uc.cache != nil {
		if cached, ok, err := uc.cache.GetReportByID(ctx, reportID); err != nil {
			uc.logger.Warnf("report cache read failed for %s: %v", reportID, err)
		} else if ok {
			return cached, nil
		}
	}
	report, err := uc.reportRepo.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.SetReportByID(ctx, report); err != nil {
			uc.logger.Warnf("report cache write failed for %s: %v", reportID, err)
		}
	}
	return report, nil
}

func (uc *ReportUsecase) invalidate(ctx context.Context, reportID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateReportByID(ctx, reportID); err != nil {
		uc.logger.Warnf("report cache invalidation failed for %s: %v", reportID, err)
	}
}

func canAccessReport(user *entity.User, report *entity.Report) bool {
	return user.Role == entity.UserRoleAdmin || report.CreatedBy == user.ID
}

// slugify lowercases the title and collapses every non-alphanumeric run into
// a single hyphen.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
