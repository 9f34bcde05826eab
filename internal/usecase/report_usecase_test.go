package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ireporter/api/internal/domain/apperror"
	"github.com/ireporter/api/internal/domain/contract"
	"github.com/ireporter/api/internal/domain/entity"
	"github.com/ireporter/api/internal/infrastructure/uuidgen"
	"github.com/ireporter/api/internal/usecase"
	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[string]*entity.Report
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[string]*entity.Report{}}
}

var _ contract.IReportRepository = (*fakeReportRepo)(nil)

func (r *fakeReportRepo) CreateReport(_ context.Context, report *entity.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *report
	r.reports[report.ID] = &clone
	return nil
}

func (r *fakeReportRepo) GetReportByID(_ context.Context, id string) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, apperror.NotFound("no report found with that ID")
	}
	clone := *rep
	return &clone, nil
}

func (r *fakeReportRepo) ListReports(_ context.Context, filter contract.ReportFilter) ([]*entity.Report, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Report
	for _, rep := range r.reports {
		if filter.CreatedBy != "" && rep.CreatedBy != filter.CreatedBy {
			continue
		}
		if filter.Status != "" && rep.Status != filter.Status {
			continue
		}
		if filter.Type != "" && rep.Type != filter.Type {
			continue
		}
		clone := *rep
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *fakeReportRepo) UpdateReport(_ context.Context, report *entity.Report) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[report.ID]; !ok {
		return nil, apperror.NotFound("no report found with that ID")
	}
	clone := *report
	clone.UpdatedAt = time.Now()
	r.reports[report.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeReportRepo) UpdateReportStatus(_ context.Context, id string, status entity.ReportStatus) (*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, apperror.NotFound("no report found with that ID")
	}
	rep.Status = status
	rep.UpdatedAt = time.Now()
	clone := *rep
	return &clone, nil
}

func (r *fakeReportRepo) DeleteReport(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[id]; !ok {
		return apperror.NotFound("no report found with that ID")
	}
	delete(r.reports, id)
	return nil
}

type fakeReportCache struct {
	mu      sync.Mutex
	entries map[string]*entity.Report
	hits    int
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{entries: map[string]*entity.Report{}}
}

var _ contract.IReportCache = (*fakeReportCache)(nil)

func (c *fakeReportCache) GetReportByID(_ context.Context, id string) (*entity.Report, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rep, ok := c.entries[id]
	if !ok {
		return nil, false, nil
	}
	c.hits++
	clone := *rep
	return &clone, true, nil
}

func (c *fakeReportCache) SetReportByID(_ context.Context, report *entity.Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clone := *report
	c.entries[report.ID] = &clone
	return nil
}

func (c *fakeReportCache) InvalidateReportByID(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

type reportFixture struct {
	uc     *usecase.ReportUsecase
	repo   *fakeReportRepo
	users  *fakeUserRepo
	cache  *fakeReportCache
	mailer *fakeMailer
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	f := &reportFixture{
		repo:   newFakeReportRepo(),
		users:  newFakeUserRepo(),
		cache:  newFakeReportCache(),
		mailer: &fakeMailer{},
	}
	f.uc = usecase.NewReportUsecase(f.repo, f.users, f.cache, f.mailer, uuidgen.NewGenerator(), nopLogger{}, &stubConfig{})
	return f
}

func citizen(id string) *entity.User {
	return &entity.User{ID: id, Email: id + "@example.com", Role: entity.UserRoleUser, Active: true}
}

func admin(id string) *entity.User {
	return &entity.User{ID: id, Email: id + "@example.com", Role: entity.UserRoleAdmin, IsAdmin: true, Active: true}
}

func (f *reportFixture) createReport(t *testing.T, user *entity.User, title string) *entity.Report {
	t.Helper()
	report, err := f.uc.CreateReport(context.Background(), user, usecasecontract.CreateReportInput{
		Title:       title,
		Description: "something happened",
		Type:        entity.ReportTypeRedFlag,
	})
	require.NoError(t, err)
	return report
}

func TestCreateReportDefaults(t *testing.T) {
	f := newReportFixture(t)
	user := citizen("user-1")

	report, err := f.uc.CreateReport(context.Background(), user, usecasecontract.CreateReportInput{
		Title:       "Bribery at the Permit Office!",
		Description: "Officials demanding payment for free permits.",
		Type:        entity.ReportTypeRedFlag,
		Location:    &entity.GeoPoint{Coordinates: []float64{9.03, 38.74}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ReportStatusPending, report.Status)
	assert.Equal(t, "bribery-at-the-permit-office", report.Slug)
	assert.Equal(t, "user-1", report.CreatedBy)
	assert.Equal(t, "Point", report.Location.Type)
}

func TestCreateReportValidation(t *testing.T) {
	f := newReportFixture(t)
	user := citizen("user-1")
	ctx := context.Background()

	_, err := f.uc.CreateReport(ctx, user, usecasecontract.CreateReportInput{
		Title: "   ", Description: "desc", Type: entity.ReportTypeRedFlag,
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = f.uc.CreateReport(ctx, user, usecasecontract.CreateReportInput{
		Title: "ok", Description: "desc", Type: "press-release",
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = f.uc.CreateReport(ctx, user, usecasecontract.CreateReportInput{
		Title: "ok", Description: "desc", Type: entity.ReportTypeIntervention,
		Location: &entity.GeoPoint{Coordinates: []float64{9.03}},
	})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestGetReportOwnerAndAdminOnly(t *testing.T) {
	f := newReportFixture(t)
	owner := citizen("owner")
	report := f.createReport(t, owner, "Pothole on main road")
	ctx := context.Background()

	_, err := f.uc.GetReport(ctx, owner, report.ID)
	assert.NoError(t, err)

	_, err = f.uc.GetReport(ctx, admin("boss"), report.ID)
	assert.NoError(t, err)

	_, err = f.uc.GetReport(ctx, citizen("stranger"), report.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestGetReportUsesCache(t *testing.T) {
	f := newReportFixture(t)
	owner := citizen("owner")
	report := f.createReport(t, owner, "Pothole on main road")
	ctx := context.Background()

	_, err := f.uc.GetReport(ctx, owner, report.ID)
	require.NoError(t, err)
	_, err = f.uc.GetReport(ctx, owner, report.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, f.cache.hits, "second read should come from the cache")
}

func TestListReportsScopesNonAdminsToOwn(t *testing.T) {
	f := newReportFixture(t)
	alice := citizen("alice")
	bob := citizen("bob")
	f.createReport(t, alice, "Report A")
	f.createReport(t, bob, "Report B")
	ctx := context.Background()

	own, total, err := f.uc.ListReports(ctx, alice, contract.ReportFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, own, 1)
	assert.Equal(t, "alice", own[0].CreatedBy)

	all, total, err := f.uc.ListReports(ctx, admin("boss"), contract.ReportFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)
}

func TestUpdateReportFrozenAfterTriageStarts(t *testing.T) {
	f := newReportFixture(t)
	owner := citizen("owner")
	require.NoError(t, f.users.CreateUser(context.Background(), owner))
	report := f.createReport(t, owner, "Pothole on main road")
	ctx := context.Background()

	_, err := f.uc.ChangeReportStatus(ctx, report.ID, entity.ReportStatusInvestigating)
	require.NoError(t, err)

	title := "Updated title"
	_, err = f.uc.UpdateReport(ctx, owner, report.ID, usecasecontract.UpdateReportInput{Title: &title})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	// Admins can still correct content.
	_, err = f.uc.UpdateReport(ctx, admin("boss"), report.ID, usecasecontract.UpdateReportInput{Title: &title})
	assert.NoError(t, err)
}

func TestUpdateReportForbiddenForStrangers(t *testing.T) {
	f := newReportFixture(t)
	report := f.createReport(t, citizen("owner"), "Pothole on main road")

	title := "Hijacked"
	_, err := f.uc.UpdateReport(context.Background(), citizen("stranger"), report.ID, usecasecontract.UpdateReportInput{Title: &title})
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestDeleteReportInvalidatesCache(t *testing.T) {
	f := newReportFixture(t)
	owner := citizen("owner")
	report := f.createReport(t, owner, "Pothole on main road")
	ctx := context.Background()

	_, err := f.uc.GetReport(ctx, owner, report.ID)
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteReport(ctx, owner, report.ID))

	_, ok := f.cache.entries[report.ID]
	assert.False(t, ok)
	_, err = f.uc.GetReport(ctx, owner, report.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestChangeReportStatusNotifiesReporter(t *testing.T) {
	f := newReportFixture(t)
	owner := citizen("owner")
	require.NoError(t, f.users.CreateUser(context.Background(), owner))
	report := f.createReport(t, owner, "Pothole on main road")
	ctx := context.Background()

	updated, err := f.uc.ChangeReportStatus(ctx, report.ID, entity.ReportStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusResolved, updated.Status)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, "owner@example.com", f.mailer.sent[0].to)
}

func TestChangeReportStatusRejectsUnknownStatus(t *testing.T) {
	f := newReportFixture(t)
	report := f.createReport(t, citizen("owner"), "Pothole on main road")

	_, err := f.uc.ChangeReportStatus(context.Background(), report.ID, "archived")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestChangeReportStatusMailFailureSurfacesAfterCommit(t *testing.T) {
	f := newReportFixture(t)
	owner := citizen("owner")
	require.NoError(t, f.users.CreateUser(context.Background(), owner))
	report := f.createReport(t, owner, "Pothole on main road")
	f.mailer.failSends = true

	_, err := f.uc.ChangeReportStatus(context.Background(), report.ID, entity.ReportStatusReject)
	require.Error(t, err)
	assert.Equal(t, apperror.KindDependency, apperror.KindOf(err))

	// The status transition is already persisted when the send fails.
	stored, err := f.repo.GetReportByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusReject, stored.Status)
}
