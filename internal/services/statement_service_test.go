package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"rental-ops/internal/dto"
	"rental-ops/internal/models"
	"rental-ops/internal/repositories"
	"rental-ops/internal/repositories/repository_mocks"
	"rental-ops/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminCaller() models.Caller {
	return models.Caller{UserID: uuid.New(), Role: models.RoleAdmin, IPAddress: "10.0.0.1", UserAgent: "test"}
}

// StatementServiceTestSuite defines the test suite for StatementServiceInterface
type StatementServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockStatementRep *repository_mocks.MockStatementRepositoryInterface
	mockPropertyRepo *repository_mocks.MockPropertyRepositoryInterface
	mockAggregator   *service_mocks.MockPeriodAggregatorInterface
	mockAudit        *service_mocks.MockAuditServiceInterface
	metrics          *PrometheusMetrics
	events           *bytes.Buffer
	service          *StatementService
	ctx              context.Context

	owner    uuid.UUID
	property *models.Property
}

func (s *StatementServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStatementRep = repository_mocks.NewMockStatementRepositoryInterface(s.ctrl)
	s.mockPropertyRepo = repository_mocks.NewMockPropertyRepositoryInterface(s.ctrl)
	s.mockAggregator = service_mocks.NewMockPeriodAggregatorInterface(s.ctrl)
	s.mockAudit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry())
	s.events = &bytes.Buffer{}
	s.ctx = context.Background()

	s.service = NewStatementService(
		s.mockStatementRep,
		s.mockPropertyRepo,
		s.mockAggregator,
		s.mockAudit,
		NewAuditLogger(slog.New(slog.NewJSONHandler(s.events, nil))),
		s.metrics,
		decimal.NewFromInt(20),
		discardLogger(),
	).(*StatementService)
	s.service.now = func() time.Time { return time.Date(2025, 7, 2, 9, 0, 0, 0, time.UTC) }

	s.owner = uuid.New()
	s.property = &models.Property{ID: uuid.New(), Name: "Old City Studio", City: "Baku", OwnerID: &s.owner, IsActive: true}
}

func (s *StatementServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestStatementServiceSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

func (s *StatementServiceTestSuite) generateRequest() *dto.GenerateStatementRequest {
	return &dto.GenerateStatementRequest{PropertyID: s.property.ID.String(), Year: 2025, Month: 6}
}

func (s *StatementServiceTestSuite) storedStatement(published bool) *models.OwnerStatement {
	statement := &models.OwnerStatement{
		ID:             uuid.New(),
		PropertyID:     s.property.ID,
		OwnerID:        &s.owner,
		StatementMonth: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalRevenue:   decimal.RequireFromString("380.00"),
		TotalExpenses:  decimal.RequireFromString("45.00"),
		NetIncome:      decimal.RequireFromString("335.00"),
		ManagementFee:  decimal.RequireFromString("76.00"),
		IsPublished:    published,
		Property:       s.property,
	}
	if published {
		at := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
		statement.PublishedAt = &at
	}
	return statement
}

func (s *StatementServiceTestSuite) TestCalculateManagementFee() {
	tests := []struct {
		revenue string
		percent string
		want    string
	}{
		{"380.00", "20", "76.00"},
		{"0.00", "20", "0.00"},
		{"100.03", "20", "20.01"},
		{"0.025", "100", "0.03"},
		{"1234.56", "12.5", "154.32"},
	}

	for _, tt := range tests {
		got := CalculateManagementFee(decimal.RequireFromString(tt.revenue), decimal.RequireFromString(tt.percent))
		s.Equal(tt.want, got.StringFixed(2), "revenue %s at %s%%", tt.revenue, tt.percent)
	}
}

func (s *StatementServiceTestSuite) TestGenerate_Success() {
	caller := adminCaller()
	period := models.StatementPeriod{Year: 2025, Month: 6}

	s.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), s.property.ID).Return(s.property, nil)
	s.mockStatementRep.EXPECT().ExistsForPeriod(gomock.Any(), s.property.ID, period.FirstDay()).Return(false, nil)
	s.mockAggregator.EXPECT().Aggregate(gomock.Any(), s.property.ID, period).Return(&models.PeriodTotals{
		PropertyID:    s.property.ID,
		Period:        period,
		TotalRevenue:  decimal.RequireFromString("380.00"),
		TotalExpenses: decimal.RequireFromString("45.00"),
	}, nil)
	s.mockStatementRep.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, statement *models.OwnerStatement) error {
			s.False(statement.IsPublished)
			statement.ID = uuid.New()
			return nil
		})
	s.mockAudit.EXPECT().Record(gomock.Any(), caller, models.AuditActionCreate, models.AuditEntityOwnerStatement, gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Caller, _, _, _ string, _, newValues models.JSONBMap) error {
			s.Equal("2025-06", newValues["statement_month"])
			s.Equal("76.00", newValues["management_fee"])
			return nil
		})

	statement, err := s.service.Generate(s.ctx, caller, s.generateRequest())

	s.Require().NoError(err)
	s.Equal("380.00", statement.TotalRevenue.StringFixed(2))
	s.Equal("45.00", statement.TotalExpenses.StringFixed(2))
	s.Equal("335.00", statement.NetIncome.StringFixed(2))
	s.Equal("76.00", statement.ManagementFee.StringFixed(2))
	s.Equal("259.00", statement.NetPayout().StringFixed(2))
	s.Equal(&s.owner, statement.OwnerID)
	s.True(statement.StatementMonth.Equal(period.FirstDay()))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.statementsGenerated.WithLabelValues(GenerationStatusSuccess)))
	s.Contains(s.events.String(), `"event_type":"statement_generated"`)
}

func (s *StatementServiceTestSuite) TestGenerate_EmptyMonth() {
	period := models.StatementPeriod{Year: 2025, Month: 6}
	unmanaged := &models.Property{ID: s.property.ID, Name: "Lobby", IsActive: true}

	s.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), s.property.ID).Return(unmanaged, nil)
	s.mockStatementRep.EXPECT().ExistsForPeriod(gomock.Any(), s.property.ID, period.FirstDay()).Return(false, nil)
	s.mockAggregator.EXPECT().Aggregate(gomock.Any(), s.property.ID, period).Return(&models.PeriodTotals{
		PropertyID: s.property.ID, Period: period, TotalRevenue: decimal.Zero, TotalExpenses: decimal.Zero,
	}, nil)
	s.mockStatementRep.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAudit.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	statement, err := s.service.Generate(s.ctx, adminCaller(), s.generateRequest())

	s.Require().NoError(err)
	s.Nil(statement.OwnerID)
	s.True(statement.NetIncome.IsZero())
	s.True(statement.ManagementFee.IsZero())
}

func (s *StatementServiceTestSuite) TestGenerate_DuplicateFastPath() {
	s.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), s.property.ID).Return(s.property, nil)
	s.mockStatementRep.EXPECT().ExistsForPeriod(gomock.Any(), s.property.ID, gomock.Any()).Return(true, nil)

	statement, err := s.service.Generate(s.ctx, adminCaller(), s.generateRequest())

	s.Nil(statement)
	s.ErrorIs(err, ErrDuplicateStatementPeriod)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.statementsGenerated.WithLabelValues(GenerationStatusDuplicate)))
}

func (s *StatementServiceTestSuite) TestGenerate_DuplicateAtInsert() {
	s.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), s.property.ID).Return(s.property, nil)
	s.mockStatementRep.EXPECT().ExistsForPeriod(gomock.Any(), s.property.ID, gomock.Any()).Return(false, nil)
	s.mockAggregator.EXPECT().Aggregate(gomock.Any(), s.property.ID, gomock.Any()).Return(&models.PeriodTotals{}, nil)
	s.mockStatementRep.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicateStatement)

	_, err := s.service.Generate(s.ctx, adminCaller(), s.generateRequest())

	s.ErrorIs(err, ErrDuplicateStatementPeriod)
}

func (s *StatementServiceTestSuite) TestGenerate_AggregationFailureStoresNothing() {
	s.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), s.property.ID).Return(s.property, nil)
	s.mockStatementRep.EXPECT().ExistsForPeriod(gomock.Any(), s.property.ID, gomock.Any()).Return(false, nil)
	s.mockAggregator.EXPECT().Aggregate(gomock.Any(), s.property.ID, gomock.Any()).
		Return(nil, storageError("sum expenses", errors.New("connection reset")))

	_, err := s.service.Generate(s.ctx, adminCaller(), s.generateRequest())

	s.ErrorIs(err, ErrStorage)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.statementsGenerated.WithLabelValues(GenerationStatusFailed)))
	s.Contains(s.events.String(), `"event_type":"statement_generation_failed"`)
}

func (s *StatementServiceTestSuite) TestGenerate_PropertyNotFound() {
	s.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), s.property.ID).Return(nil, repositories.ErrPropertyNotFound)

	_, err := s.service.Generate(s.ctx, adminCaller(), s.generateRequest())

	s.ErrorIs(err, ErrPropertyNotFound)
}

func (s *StatementServiceTestSuite) TestGenerate_Validation() {
	tests := []struct {
		name string
		req  *dto.GenerateStatementRequest
	}{
		{"nil request", nil},
		{"bad property id", &dto.GenerateStatementRequest{PropertyID: "nope", Year: 2025, Month: 6}},
		{"nil property id", &dto.GenerateStatementRequest{PropertyID: uuid.Nil.String(), Year: 2025, Month: 6}},
		{"month zero", &dto.GenerateStatementRequest{PropertyID: uuid.NewString(), Year: 2025, Month: 0}},
		{"month thirteen", &dto.GenerateStatementRequest{PropertyID: uuid.NewString(), Year: 2025, Month: 13}},
		{"year too early", &dto.GenerateStatementRequest{PropertyID: uuid.NewString(), Year: 1999, Month: 6}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Generate(s.ctx, adminCaller(), tt.req)
			s.ErrorIs(err, ErrStatementValidation)
		})
	}
}

func (s *StatementServiceTestSuite) TestGenerate_NonAdminForbidden() {
	for _, role := range []string{models.RoleOwner, models.RoleCleaner} {
		_, err := s.service.Generate(s.ctx, models.Caller{UserID: s.owner, Role: role}, s.generateRequest())
		s.ErrorIs(err, ErrForbidden, role)
	}
}

func (s *StatementServiceTestSuite) TestPublish_FirstTime() {
	caller := adminCaller()
	statement := s.storedStatement(false)

	s.mockStatementRep.EXPECT().GetByID(gomock.Any(), statement.ID).Return(statement, nil)
	s.mockStatementRep.EXPECT().MarkPublished(gomock.Any(), statement.ID, s.service.now()).Return(true, nil)
	s.mockAudit.EXPECT().Record(gomock.Any(), caller, models.AuditActionPublish, models.AuditEntityOwnerStatement, statement.ID.String(), gomock.Any(), gomock.Any()).Return(nil)

	published, err := s.service.Publish(s.ctx, caller, statement.ID)

	s.Require().NoError(err)
	s.True(published.IsPublished)
	s.Require().NotNil(published.PublishedAt)
	s.True(published.PublishedAt.Equal(s.service.now()))
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.statementsPublished))
}

func (s *StatementServiceTestSuite) TestPublish_AlreadyPublishedIsNoOp() {
	statement := s.storedStatement(true)
	original := *statement.PublishedAt

	s.mockStatementRep.EXPECT().GetByID(gomock.Any(), statement.ID).Return(statement, nil)

	published, err := s.service.Publish(s.ctx, adminCaller(), statement.ID)

	s.Require().NoError(err)
	s.True(published.PublishedAt.Equal(original))
	s.Equal(float64(0), testutil.ToFloat64(s.metrics.statementsPublished))
	s.Contains(s.events.String(), `"already_published":true`)
}

func (s *StatementServiceTestSuite) TestPublish_LostRaceReloads() {
	unpublished := s.storedStatement(false)
	winner := s.storedStatement(true)
	winner.ID = unpublished.ID

	gomock.InOrder(
		s.mockStatementRep.EXPECT().GetByID(gomock.Any(), unpublished.ID).Return(unpublished, nil),
		s.mockStatementRep.EXPECT().MarkPublished(gomock.Any(), unpublished.ID, gomock.Any()).Return(false, nil),
		s.mockStatementRep.EXPECT().GetByID(gomock.Any(), unpublished.ID).Return(winner, nil),
	)

	published, err := s.service.Publish(s.ctx, adminCaller(), unpublished.ID)

	s.Require().NoError(err)
	s.True(published.PublishedAt.Equal(*winner.PublishedAt))
}

func (s *StatementServiceTestSuite) TestPublish_NotFound() {
	id := uuid.New()
	s.mockStatementRep.EXPECT().GetByID(gomock.Any(), id).Return(nil, repositories.ErrStatementNotFound)

	_, err := s.service.Publish(s.ctx, adminCaller(), id)

	s.ErrorIs(err, ErrStatementNotFound)
}

func (s *StatementServiceTestSuite) TestPublish_OwnerForbidden() {
	_, err := s.service.Publish(s.ctx, models.Caller{UserID: s.owner, Role: models.RoleOwner}, uuid.New())
	s.ErrorIs(err, ErrForbidden)
}

func (s *StatementServiceTestSuite) TestGet_OwnerSeesPublished() {
	statement := s.storedStatement(true)
	s.mockStatementRep.EXPECT().GetByID(gomock.Any(), statement.ID).Return(statement, nil)

	found, err := s.service.Get(s.ctx, models.Caller{UserID: s.owner, Role: models.RoleOwner}, statement.ID)

	s.Require().NoError(err)
	s.Equal(statement.ID, found.ID)
}

func (s *StatementServiceTestSuite) TestGet_HiddenLooksLikeMissing() {
	owner := models.Caller{UserID: s.owner, Role: models.RoleOwner}
	draft := s.storedStatement(false)
	missing := uuid.New()

	s.mockStatementRep.EXPECT().GetByID(gomock.Any(), draft.ID).Return(draft, nil)
	s.mockStatementRep.EXPECT().GetByID(gomock.Any(), missing).Return(nil, repositories.ErrStatementNotFound)

	_, hiddenErr := s.service.Get(s.ctx, owner, draft.ID)
	_, missingErr := s.service.Get(s.ctx, owner, missing)

	s.ErrorIs(hiddenErr, ErrStatementNotFound)
	s.ErrorIs(missingErr, ErrStatementNotFound)
	s.Equal(missingErr.Error(), hiddenErr.Error())
	s.Contains(s.events.String(), `"event_type":"statement_access_denied"`)
}

func (s *StatementServiceTestSuite) TestGet_FollowsCurrentOwner() {
	statement := s.storedStatement(true)
	statement.Property = nil
	newOwner := uuid.New()
	transferred := &models.Property{ID: s.property.ID, Name: s.property.Name, OwnerID: &newOwner}

	s.mockStatementRep.EXPECT().GetByID(gomock.Any(), statement.ID).Return(statement, nil).Times(2)
	s.mockPropertyRepo.EXPECT().GetByID(gomock.Any(), s.property.ID).Return(transferred, nil).Times(2)

	_, err := s.service.Get(s.ctx, models.Caller{UserID: s.owner, Role: models.RoleOwner}, statement.ID)
	s.ErrorIs(err, ErrStatementNotFound)

	statement.Property = nil
	found, err := s.service.Get(s.ctx, models.Caller{UserID: newOwner, Role: models.RoleOwner}, statement.ID)
	s.Require().NoError(err)
	s.Equal(statement.ID, found.ID)
}

func (s *StatementServiceTestSuite) TestGet_CleanerForbidden() {
	_, err := s.service.Get(s.ctx, models.Caller{UserID: uuid.New(), Role: models.RoleCleaner}, uuid.New())
	s.ErrorIs(err, ErrForbidden)
}

func (s *StatementServiceTestSuite) TestList_OwnerScoped() {
	owner := models.Caller{UserID: s.owner, Role: models.RoleOwner}
	otherOwner := uuid.New()

	s.mockStatementRep.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filters models.StatementFilters) ([]models.OwnerStatement, error) {
			s.Require().NotNil(filters.OwnerID)
			s.Equal(s.owner, *filters.OwnerID)
			s.True(filters.PublishedOnly)
			return []models.OwnerStatement{*s.storedStatement(true)}, nil
		})

	statements, err := s.service.List(s.ctx, owner, models.StatementFilters{OwnerID: &otherOwner})

	s.Require().NoError(err)
	s.Len(statements, 1)
}

func (s *StatementServiceTestSuite) TestList_AdminUnscoped() {
	s.mockStatementRep.EXPECT().List(gomock.Any(), models.StatementFilters{}).Return(nil, nil)

	_, err := s.service.List(s.ctx, adminCaller(), models.StatementFilters{})
	s.NoError(err)
}

func (s *StatementServiceTestSuite) TestList_StorageFailure() {
	s.mockStatementRep.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := s.service.List(s.ctx, adminCaller(), models.StatementFilters{})
	s.ErrorIs(err, ErrStorage)
}

func (s *StatementServiceTestSuite) TestUpdateNotes() {
	caller := adminCaller()
	statement := s.storedStatement(false)
	statement.Notes = "old"

	s.mockStatementRep.EXPECT().GetByID(gomock.Any(), statement.ID).Return(statement, nil)
	s.mockStatementRep.EXPECT().UpdateNotes(gomock.Any(), statement.ID, "Boiler replaced").Return(nil)
	s.mockAudit.EXPECT().Record(gomock.Any(), caller, models.AuditActionUpdate, models.AuditEntityOwnerStatement, statement.ID.String(),
		models.JSONBMap{"notes": "old"}, models.JSONBMap{"notes": "Boiler replaced"}).Return(errors.New("audit table locked"))

	updated, err := s.service.UpdateNotes(s.ctx, caller, statement.ID, "  Boiler replaced ")

	s.Require().NoError(err)
	s.Equal("Boiler replaced", updated.Notes)
	s.Equal("380.00", updated.TotalRevenue.StringFixed(2))
}
