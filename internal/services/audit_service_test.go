package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-ops/internal/models"
	"rental-ops/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	service  AuditServiceInterface
	ctx      context.Context
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo)
	s.ctx = context.Background()
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestValidateAction() {
	for _, action := range []string{
		models.AuditActionLogin,
		models.AuditActionOTPRequested,
		models.AuditActionCreate,
		models.AuditActionUpdate,
		models.AuditActionPublish,
		models.AuditActionDelete,
	} {
		s.NoError(ValidateAction(action), action)
	}
	s.ErrorIs(ValidateAction("transfer"), ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestRecord_AttributesCaller() {
	caller := models.Caller{UserID: uuid.New(), Role: models.RoleAdmin, IPAddress: "192.0.2.10", UserAgent: "curl/8.0"}
	statementID := uuid.NewString()

	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
		s.Require().NotNil(log.UserID)
		s.Equal(caller.UserID, *log.UserID)
		s.Equal(models.AuditActionPublish, log.Action)
		s.Equal(models.AuditEntityOwnerStatement, log.EntityType)
		s.Equal(statementID, log.EntityID)
		s.Equal("192.0.2.10", log.IPAddress)
		s.Equal("curl/8.0", log.UserAgent)
		s.Equal(true, log.NewValues["is_published"])
		return nil
	})

	err := s.service.Record(s.ctx, caller, models.AuditActionPublish, models.AuditEntityOwnerStatement, statementID,
		models.JSONBMap{"is_published": false}, models.JSONBMap{"is_published": true})
	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestRecord_SystemCaller() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
		s.Nil(log.UserID)
		s.Equal("rentalops-cli", log.UserAgent)
		return nil
	})

	s.NoError(s.service.Record(s.ctx, models.SystemCaller(), models.AuditActionCreate, models.AuditEntityUser, uuid.NewString(), nil, nil))
}

func (s *AuditServiceTestSuite) TestRecord_Rejects() {
	err := s.service.Record(s.ctx, models.SystemCaller(), "transfer", models.AuditEntityUser, "x", nil, nil)
	s.ErrorIs(err, ErrInvalidAuditLog)

	err = s.service.Record(s.ctx, models.SystemCaller(), models.AuditActionCreate, "", "x", nil, nil)
	s.ErrorIs(err, ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestRecord_RepositoryError() {
	s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := s.service.Record(s.ctx, models.SystemCaller(), models.AuditActionCreate, models.AuditEntityProperty, "x", nil, nil)
	s.ErrorContains(err, "disk full")
}

func (s *AuditServiceTestSuite) TestListForEntity() {
	id := uuid.NewString()
	logs := []*models.AuditLog{{Action: models.AuditActionPublish}, {Action: models.AuditActionCreate}}
	s.mockRepo.EXPECT().GetByEntity(gomock.Any(), models.AuditEntityOwnerStatement, id, 0, 20).Return(logs, int64(2), nil)

	found, total, err := s.service.ListForEntity(s.ctx, models.AuditEntityOwnerStatement, id, 0, 20)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(found, 2)

	_, _, err = s.service.ListForEntity(s.ctx, "", id, 0, 20)
	s.ErrorIs(err, ErrInvalidAuditLog)
}

func (s *AuditServiceTestSuite) TestCleanup() {
	retention := 365 * 24 * time.Hour
	s.mockRepo.EXPECT().DeleteOlderThan(gomock.Any(), retention).Return(int64(7), nil)

	deleted, err := s.service.Cleanup(s.ctx, retention)
	s.NoError(err)
	s.Equal(int64(7), deleted)

	_, err = s.service.Cleanup(s.ctx, 0)
	s.ErrorIs(err, ErrInvalidAuditLog)
}
