package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"rental-ops/internal/models"
	"rental-ops/internal/repositories"
	"rental-ops/internal/repositories/repository_mocks"
	"rental-ops/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevHandler_GenerateActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	propertyRepo := repository_mocks.NewMockPropertyRepositoryInterface(ctrl)
	reservationRepo := repository_mocks.NewMockReservationRepositoryInterface(ctrl)
	expenseRepo := repository_mocks.NewMockExpenseRepositoryInterface(ctrl)
	h := NewDevHandler(propertyRepo, reservationRepo, expenseRepo, services.NewActivityGenerator(99))
	e := newEcho()
	propertyID := uuid.New()

	t.Run("fills the month", func(t *testing.T) {
		c, rec := newRequest(e, http.MethodPost, "/?year=2025&month=6&reservations=4&expenses=3", "", adminCaller())
		withID(c, propertyID.String())

		propertyRepo.EXPECT().GetByID(gomock.Any(), propertyID).Return(&models.Property{ID: propertyID}, nil)
		reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		reservationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("constraint"))
		expenseRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		require.NoError(t, h.GenerateActivity(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
		assert.Equal(t, "2025-06", data["period"])
		assert.EqualValues(t, 3, data["reservations_created"])
		assert.EqualValues(t, 3, data["expenses_created"])
	})

	t.Run("unknown property", func(t *testing.T) {
		c, rec := newRequest(e, http.MethodPost, "/", "", adminCaller())
		withID(c, propertyID.String())
		propertyRepo.EXPECT().GetByID(gomock.Any(), propertyID).Return(nil, repositories.ErrPropertyNotFound)

		require.NoError(t, h.GenerateActivity(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad month", func(t *testing.T) {
		c, rec := newRequest(e, http.MethodPost, "/?year=2025&month=13", "", adminCaller())
		withID(c, propertyID.String())
		propertyRepo.EXPECT().GetByID(gomock.Any(), propertyID).Return(&models.Property{ID: propertyID}, nil)

		require.NoError(t, h.GenerateActivity(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_004", decode(t, rec).Error.Code)
	})
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, 0, clampCount(-5))
	assert.Equal(t, 7, clampCount(7))
	assert.Equal(t, maxGeneratedRows, clampCount(100000))
}
