//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"ev-rental-pricing/internal/handler/api"
	"ev-rental-pricing/internal/handler/middleware"
	"ev-rental-pricing/internal/usecase"
	"ev-rental-pricing/internal/usecase/readmodel"
	"ev-rental-pricing/tests/mock/usecasemock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettlementHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockSettlementUC *usecasemock.MockSettlementUseCase
	handler          *api.SettlementHandler
}

func (s *SettlementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSettlementUC = usecasemock.NewMockSettlementUseCase(s.mockCtrl)
	s.handler = api.NewSettlementHandler(s.mockSettlementUC)

	// Stand-in for the JWT middleware; staff identity only
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", middleware.RoleStaff)
		c.Next()
	}

	s.router.POST("/rentals/:id/settlement/preview", authMiddleware, s.handler.PreviewSettlement)
	s.router.POST("/rentals/:id/settlement", authMiddleware, s.handler.FinalizeSettlement)
	s.router.GET("/settlements/:id", authMiddleware, s.handler.GetSettlement)
}

func (s *SettlementHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSettlementHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettlementHandlerTestSuite))
}

func sampleSettlementRM(rentalID uuid.UUID) *readmodel.SettlementRM {
	return &readmodel.SettlementRM{
		RentalID:               rentalID,
		DistanceTraveledKm:     250,
		BatteryConsumedPercent: 50,
		PermittedDistanceKm:    200,
		ExcessDistanceKm:       50,
		ExcessFeeVND:           200_000,
	}
}

func (s *SettlementHandlerTestSuite) TestPreviewSettlement() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/settlement/preview"

	s.Run("success: returns 200 with the breakdown", func() {
		s.mockSettlementUC.EXPECT().Preview(gomock.Any(), rentalID).
			Return(sampleSettlementRM(rentalID), nil)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, nil, "staff-token")
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(float64(250), body["distanceTraveledKm"])
		s.Equal(float64(200_000), body["excessFeeVnd"])
		s.NotContains(body, "createdAt")
	})

	s.Run("missing token returns 401", func() {
		rec := performRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("malformed rental id returns 400", func() {
		rec := performRequest(s.T(), s.router, http.MethodPost, "/rentals/not-a-uuid/settlement/preview", nil, "staff-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown rental returns 404", func() {
		s.mockSettlementUC.EXPECT().Preview(gomock.Any(), rentalID).
			Return(nil, usecase.ErrRentalNotFound)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, nil, "staff-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *SettlementHandlerTestSuite) TestFinalizeSettlement() {
	rentalID := uuid.New()
	url := "/rentals/" + rentalID.String() + "/settlement"

	s.Run("success: returns 201 with the persisted settlement", func() {
		rm := sampleSettlementRM(rentalID)
		rm.ID = uuid.New()
		rm.CreatedAt = time.Date(2025, 4, 12, 10, 0, 0, 0, time.UTC)
		s.mockSettlementUC.EXPECT().Finalize(gomock.Any(), rentalID).Return(rm, nil)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, nil, "staff-token")
		s.Equal(http.StatusCreated, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(rm.ID.String(), body["id"])
		s.Contains(body, "createdAt")
	})

	s.Run("already settled returns 409", func() {
		s.mockSettlementUC.EXPECT().Finalize(gomock.Any(), rentalID).
			Return(nil, usecase.ErrSettlementExists)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, nil, "staff-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown rental returns 404", func() {
		s.mockSettlementUC.EXPECT().Finalize(gomock.Any(), rentalID).
			Return(nil, usecase.ErrRentalNotFound)

		rec := performRequest(s.T(), s.router, http.MethodPost, url, nil, "staff-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("unexpected error returns 500", func() {
		s.mockSettlementUC.EXPECT().Finalize(gomock.Any(), rentalID).
			Return(nil, errors.New("boom"))

		rec := performRequest(s.T(), s.router, http.MethodPost, url, nil, "staff-token")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *SettlementHandlerTestSuite) TestGetSettlement() {
	id := uuid.New()
	url := "/settlements/" + id.String()

	s.Run("success: returns 200", func() {
		rm := sampleSettlementRM(uuid.New())
		rm.ID = id
		s.mockSettlementUC.EXPECT().Get(gomock.Any(), id).Return(rm, nil)

		rec := performRequest(s.T(), s.router, http.MethodGet, url, nil, "staff-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown settlement returns 404", func() {
		s.mockSettlementUC.EXPECT().Get(gomock.Any(), id).
			Return(nil, usecase.ErrSettlementNotFound)

		rec := performRequest(s.T(), s.router, http.MethodGet, url, nil, "staff-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed settlement id returns 400", func() {
		rec := performRequest(s.T(), s.router, http.MethodGet, "/settlements/not-a-uuid", nil, "staff-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
