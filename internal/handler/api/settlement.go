package api

import (
	"errors"
	"net/http"

	resdto "ev-rental-pricing/internal/handler/dto/response"
	"ev-rental-pricing/internal/handler/httperr"
	"ev-rental-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SettlementHandler struct {
	settlementUseCase usecase.SettlementUseCase
}

func NewSettlementHandler(settlementUseCase usecase.SettlementUseCase) *SettlementHandler {
	return &SettlementHandler{
		settlementUseCase: settlementUseCase,
	}
}

// @Summary Preview settlement
// @Description Compute the overage-fee breakdown for a rental without persisting it
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rentals/{id}/settlement/preview [post]
func (h *SettlementHandler) PreviewSettlement(c *gin.Context) {
	rentalID, ok := h.rentalID(c)
	if !ok {
		return
	}

	settlementRM, err := h.settlementUseCase.Preview(c.Request.Context(), rentalID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettlementRM(settlementRM))
}

// @Summary Finalize settlement
// @Description Compute and persist the overage-fee settlement for a rental
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 201 {object} resdto.SettlementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rentals/{id}/settlement [post]
func (h *SettlementHandler) FinalizeSettlement(c *gin.Context) {
	rentalID, ok := h.rentalID(c)
	if !ok {
		return
	}

	settlementRM, err := h.settlementUseCase.Finalize(c.Request.Context(), rentalID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSettlementRM(settlementRM))
}

// @Summary Get settlement
// @Description Get a persisted settlement by ID
// @Tags settlements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Settlement ID"
// @Success 200 {object} resdto.SettlementResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /settlements/{id} [get]
func (h *SettlementHandler) GetSettlement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid settlement ID format", nil)
		return
	}

	settlementRM, err := h.settlementUseCase.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettlementRM(settlementRM))
}

func (h *SettlementHandler) rentalID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *SettlementHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRentalNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Rental not found", nil)
	case errors.Is(err, usecase.ErrSettlementNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Settlement not found", nil)
	case errors.Is(err, usecase.ErrSettlementExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "Rental has already been settled", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
