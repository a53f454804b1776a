package api

import (
	"errors"
	"net/http"

	reqdto "ev-rental-pricing/internal/handler/dto/request"
	resdto "ev-rental-pricing/internal/handler/dto/response"
	"ev-rental-pricing/internal/handler/httperr"
	"ev-rental-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteUseCase usecase.QuoteUseCase
}

func NewQuoteHandler(quoteUseCase usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{
		quoteUseCase: quoteUseCase,
	}
}

// @Summary Create booking quote
// @Description Price a rental window for a car, including shift tier, discounts and deposit
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateQuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req reqdto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	quoteRM, err := h.quoteUseCase.Quote(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental window", nil)
		case errors.Is(err, usecase.ErrCarNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
		case errors.Is(err, usecase.ErrRenterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Renter not found", nil)
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Car or renter has invalid pricing data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteRM(quoteRM))
}
