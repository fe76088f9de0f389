package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
	"github.com/SscSPs/remittance_pricing/internal/dto"
	"github.com/SscSPs/remittance_pricing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to pair quotes.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers the public quote routes.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rate")
	{
		exchangeRates.GET("/:base/:quote", h.getExchangeRate)
		exchangeRates.GET("/:base/:quote/history", h.listRateHistory)
	}
}

// registerExchangeRateAdminRoutes registers routes that append to the rate log.
// They are expected to be mounted behind AuthMiddleware.
func registerExchangeRateAdminRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rg.POST("/exchange-rate/:base/:quote/refresh", h.refreshExchangeRate)
}

// getExchangeRate godoc
// @Summary Get the current quote of a pair
// @Description Resolves the fixed, cached or freshly fetched rate of BASE/QUOTE and returns one bid per account tier
// @Tags exchange rates
// @Produce  json
// @Param   base  path string true "Base currency symbol"
// @Param   quote path string true "Quote currency symbol"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} map[string]string "Currency pair not found"
// @Failure 500 {object} map[string]string "Rate could not be resolved"
// @Router /exchange-rate/{base}/{quote} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	baseCode := c.Param("base")
	quoteCode := c.Param("quote")

	logger = logger.With(slog.String("base", baseCode), slog.String("quote", quoteCode))
	logger.Debug("Received request to get exchange rate")

	quote, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), baseCode, quoteCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency pair not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency pair not found"})
		} else {
			logger.Error("Failed to get exchange rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(quote))
}

// listRateHistory godoc
// @Summary List the rate log of a pair
// @Description Lists the most recent provider rates stored for BASE/QUOTE, newest first
// @Tags exchange rates
// @Produce  json
// @Param   base  path string true "Base currency symbol"
// @Param   quote path string true "Quote currency symbol"
// @Param   limit query int false "Maximum number of entries" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.RateHistoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Currency pair not found"
// @Failure 500 {object} map[string]string "Failed to list rate history"
// @Router /exchange-rate/{base}/{quote}/history [get]
func (h *exchangeRateHandler) listRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	baseCode := c.Param("base")
	quoteCode := c.Param("quote")

	var params dto.ListRateHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListRateHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rates, err := h.exchangeRateService.ListRateHistory(c.Request.Context(), baseCode, quoteCode, params.Limit)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency pair not found"})
		} else {
			logger.Error("Failed to list rate history", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rate history"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateHistoryResponse(rates))
}

// refreshExchangeRate godoc
// @Summary Force a provider fetch for a pair
// @Description Bypasses the cached rate, stores a new provider rate for BASE/QUOTE and returns the resulting quote
// @Tags exchange rates
// @Produce  json
// @Param   base  path string true "Base currency symbol"
// @Param   quote path string true "Quote currency symbol"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Pair has a fixed rate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Currency pair not found"
// @Failure 500 {object} map[string]string "Provider fetch failed"
// @Security BearerAuth
// @Router /exchange-rate/{base}/{quote}/refresh [post]
func (h *exchangeRateHandler) refreshExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	baseCode := c.Param("base")
	quoteCode := c.Param("quote")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	logger = logger.With(slog.String("user_id", userID), slog.String("base", baseCode), slog.String("quote", quoteCode))
	logger.Info("Received request to refresh exchange rate")

	quote, err := h.exchangeRateService.RefreshExchangeRate(c.Request.Context(), baseCode, quoteCode)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency pair not found"})
		default:
			logger.Error("Failed to refresh exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(quote))
}
