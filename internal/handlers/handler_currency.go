package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendio/spendio_backend/internal/apperrors"
	portssvc "github.com/spendio/spendio_backend/internal/core/ports/services"
	"github.com/spendio/spendio_backend/internal/dto"
	"github.com/spendio/spendio_backend/internal/middleware"
)

// currencyHandler handles HTTP requests related to the currency catalog and
// the user's saved currencies.
type currencyHandler struct {
	rateService       portssvc.RateSvcFacade
	preferenceService portssvc.PreferenceSvcFacade
}

func newCurrencyHandler(rs portssvc.RateSvcFacade, ps portssvc.PreferenceSvcFacade) *currencyHandler {
	return &currencyHandler{
		rateService:       rs,
		preferenceService: ps,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, rs portssvc.RateSvcFacade, ps portssvc.PreferenceSvcFacade) {
	h := newCurrencyHandler(rs, ps)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/saved", h.listSavedCurrencies)
		currencies.PUT("/saved", h.saveCurrencies)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the supported-currency catalog from the rate service, cached weekly
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 503 {object} map[string]string "Rate service unreachable"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.rateService.FetchSupportedCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch supported currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Currency catalog is currently unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponses(currencies))
}

// listSavedCurrencies godoc
// @Summary List the user's saved currencies
// @Description Retrieves the currency codes the user has marked as favorites
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.SavedCurrenciesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currencies/saved [get]
func (h *currencyHandler) listSavedCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	codes, err := h.preferenceService.ListSavedCurrencies(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list saved currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list saved currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.SavedCurrenciesResponse{Currencies: codes})
}

// saveCurrencies godoc
// @Summary Replace the user's saved currencies
// @Description Stores the given currency codes as the user's favorites
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currencies body dto.SavedCurrenciesRequest true "Currency codes"
// @Success 200 {object} dto.SavedCurrenciesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /currencies/saved [put]
func (h *currencyHandler) saveCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SavedCurrenciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for saveCurrencies", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.preferenceService.SaveCurrencies(c.Request.Context(), userID, req.Currencies); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.SavedCurrenciesResponse{Currencies: req.Currencies})
}
