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

// preferenceHandler handles HTTP requests for the user's primary-currency
// preference, including the currency switch that triggers reconciliation.
type preferenceHandler struct {
	preferenceService     portssvc.PreferenceSvcFacade
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newPreferenceHandler(ps portssvc.PreferenceSvcFacade, rs portssvc.ReconciliationSvcFacade) *preferenceHandler {
	return &preferenceHandler{
		preferenceService:     ps,
		reconciliationService: rs,
	}
}

// RegisterPreferenceRoutes registers preference routes. rateLimited guards
// the switch endpoint, which both fetches rates and sweeps records.
func RegisterPreferenceRoutes(rg *gin.RouterGroup, ps portssvc.PreferenceSvcFacade, rs portssvc.ReconciliationSvcFacade, rateLimited gin.HandlerFunc) {
	h := newPreferenceHandler(ps, rs)

	preference := rg.Group("/preference")
	{
		preference.GET("", h.getPreference)
		preference.POST("/switch", rateLimited, h.switchCurrency)
	}
}

// getPreference godoc
// @Summary Get the user's currency preference
// @Description Retrieves the user's primary currency, falling back to the last mirrored value and then the default currency when the store is unreachable
// @Tags preference
// @Produce  json
// @Success 200 {object} dto.PreferenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /preference [get]
func (h *preferenceHandler) getPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pref, err := h.preferenceService.GetPreference(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get preference", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get currency preference"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}

// switchCurrency godoc
// @Summary Switch the user's primary currency
// @Description Re-expresses every income and expense record in the new currency and replaces the stored preference. Partial failures report which collections failed so the client can prompt a retry.
// @Tags preference
// @Accept  json
// @Produce  json
// @Param   switch body dto.SwitchCurrencyRequest true "Target currency"
// @Success 200 {object} dto.SwitchCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "No rate for currency pair"
// @Failure 500 {object} map[string]string "Preference write failed; retry required"
// @Failure 502 {object} map[string]string "Partial reconciliation"
// @Failure 503 {object} map[string]string "Rate service unreachable"
// @Security BearerAuth
// @Router /preference/switch [post]
func (h *preferenceHandler) switchCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SwitchCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for switchCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// The switch always starts from the currently stored preference;
	// GetPreference degrades to the mirror and then the default rather
	// than failing, so there is always a from-currency.
	pref, err := h.preferenceService.GetPreference(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to resolve current currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve current currency"})
		return
	}

	logger.Info("Received currency switch request",
		slog.String("from", pref.ActualCurrency),
		slog.String("to", req.ToCurrencyCode),
	)

	result, err := h.reconciliationService.SwitchCurrency(c.Request.Context(), userID, pref.ActualCurrency, req.ToCurrencyCode)
	if err != nil {
		h.respondSwitchError(c, logger, err)
		return
	}

	logger.Info("Currency switch completed",
		slog.String("to", result.ToCurrency),
		slog.Int("converted", result.ConvertedCount),
		slog.Int("skipped", result.SkippedCount),
	)
	c.JSON(http.StatusOK, dto.ToSwitchCurrencyResponse(result))
}

func (h *preferenceHandler) respondSwitchError(c *gin.Context, logger *slog.Logger, err error) {
	var partial *apperrors.PartialReconciliationError

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRateUnavailable):
		logger.Warn("No rate for requested pair", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No exchange rate available for the requested currency pair"})
	case errors.Is(err, apperrors.ErrRateFetch):
		logger.Error("Rate fetch failed during switch", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rates are currently unavailable"})
	case errors.As(err, &partial):
		logger.Error("Partial reconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":       "Some records could not be converted; please retry the currency switch",
			"failedKinds": partial.FailedKinds,
		})
	case errors.Is(err, apperrors.ErrPreferenceWrite):
		// Records are converted but the visible currency is stale. The
		// client must retry until the preference write succeeds.
		logger.Error("Preference write failed after conversion", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Records were converted but the preference update failed; retry the switch",
			"retry": true,
		})
	default:
		logger.Error("Currency switch failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to switch currency"})
	}
}
