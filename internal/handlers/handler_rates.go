package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spendio/spendio_backend/internal/apperrors"
	portssvc "github.com/spendio/spendio_backend/internal/core/ports/services"
	"github.com/spendio/spendio_backend/internal/core/services"
	"github.com/spendio/spendio_backend/internal/dto"
	"github.com/spendio/spendio_backend/internal/middleware"
)

// ratesHandler handles HTTP requests for exchange rate tables and display
// conversions.
type ratesHandler struct {
	rateService       portssvc.RateSvcFacade
	preferenceService portssvc.PreferenceSvcFacade
}

func newRatesHandler(rs portssvc.RateSvcFacade, ps portssvc.PreferenceSvcFacade) *ratesHandler {
	return &ratesHandler{rateService: rs, preferenceService: ps}
}

// registerRatesRoutes registers rate and conversion routes. rateLimited
// guards the endpoints that can trigger an external fetch.
func registerRatesRoutes(rg *gin.RouterGroup, rs portssvc.RateSvcFacade, ps portssvc.PreferenceSvcFacade, rateLimited gin.HandlerFunc) {
	h := newRatesHandler(rs, ps)

	rates := rg.Group("/rates", rateLimited)
	{
		rates.GET("/:base", h.getRates)
	}
	rg.POST("/convert", rateLimited, h.convert)
}

// getRates godoc
// @Summary Get exchange rates for a base currency
// @Description Retrieves the rate table expressed relative to the base currency, cached daily
// @Tags rates
// @Produce  json
// @Param   base path string true "Base currency code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 503 {object} map[string]string "Rate service unreachable"
// @Security BearerAuth
// @Router /rates/{base} [get]
func (h *ratesHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := strings.ToUpper(c.Param("base"))

	table, err := h.rateService.FetchRates(c.Request.Context(), base)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch rates", slog.String("base", base), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rates are currently unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesResponse(base, table))
}

// convert godoc
// @Summary Convert an amount for display
// @Description Converts an amount between two currencies with the minimum display floor applied. Display only: results are never persisted.
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Conversion request"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 503 {object} map[string]string "Rate service unreachable"
// @Security BearerAuth
// @Router /convert [post]
func (h *ratesHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	from := strings.ToUpper(req.FromCurrencyCode)
	to := strings.ToUpper(req.ToCurrencyCode)

	quote, err := h.quote(c, req, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch rates for conversion", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rates are currently unavailable"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

func (h *ratesHandler) quote(c *gin.Context, req dto.ConvertRequest, from, to string) (dto.ConvertResponse, error) {
	// Same-currency conversion needs no rate table at all.
	if from == to {
		return dto.ConvertResponse{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			FromAmount:       req.Amount,
			ToAmount:         req.Amount,
			Converted:        true,
		}, nil
	}

	table, err := h.rateService.FetchRates(c.Request.Context(), from)
	if err != nil {
		return dto.ConvertResponse{}, err
	}

	quote := services.ConvertWithMinimumFloor(req.Amount, from, to, table)
	return dto.ConvertResponse{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		FromAmount:       quote.FromAmount,
		ToAmount:         quote.ToAmount,
		Adjusted:         quote.Adjusted,
		Converted:        quote.Converted,
	}, nil
}
