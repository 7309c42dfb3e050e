package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendio/spendio_backend/internal/apperrors"
	"github.com/spendio/spendio_backend/internal/core/domain"
	portssvc "github.com/spendio/spendio_backend/internal/core/ports/services"
	"github.com/spendio/spendio_backend/internal/dto"
	"github.com/spendio/spendio_backend/internal/handlers"
	"github.com/spendio/spendio_backend/internal/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PreferenceService ---
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) GetPreference(ctx context.Context, userID string) (*domain.CurrencyPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPreference), args.Error(1)
}

func (m *MockPreferenceService) SavePreference(ctx context.Context, userID, actualCurrency, previousCurrency string) error {
	args := m.Called(ctx, userID, actualCurrency, previousCurrency)
	return args.Error(0)
}

func (m *MockPreferenceService) ListSavedCurrencies(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPreferenceService) SaveCurrencies(ctx context.Context, userID string, codes []string) error {
	args := m.Called(ctx, userID, codes)
	return args.Error(0)
}

var _ portssvc.PreferenceSvcFacade = (*MockPreferenceService)(nil)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) SwitchCurrency(ctx context.Context, userID, fromCode, toCode string) (*domain.SwitchResult, error) {
	args := m.Called(ctx, userID, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SwitchResult), args.Error(1)
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

// --- Test Suite ---
type PreferenceHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockPreference *MockPreferenceService
	mockReconciler *MockReconciliationService
	jwtSecret      string
	requestingUser string
}

func (suite *PreferenceHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "spendio-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *PreferenceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.requestingUser = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockPreference = new(MockPreferenceService)
	suite.mockReconciler = new(MockReconciliationService)

	v1 := suite.router.Group("/api/v1")
	passthrough := func(c *gin.Context) { c.Next() }
	handlers.RegisterPreferenceRoutes(v1, suite.mockPreference, suite.mockReconciler, passthrough)
}

func (suite *PreferenceHandlerTestSuite) doRequest(method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.requestingUser))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PreferenceHandlerTestSuite) TestGetPreference_Success() {
	pref := &domain.CurrencyPreference{
		UserID:           suite.requestingUser,
		ActualCurrency:   "EUR",
		PreviousCurrency: "USD",
	}
	suite.mockPreference.On("GetPreference", mock.Anything, suite.requestingUser).
		Return(pref, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/preference", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PreferenceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("EUR", resp.ActualCurrency)
	suite.mockPreference.AssertExpectations(suite.T())
}

func (suite *PreferenceHandlerTestSuite) TestGetPreference_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/preference", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPreference.AssertNotCalled(suite.T(), "GetPreference", mock.Anything, mock.Anything)
}

func (suite *PreferenceHandlerTestSuite) TestSwitchCurrency_Success() {
	pref := &domain.CurrencyPreference{UserID: suite.requestingUser, ActualCurrency: "EUR"}
	result := &domain.SwitchResult{
		FromCurrency:   "EUR",
		ToCurrency:     "USD",
		Rate:           decimal.NewFromFloat(1.08),
		ConvertedCount: 5,
		SkippedCount:   1,
		PerKind: map[domain.RecordKind]int{
			domain.RecordKindIncome:  2,
			domain.RecordKindExpense: 3,
		},
	}

	suite.mockPreference.On("GetPreference", mock.Anything, suite.requestingUser).
		Return(pref, nil).Once()
	suite.mockReconciler.On("SwitchCurrency", mock.Anything, suite.requestingUser, "EUR", "USD").
		Return(result, nil).Once()

	body, _ := json.Marshal(dto.SwitchCurrencyRequest{ToCurrencyCode: "USD"})
	w := suite.doRequest(http.MethodPost, "/api/v1/preference/switch", body)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SwitchCurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.ToCurrency)
	suite.Equal(5, resp.ConvertedCount)
	suite.Equal(1, resp.SkippedCount)
	suite.Equal(2, resp.PerKind["INCOME"])
	suite.mockReconciler.AssertExpectations(suite.T())
}

func (suite *PreferenceHandlerTestSuite) TestSwitchCurrency_InvalidBody() {
	w := suite.doRequest(http.MethodPost, "/api/v1/preference/switch", []byte(`{"toCurrencyCode": "US"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReconciler.AssertNotCalled(suite.T(), "SwitchCurrency",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PreferenceHandlerTestSuite) TestSwitchCurrency_RateUnavailable() {
	pref := &domain.CurrencyPreference{UserID: suite.requestingUser, ActualCurrency: "EUR"}
	suite.mockPreference.On("GetPreference", mock.Anything, suite.requestingUser).
		Return(pref, nil).Once()
	suite.mockReconciler.On("SwitchCurrency", mock.Anything, suite.requestingUser, "EUR", "XXX").
		Return(nil, apperrors.ErrRateUnavailable).Once()

	body, _ := json.Marshal(dto.SwitchCurrencyRequest{ToCurrencyCode: "XXX"})
	w := suite.doRequest(http.MethodPost, "/api/v1/preference/switch", body)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *PreferenceHandlerTestSuite) TestSwitchCurrency_RateFetchFailure() {
	pref := &domain.CurrencyPreference{UserID: suite.requestingUser, ActualCurrency: "EUR"}
	suite.mockPreference.On("GetPreference", mock.Anything, suite.requestingUser).
		Return(pref, nil).Once()
	suite.mockReconciler.On("SwitchCurrency", mock.Anything, suite.requestingUser, "EUR", "USD").
		Return(nil, apperrors.ErrRateFetch).Once()

	body, _ := json.Marshal(dto.SwitchCurrencyRequest{ToCurrencyCode: "USD"})
	w := suite.doRequest(http.MethodPost, "/api/v1/preference/switch", body)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *PreferenceHandlerTestSuite) TestSwitchCurrency_PartialFailure() {
	pref := &domain.CurrencyPreference{UserID: suite.requestingUser, ActualCurrency: "EUR"}
	partial := &apperrors.PartialReconciliationError{
		FailedKinds: []string{"EXPENSE"},
		Causes:      map[string]error{"EXPENSE": apperrors.ErrNotFound},
	}
	suite.mockPreference.On("GetPreference", mock.Anything, suite.requestingUser).
		Return(pref, nil).Once()
	suite.mockReconciler.On("SwitchCurrency", mock.Anything, suite.requestingUser, "EUR", "USD").
		Return(nil, partial).Once()

	body, _ := json.Marshal(dto.SwitchCurrencyRequest{ToCurrencyCode: "USD"})
	w := suite.doRequest(http.MethodPost, "/api/v1/preference/switch", body)

	suite.Equal(http.StatusBadGateway, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp, "failedKinds")
}

func (suite *PreferenceHandlerTestSuite) TestSwitchCurrency_PreferenceWriteFailure() {
	pref := &domain.CurrencyPreference{UserID: suite.requestingUser, ActualCurrency: "EUR"}
	suite.mockPreference.On("GetPreference", mock.Anything, suite.requestingUser).
		Return(pref, nil).Once()
	suite.mockReconciler.On("SwitchCurrency", mock.Anything, suite.requestingUser, "EUR", "USD").
		Return(nil, apperrors.ErrPreferenceWrite).Once()

	body, _ := json.Marshal(dto.SwitchCurrencyRequest{ToCurrencyCode: "USD"})
	w := suite.doRequest(http.MethodPost, "/api/v1/preference/switch", body)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(true, resp["retry"])
}

func TestPreferenceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PreferenceHandlerTestSuite))
}
