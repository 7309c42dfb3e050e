package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spendio/spendio_backend/internal/apperrors"
	"github.com/spendio/spendio_backend/internal/core/domain"
	portsrepo "github.com/spendio/spendio_backend/internal/core/ports/repositories"
)

// PreferenceService manages the user's primary-currency preference and the
// locally mirrored saved-currency codes.
type PreferenceService struct {
	prefRepo        portsrepo.PreferenceRepositoryFacade
	mirror          portsrepo.LocalMirror
	defaultCurrency string
	now             func() time.Time
}

// NewPreferenceService creates a new PreferenceService. defaultCurrency is
// served whenever a user has no preference or none can be read.
func NewPreferenceService(prefRepo portsrepo.PreferenceRepositoryFacade, mirror portsrepo.LocalMirror, defaultCurrency string) *PreferenceService {
	return &PreferenceService{
		prefRepo:        prefRepo,
		mirror:          mirror,
		defaultCurrency: strings.ToUpper(defaultCurrency),
		now:             time.Now,
	}
}

// GetPreference returns the user's currency preference. A read failure must
// not crash the caller: the mirror serves the last-known currency, and the
// default currency covers a user with nothing stored anywhere.
func (s *PreferenceService) GetPreference(ctx context.Context, userID string) (*domain.CurrencyPreference, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}

	pref, err := s.prefRepo.FindPreferenceByUserID(ctx, userID)
	if err == nil {
		// Keep the mirror fresh for the next offline read.
		_ = s.mirror.Put(ctx, mirrorPreferenceKey(userID), pref.ActualCurrency)
		return pref, nil
	}

	if !errors.Is(err, apperrors.ErrNotFound) {
		if code, merr := s.mirror.Get(ctx, mirrorPreferenceKey(userID)); merr == nil && domain.IsValidCurrencyCode(code) {
			return &domain.CurrencyPreference{UserID: userID, ActualCurrency: code}, nil
		}
	}

	return &domain.CurrencyPreference{UserID: userID, ActualCurrency: s.defaultCurrency}, nil
}

// SavePreference replaces the user's preference pair and mirrors the new
// actual currency.
func (s *PreferenceService) SavePreference(ctx context.Context, userID, actualCurrency, previousCurrency string) error {
	if userID == "" {
		return fmt.Errorf("%w: user ID is required", apperrors.ErrValidation)
	}
	actualCurrency = strings.ToUpper(actualCurrency)
	previousCurrency = strings.ToUpper(previousCurrency)
	if !domain.IsValidCurrencyCode(actualCurrency) {
		return fmt.Errorf("%w: invalid currency code %q", apperrors.ErrValidation, actualCurrency)
	}

	pref := domain.CurrencyPreference{
		UserID:           userID,
		ActualCurrency:   actualCurrency,
		PreviousCurrency: previousCurrency,
		UpdatedAt:        s.now().UTC(),
	}
	if err := s.prefRepo.UpsertPreference(ctx, pref); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPreferenceWrite, err)
	}

	_ = s.mirror.Put(ctx, mirrorPreferenceKey(userID), actualCurrency)
	return nil
}

// ListSavedCurrencies returns the user's saved currency codes. A user with
// nothing saved gets an empty list.
func (s *PreferenceService) ListSavedCurrencies(ctx context.Context, userID string) ([]string, error) {
	raw, err := s.mirror.Get(ctx, mirrorSavedCurrenciesKey(userID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read saved currencies: %w", err)
	}

	var codes []string
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		return nil, fmt.Errorf("failed to decode saved currencies: %w", err)
	}
	return codes, nil
}

// SaveCurrencies replaces the user's saved currency codes.
func (s *PreferenceService) SaveCurrencies(ctx context.Context, userID string, codes []string) error {
	normalized := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(code)
		if !domain.IsValidCurrencyCode(code) {
			return fmt.Errorf("%w: invalid currency code %q", apperrors.ErrValidation, code)
		}
		normalized = append(normalized, code)
	}

	raw, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("failed to encode saved currencies: %w", err)
	}
	if err := s.mirror.Put(ctx, mirrorSavedCurrenciesKey(userID), string(raw)); err != nil {
		return fmt.Errorf("failed to store saved currencies: %w", err)
	}
	return nil
}

func mirrorPreferenceKey(userID string) string {
	return portsrepo.MirrorKeyPreferredCurrency + ":" + userID
}

func mirrorSavedCurrenciesKey(userID string) string {
	return portsrepo.MirrorKeySavedCurrencies + ":" + userID
}
