package service

import (
	"context"
	"strings"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/pkg/apperror"
)

// SettingsService manages the single company settings row
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// SettingsInput represents the update settings input. POSCharge is
// decimal; it is stored in minor units.
type SettingsInput struct {
	Name          string
	Address       string
	Phone         string
	Email         string
	Currency      string
	POSCharge     float64
	ReceiptFooter string
}

// GetSettings returns the settings row, creating it from defaults when
// missing.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultCompanySettings()
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettings replaces the settings row contents
func (s *SettingsService) UpdateSettings(ctx context.Context, input *SettingsInput) (*entity.CompanySettings, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Company name is required"})
	}
	if input.POSCharge < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "pos_charge", Message: "POS charge cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.Name = strings.TrimSpace(input.Name)
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.Email = input.Email
	if input.Currency != "" {
		settings.Currency = input.Currency
	}
	settings.POSCharge = int64(input.POSCharge * 100)
	settings.ReceiptFooter = input.ReceiptFooter

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
