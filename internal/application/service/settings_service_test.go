package service_test

import (
	"context"
	"testing"

	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSettingsService_GetSettingsCreatesDefaultsWhenMissing(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	settingsRepo.On("Get", mock.Anything).Return(nil, nil)
	settingsRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.CompanySettings")).
		Return(nil).Once()

	svc := service.NewSettingsService(settingsRepo)
	settings, err := svc.GetSettings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "WumiKay Ventures", settings.Name)
	assert.Equal(t, int64(15000), settings.POSCharge)
	settingsRepo.AssertExpectations(t)
}

func TestSettingsService_GetSettingsReturnsExistingRow(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	settingsRepo.On("Get", mock.Anything).
		Return(&entity.CompanySettings{ID: 1, Name: "Corner Shop", POSCharge: 20000}, nil)

	svc := service.NewSettingsService(settingsRepo)
	settings, err := svc.GetSettings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Corner Shop", settings.Name)
	settingsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSettingsService_UpdateSettings(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	settingsRepo.On("Get", mock.Anything).
		Return(&entity.CompanySettings{ID: 1, Name: "Corner Shop", Currency: "NGN", POSCharge: 15000}, nil)
	settingsRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.CompanySettings")).
		Return(nil).Once()

	svc := service.NewSettingsService(settingsRepo)
	settings, err := svc.UpdateSettings(context.Background(), &service.SettingsInput{
		Name:      "WumiKay Ventures",
		POSCharge: 200,
	})

	assert.NoError(t, err)
	assert.Equal(t, "WumiKay Ventures", settings.Name)
	assert.Equal(t, int64(20000), settings.POSCharge)
	assert.Equal(t, "NGN", settings.Currency, "empty currency input keeps the stored value")
}

func TestSettingsService_UpdateSettingsRejectsNegativeSurcharge(t *testing.T) {
	svc := service.NewSettingsService(new(MockSettingsRepository))

	_, err := svc.UpdateSettings(context.Background(), &service.SettingsInput{
		Name:      "WumiKay Ventures",
		POSCharge: -1,
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Equal(t, "pos_charge", appErr.Errors[0].Field)
}

func TestSettingsService_UpdateSettingsRequiresName(t *testing.T) {
	svc := service.NewSettingsService(new(MockSettingsRepository))

	_, err := svc.UpdateSettings(context.Background(), &service.SettingsInput{Name: "  "})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Equal(t, "name", appErr.Errors[0].Field)
}
